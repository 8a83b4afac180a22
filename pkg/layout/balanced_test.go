package layout

import (
	"errors"
	"testing"

	"fixedgrid/pkg/geom"
)

func TestBalancedGrid_RejectsNoColumns(t *testing.T) {
	if _, err := NewBalancedGrid(0); !errors.Is(err, ErrNoColumns) {
		t.Errorf("expected ErrNoColumns, got %v", err)
	}
}

func TestBalancedGrid_EmptyInput(t *testing.T) {
	g := mustBalanced(t, 3)
	size := g.SizeThatFits(geom.ProposeWidth(90), nil)
	if size.Height != 0 {
		t.Errorf("expected height 0, got %f", size.Height)
	}
	if size.Width != 90 {
		t.Errorf("expected proposed width 90, got %f", size.Width)
	}
	g.PlaceSubviews(geom.Rect{Width: 90}, geom.Unspecified, nil)
}

func TestBalancedGrid_FirstRowThenShortest(t *testing.T) {
	g := mustBalanced(t, 3)
	boxes := boxesWithHeights(5, 3, 8, 1)
	subviews := AsSubviews(boxes)

	size := g.SizeThatFits(geom.ProposeWidth(90), subviews)
	if size.Height != 8 {
		t.Errorf("expected height 8, got %f", size.Height)
	}

	g.PlaceSubviews(geom.Rect{X: 10, Y: 20, Width: 90, Height: 8}, geom.Unspecified, subviews)
	want := []geom.Point{
		{X: 10, Y: 20},
		{X: 40, Y: 20},
		{X: 70, Y: 20},
		{X: 40, Y: 23}, // column 1 was shortest at 3
	}
	for i, b := range boxes {
		if got := lastPlacement(t, b).At; got != want[i] {
			t.Errorf("child %d: expected %+v, got %+v", i, want[i], got)
		}
	}
}

func TestBalancedGrid_FirstRowIgnoresHeights(t *testing.T) {
	g := mustBalanced(t, 3)
	// All-zero heights would otherwise send every child to column 0.
	boxes := boxesWithHeights(0, 0, 0)
	g.PlaceSubviews(geom.Rect{Width: 30}, geom.Unspecified, AsSubviews(boxes))
	for i, b := range boxes {
		if got := lastPlacement(t, b).At.X; got != float64(i*10) {
			t.Errorf("child %d: expected x=%d, got %f", i, i*10, got)
		}
	}
}

func TestBalancedGrid_TieGoesToLowestIndex(t *testing.T) {
	g := mustBalanced(t, 4)
	// After the first row heights are [6 2 2 6]; columns 1 and 2 tie.
	boxes := boxesWithHeights(6, 2, 2, 6, 1, 1)
	g.PlaceSubviews(geom.Rect{Width: 40}, geom.Unspecified, AsSubviews(boxes))

	if got := lastPlacement(t, boxes[4]).At; got != (geom.Point{X: 10, Y: 2}) {
		t.Errorf("child 4: expected column 1, got %+v", got)
	}
	// Column 1 is now 3, column 2 is still 2.
	if got := lastPlacement(t, boxes[5]).At; got != (geom.Point{X: 20, Y: 2}) {
		t.Errorf("child 5: expected column 2, got %+v", got)
	}
}

func TestBalancedGrid_ProposesEqualWidths(t *testing.T) {
	g := mustBalanced(t, 4)
	boxes := []*Box{
		NewBox(geom.Size{Width: 300, Height: 4}),
		NewBox(geom.Size{Width: 1, Height: 2}),
		NewBox(geom.Size{Width: 50, Height: 9}),
		NewBox(geom.Size{Width: 25, Height: 1}),
		NewBox(geom.Size{Width: 99, Height: 3}),
	}
	g.PlaceSubviews(geom.Rect{Width: 100}, geom.Unspecified, AsSubviews(boxes))
	for i, b := range boxes {
		w, ok := lastPlacement(t, b).Proposal.Width()
		if !ok || w != 25 {
			t.Errorf("child %d: expected proposed width 25, got %f (%v)", i, w, ok)
		}
	}
}

func TestBalancedGrid_MeasureMatchesPlacement(t *testing.T) {
	g := mustBalanced(t, 3)
	boxes := boxesWithHeights(4, 9, 2, 7, 3, 3, 1, 8)
	subviews := AsSubviews(boxes)

	bounds := Arrange(g, geom.Point{}, geom.ProposeWidth(60), subviews)

	var tallestBottom float64
	for _, b := range boxes {
		tallestBottom = max(tallestBottom, b.Frame().MaxY())
	}
	if tallestBottom != bounds.Height {
		t.Errorf("measured height %f but placed content reaches %f", bounds.Height, tallestBottom)
	}
}

func TestBalancedGrid_NaturalWidthWithoutProposal(t *testing.T) {
	g := mustBalanced(t, 3)
	boxes := []*Box{
		NewBox(geom.Size{Width: 12, Height: 1}),
		NewBox(geom.Size{Width: 30, Height: 1}),
	}
	size := g.SizeThatFits(geom.Unspecified, AsSubviews(boxes))
	if size.Width != 90 {
		t.Errorf("expected 3 x widest (30) = 90, got %f", size.Width)
	}
}

func TestBalancedGrid_MeasureIsRepeatable(t *testing.T) {
	g := mustBalanced(t, 2)
	boxes := AsSubviews(boxesWithHeights(3, 9, 4, 1, 8))
	first := g.SizeThatFits(geom.ProposeWidth(40), boxes)
	second := g.SizeThatFits(geom.ProposeWidth(40), boxes)
	if first != second {
		t.Errorf("measure not repeatable: %+v then %+v", first, second)
	}
}

func TestBalancedGrid_NoOverlap(t *testing.T) {
	g := mustBalanced(t, 3)
	boxes := boxesWithHeights(5, 1, 7, 3, 3, 2, 6, 4, 1)
	Arrange(g, geom.Point{X: 5, Y: 5}, geom.ProposeWidth(90), AsSubviews(boxes))
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			if boxes[i].Frame().Intersects(boxes[j].Frame()) {
				t.Errorf("children %d and %d overlap: %+v %+v", i, j, boxes[i].Frame(), boxes[j].Frame())
			}
		}
	}
}

func TestBalancedGrid_ColumnsMatchPlacement(t *testing.T) {
	g := mustBalanced(t, 3)
	// Zero-width children and no proposed width give zero-width columns,
	// so every child is placed at x=0 whatever its column.
	boxes := []*Box{
		NewBox(geom.Size{Height: 5}),
		NewBox(geom.Size{Height: 3}),
		NewBox(geom.Size{Height: 8}),
		NewBox(geom.Size{Height: 1}),
	}
	subviews := AsSubviews(boxes)

	cols := g.Columns(geom.Unspecified, subviews)
	want := []int{0, 1, 2, 1}
	for i := range want {
		if cols[i] != want[i] {
			t.Fatalf("expected columns %v, got %v", want, cols)
		}
	}

	bounds := Arrange(g, geom.Point{}, geom.Unspecified, subviews)
	if bounds.Width != 0 {
		t.Errorf("expected zero width, got %f", bounds.Width)
	}
	if got := lastPlacement(t, boxes[3]).At; got != (geom.Point{X: 0, Y: 3}) {
		t.Errorf("child 3: expected below child 1, got %+v", got)
	}
}

func TestBalancedGrid_ColumnsEmpty(t *testing.T) {
	g := mustBalanced(t, 2)
	if cols := g.Columns(geom.Unspecified, nil); len(cols) != 0 {
		t.Errorf("expected no columns, got %v", cols)
	}
}
