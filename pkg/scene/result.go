package scene

import (
	"fixedgrid/pkg/geom"
	"fixedgrid/pkg/layout"
	"fixedgrid/pkg/text"
)

// Frame is where one item ended up.
type Frame struct {
	Index  int       `json:"index"`
	Label  string    `json:"label,omitempty"`
	Color  string    `json:"color,omitempty"`
	Text   string    `json:"text,omitempty"`
	Column int       `json:"column"`
	Rect   geom.Rect `json:"rect"`
}

// Result is the outcome of arranging a scene.
type Result struct {
	Scene   *Scene      `json:"-"`
	Bounds  geom.Rect   `json:"bounds"`
	Columns []geom.Rect `json:"columns"`
	Frames  []Frame     `json:"frames"`
}

// Arrange measures the scene's grid and places its items with the
// container at the origin.
func (s *Scene) Arrange() (*Result, error) {
	return s.ArrangeAt(geom.Point{})
}

// ArrangeAt is Arrange with the container's top-left corner at origin.
func (s *Scene) ArrangeAt(origin geom.Point) (*Result, error) {
	grid, err := s.Grid()
	if err != nil {
		return nil, err
	}
	boxes := s.Boxes(text.NewMeasurer())
	subviews := layout.AsSubviews(boxes)
	bounds := layout.Arrange(grid, origin, s.Proposal(), subviews)
	columns := assignedColumns(grid, s.Proposal(), subviews)

	res := &Result{
		Scene:   s,
		Bounds:  bounds,
		Columns: columnRects(grid, bounds),
		Frames:  make([]Frame, len(boxes)),
	}
	for i, b := range boxes {
		it := s.Items[i]
		res.Frames[i] = Frame{
			Index:  i,
			Label:  it.Label,
			Color:  it.Color,
			Text:   it.Text,
			Column: columns[i],
			Rect:   b.Frame(),
		}
	}
	return res, nil
}

// columnRects returns one full-height rectangle per column.
func columnRects(grid layout.Layout, bounds geom.Rect) []geom.Rect {
	var rects []geom.Rect
	switch g := grid.(type) {
	case *layout.FixedGrid:
		x := bounds.MinX()
		for _, w := range g.ColumnWidths() {
			rects = append(rects, geom.Rect{X: x, Y: bounds.MinY(), Width: w, Height: bounds.Height})
			x += w
		}
	case *layout.BalancedGrid:
		w := g.ColumnWidth(bounds)
		for i := 0; i < g.ColumnCount(); i++ {
			rects = append(rects, geom.Rect{X: bounds.MinX() + float64(i)*w, Y: bounds.MinY(), Width: w, Height: bounds.Height})
		}
	}
	return rects
}

// assignedColumns asks the grid which column each child went to. Grids
// that cannot say report -1 for every child.
func assignedColumns(grid layout.Layout, proposal geom.Proposal, subviews []layout.Subview) []int {
	if a, ok := grid.(layout.ColumnAssigner); ok {
		return a.Columns(proposal, subviews)
	}
	cols := make([]int, len(subviews))
	for i := range cols {
		cols[i] = -1
	}
	return cols
}

// Size returns the measured container size.
func (r *Result) Size() geom.Size {
	return r.Bounds.Size()
}

// ColumnHeights returns how far each column's items reach below the top of
// the container.
func (r *Result) ColumnHeights() []float64 {
	heights := make([]float64, len(r.Columns))
	for _, f := range r.Frames {
		if f.Column < 0 || f.Column >= len(heights) {
			continue
		}
		heights[f.Column] = max(heights[f.Column], f.Rect.MaxY()-r.Bounds.MinY())
	}
	return heights
}
