package layout

import (
	"fmt"

	"fixedgrid/pkg/geom"
)

// FixedGrid lays children out in columns of caller-chosen widths. Child i
// goes to column i mod columnCount, so rows fill left to right and each
// column stacks its children top to bottom.
type FixedGrid struct {
	gridConfig
	columnWidths []float64
}

// NewFixedGrid creates a grid with one column per width. Widths are not
// validated beyond requiring at least one column.
func NewFixedGrid(columnWidths []float64, opts ...Option) (*FixedGrid, error) {
	if len(columnWidths) == 0 {
		return nil, fmt.Errorf("fixed grid: %w", ErrNoColumns)
	}
	widths := make([]float64, len(columnWidths))
	copy(widths, columnWidths)
	return &FixedGrid{gridConfig: buildConfig(opts), columnWidths: widths}, nil
}

// NewUniformFixedGrid creates a grid of count columns that are all width wide.
func NewUniformFixedGrid(count int, width float64, opts ...Option) (*FixedGrid, error) {
	if count < 1 {
		return nil, fmt.Errorf("fixed grid with %d columns: %w", count, ErrNoColumns)
	}
	widths := make([]float64, count)
	for i := range widths {
		widths[i] = width
	}
	return NewFixedGrid(widths, opts...)
}

// ColumnCount returns the number of columns.
func (g *FixedGrid) ColumnCount() int {
	return len(g.columnWidths)
}

// ColumnWidths returns a copy of the configured widths.
func (g *FixedGrid) ColumnWidths() []float64 {
	out := make([]float64, len(g.columnWidths))
	copy(out, g.columnWidths)
	return out
}

// ColumnFor returns the column child index is assigned to.
func (g *FixedGrid) ColumnFor(index int) int {
	return index % len(g.columnWidths)
}

// Columns returns the column of every child. The assignment does not depend
// on child sizes, so the proposal is unused.
func (g *FixedGrid) Columns(_ geom.Proposal, subviews []Subview) []int {
	cols := make([]int, len(subviews))
	for i := range subviews {
		cols[i] = g.ColumnFor(i)
	}
	return cols
}

// TotalWidth returns the sum of all column widths.
func (g *FixedGrid) TotalWidth() float64 {
	total := 0.0
	for _, w := range g.columnWidths {
		total += w
	}
	return total
}

// SizeThatFits returns the summed column widths and the height of the
// tallest column.
func (g *FixedGrid) SizeThatFits(proposal geom.Proposal, subviews []Subview) geom.Size {
	heights := make([]float64, len(g.columnWidths))
	for i, sv := range subviews {
		heights[g.ColumnFor(i)] += sv.SizeThatFits(proposal).Height
	}
	return geom.Size{Width: g.TotalWidth(), Height: tallest(heights)}
}

// PlaceSubviews positions every child at the top of the free space in its
// column and proposes the column's width with a free height.
func (g *FixedGrid) PlaceSubviews(bounds geom.Rect, proposal geom.Proposal, subviews []Subview) {
	currentX := 0.0
	heights := make([]float64, len(g.columnWidths))

	for i, sv := range subviews {
		col := g.ColumnFor(i)
		if col == 0 {
			currentX = 0
		}
		columnWidth := g.columnWidths[col]
		sv.Place(
			geom.Point{X: bounds.MinX() + currentX, Y: bounds.MinY() + heights[col]},
			geom.TopLeading,
			geom.ProposeWidth(columnWidth),
		)
		heights[col] += sv.SizeThatFits(proposal).Height
		currentX += columnWidth
	}
}
