package layout

import (
	"fmt"

	"fixedgrid/pkg/geom"
)

// BalancedGrid splits the container into equal-width columns. The first
// row is filled left to right; after that every child goes to whichever
// column is currently shortest.
type BalancedGrid struct {
	gridConfig
	columns int
}

// NewBalancedGrid creates a grid with the given number of columns.
func NewBalancedGrid(columns int, opts ...Option) (*BalancedGrid, error) {
	if columns < 1 {
		return nil, fmt.Errorf("balanced grid with %d columns: %w", columns, ErrNoColumns)
	}
	return &BalancedGrid{gridConfig: buildConfig(opts), columns: columns}, nil
}

// ColumnCount returns the number of columns.
func (g *BalancedGrid) ColumnCount() int {
	return g.columns
}

// ColumnWidth returns the width each column gets inside bounds.
func (g *BalancedGrid) ColumnWidth(bounds geom.Rect) float64 {
	return bounds.Width / float64(g.columns)
}

// columnFor picks the column for child index given the heights so far.
// Measure and place both go through here so they agree on assignments.
func (g *BalancedGrid) columnFor(index int, heights []float64) int {
	if index < g.columns {
		return index
	}
	return shortest(heights)
}

// assign walks the children in order, recording each child's column and
// the resulting column heights.
func (g *BalancedGrid) assign(proposal geom.Proposal, subviews []Subview) (cols []int, heights []float64, widest float64) {
	cols = make([]int, len(subviews))
	heights = make([]float64, g.columns)
	for i, sv := range subviews {
		size := sv.SizeThatFits(proposal)
		col := g.columnFor(i, heights)
		cols[i] = col
		heights[col] += size.Height
		widest = max(widest, size.Width)
	}
	return cols, heights, widest
}

// Columns returns the column every child is placed in under proposal.
func (g *BalancedGrid) Columns(proposal geom.Proposal, subviews []Subview) []int {
	cols, _, _ := g.assign(proposal, subviews)
	return cols
}

// SizeThatFits returns the tallest column height. The width is the proposed
// width; with no proposed width it is the column count times the widest
// child's natural width, which is what placement would then divide back up.
func (g *BalancedGrid) SizeThatFits(proposal geom.Proposal, subviews []Subview) geom.Size {
	_, heights, widest := g.assign(proposal, subviews)
	width, ok := proposal.Width()
	if !ok {
		width = widest * float64(g.columns)
	}
	return geom.Size{Width: width, Height: tallest(heights)}
}

// PlaceSubviews positions each child at the bottom of its column so far and
// proposes the shared column width with a free height.
func (g *BalancedGrid) PlaceSubviews(bounds geom.Rect, proposal geom.Proposal, subviews []Subview) {
	columnWidth := g.ColumnWidth(bounds)
	heights := make([]float64, g.columns)

	for i, sv := range subviews {
		col := g.columnFor(i, heights)
		sv.Place(
			geom.Point{
				X: bounds.MinX() + columnWidth*float64(col),
				Y: bounds.MinY() + heights[col],
			},
			geom.TopLeading,
			geom.ProposeWidth(columnWidth),
		)
		heights[col] += sv.SizeThatFits(proposal).Height
	}
}
