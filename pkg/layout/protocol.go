package layout

import "fixedgrid/pkg/geom"

// Subview is a child taking part in a layout pass. The host supplies the
// implementation; the grids only ever talk to children through it.
type Subview interface {
	// SizeThatFits reports the size the child wants under the proposal.
	SizeThatFits(proposal geom.Proposal) geom.Size

	// Place tells the child where to render. at is interpreted relative to
	// anchor within the child's frame.
	Place(at geom.Point, anchor geom.Anchor, proposal geom.Proposal)
}

// Layout is the two-phase contract shared by the grids. Each call is a
// complete pass: nothing is carried from one call to the next.
type Layout interface {
	// SizeThatFits measures the container for the given children.
	SizeThatFits(proposal geom.Proposal, subviews []Subview) geom.Size

	// PlaceSubviews issues exactly one Place call per child.
	PlaceSubviews(bounds geom.Rect, proposal geom.Proposal, subviews []Subview)
}

// ColumnAssigner is implemented by grids that can report the column each
// child is assigned to under a proposal, without placing anything.
type ColumnAssigner interface {
	Columns(proposal geom.Proposal, subviews []Subview) []int
}

// AsSubviews converts a typed slice of children into the slice the layouts take.
func AsSubviews[T Subview](items []T) []Subview {
	out := make([]Subview, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// Arrange runs a measure pass followed by a place pass with the container's
// top-left corner at origin. It returns the bounds the children were placed in.
func Arrange(l Layout, origin geom.Point, proposal geom.Proposal, subviews []Subview) geom.Rect {
	size := l.SizeThatFits(proposal, subviews)
	bounds := geom.NewRect(origin, size)
	l.PlaceSubviews(bounds, proposal, subviews)
	return bounds
}
