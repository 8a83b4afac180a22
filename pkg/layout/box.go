package layout

import "fixedgrid/pkg/geom"

// SizeFunc computes a child's size under a proposal.
type SizeFunc func(geom.Proposal) geom.Size

// Placement records one Place call.
type Placement struct {
	At       geom.Point
	Anchor   geom.Anchor
	Proposal geom.Proposal
}

// Box is a Subview that sizes itself through a SizeFunc and remembers where
// it was placed. It is what scenes, scripts and tests hand to the grids.
type Box struct {
	Label string

	size       SizeFunc
	placements []Placement
	queries    int
}

// NewBox creates a box with a natural size. The box takes the proposed
// width when one is given and always keeps its natural height.
func NewBox(natural geom.Size) *Box {
	return NewFlexibleBox(func(p geom.Proposal) geom.Size {
		return geom.Size{Width: p.WidthOr(natural.Width), Height: natural.Height}
	})
}

// NewFlexibleBox creates a box whose size is computed by fn.
func NewFlexibleBox(fn SizeFunc) *Box {
	return &Box{size: fn}
}

// SizeThatFits implements Subview.
func (b *Box) SizeThatFits(proposal geom.Proposal) geom.Size {
	b.queries++
	return b.size(proposal)
}

// Place implements Subview.
func (b *Box) Place(at geom.Point, anchor geom.Anchor, proposal geom.Proposal) {
	b.placements = append(b.placements, Placement{At: at, Anchor: anchor, Proposal: proposal})
}

// Placements returns every placement since the last Reset.
func (b *Box) Placements() []Placement {
	return b.placements
}

// Placed reports whether the box has been placed since the last Reset.
func (b *Box) Placed() bool {
	return len(b.placements) > 0
}

// Queries returns the number of SizeThatFits calls since the last Reset.
func (b *Box) Queries() int {
	return b.queries
}

// Frame returns the rectangle the box occupies after its last placement,
// sized under the proposal it was placed with. An unplaced box has an
// empty frame.
func (b *Box) Frame() geom.Rect {
	if len(b.placements) == 0 {
		return geom.Rect{}
	}
	last := b.placements[len(b.placements)-1]
	return last.Anchor.Frame(last.At, b.size(last.Proposal))
}

// Reset forgets placements and query counts.
func (b *Box) Reset() {
	b.placements = nil
	b.queries = 0
}
