package geom

import "fmt"

// Proposal is the size hint a container hands to a child. Either dimension
// may be left unspecified, meaning "use your natural size" along that axis.
type Proposal struct {
	width     float64
	height    float64
	hasWidth  bool
	hasHeight bool
}

// Unspecified leaves both dimensions to the child.
var Unspecified = Proposal{}

// Propose fixes both dimensions.
func Propose(width, height float64) Proposal {
	return Proposal{width: width, height: height, hasWidth: true, hasHeight: true}
}

// ProposeWidth fixes the width and leaves the height free.
func ProposeWidth(width float64) Proposal {
	return Proposal{width: width, hasWidth: true}
}

// ProposeHeight fixes the height and leaves the width free.
func ProposeHeight(height float64) Proposal {
	return Proposal{height: height, hasHeight: true}
}

// ProposeSize fixes both dimensions from s.
func ProposeSize(s Size) Proposal {
	return Propose(s.Width, s.Height)
}

func (p Proposal) Width() (float64, bool)  { return p.width, p.hasWidth }
func (p Proposal) Height() (float64, bool) { return p.height, p.hasHeight }

// WidthOr returns the proposed width, or def when the width is unspecified.
func (p Proposal) WidthOr(def float64) float64 {
	if p.hasWidth {
		return p.width
	}
	return def
}

// HeightOr returns the proposed height, or def when the height is unspecified.
func (p Proposal) HeightOr(def float64) float64 {
	if p.hasHeight {
		return p.height
	}
	return def
}

func (p Proposal) String() string {
	return fmt.Sprintf("%s x %s", dimString(p.width, p.hasWidth), dimString(p.height, p.hasHeight))
}

func dimString(v float64, ok bool) string {
	if !ok {
		return "nil"
	}
	return fmt.Sprintf("%g", v)
}
