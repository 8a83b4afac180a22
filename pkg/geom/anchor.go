package geom

import (
	"fmt"
	"strings"
)

// Anchor is a unit point inside a child's frame: (0,0) is the top-leading
// corner and (1,1) the bottom-trailing one.
type Anchor struct {
	X float64
	Y float64
}

var (
	TopLeading     = Anchor{0, 0}
	Top            = Anchor{0.5, 0}
	TopTrailing    = Anchor{1, 0}
	Leading        = Anchor{0, 0.5}
	Center         = Anchor{0.5, 0.5}
	Trailing       = Anchor{1, 0.5}
	BottomLeading  = Anchor{0, 1}
	Bottom         = Anchor{0.5, 1}
	BottomTrailing = Anchor{1, 1}
)

var anchorNames = map[string]Anchor{
	"topleading":     TopLeading,
	"top":            Top,
	"toptrailing":    TopTrailing,
	"leading":        Leading,
	"center":         Center,
	"trailing":       Trailing,
	"bottomleading":  BottomLeading,
	"bottom":         Bottom,
	"bottomtrailing": BottomTrailing,
}

// ParseAnchor resolves a named anchor such as "center" or "top-leading".
// Matching ignores case, dashes and underscores.
func ParseAnchor(name string) (Anchor, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	if a, ok := anchorNames[key]; ok {
		return a, nil
	}
	return Anchor{}, fmt.Errorf("unknown anchor %q", name)
}

// Origin converts a position expressed relative to this anchor into the
// top-left corner of a frame of the given size.
func (a Anchor) Origin(pos Point, size Size) Point {
	return Point{
		X: pos.X - a.X*size.Width,
		Y: pos.Y - a.Y*size.Height,
	}
}

// Frame returns the rectangle of the given size anchored at pos.
func (a Anchor) Frame(pos Point, size Size) Rect {
	return NewRect(a.Origin(pos, size), size)
}
