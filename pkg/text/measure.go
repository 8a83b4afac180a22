package text

import (
	"math"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"fixedgrid/pkg/geom"
	"fixedgrid/pkg/layout"
)

// DefaultPadding is the inset applied around text blocks.
const DefaultPadding = 4.0

// Face returns the face used for measurement and rendering. It is a fixed
// 7x13 bitmap face, so results do not depend on fonts installed on the host.
func Face() font.Face {
	return basicfont.Face7x13
}

// Measurer measures and wraps text. A Measurer is not safe for concurrent use.
type Measurer struct {
	dc      *gg.Context
	padding float64
}

// NewMeasurer creates a Measurer with DefaultPadding.
func NewMeasurer() *Measurer {
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(Face())
	return &Measurer{dc: dc, padding: DefaultPadding}
}

// SetPadding changes the inset applied around blocks.
func (m *Measurer) SetPadding(padding float64) {
	m.padding = padding
}

// LineHeight returns the height of one line of text.
func (m *Measurer) LineHeight() float64 {
	return m.dc.FontHeight()
}

// MeasureText measures a single line.
func (m *Measurer) MeasureText(s string) (width, height float64) {
	return m.dc.MeasureString(s)
}

// WrapLines breaks s into lines no wider than maxWidth. Explicit newlines
// are kept; a single word wider than maxWidth gets a line of its own.
// A non-positive maxWidth disables wrapping.
func (m *Measurer) WrapLines(s string, maxWidth float64) []string {
	if s == "" {
		return nil
	}
	if maxWidth <= 0 || math.IsInf(maxWidth, 1) {
		return strings.Split(s, "\n")
	}
	return m.dc.WordWrap(s, maxWidth)
}

// BlockSize computes the size of a padded text block under a proposal.
// With a proposed width the text wraps inside it and the block takes that
// width; otherwise the block is as wide as its longest line.
func (m *Measurer) BlockSize(s string, proposal geom.Proposal) geom.Size {
	maxWidth := 0.0
	if w, ok := proposal.Width(); ok {
		maxWidth = w - 2*m.padding
		if maxWidth <= 0 {
			// Too narrow for any text; fall back to one word per line.
			maxWidth = 1
		}
	}
	lines := m.WrapLines(s, maxWidth)

	widest := 0.0
	for _, line := range lines {
		w, _ := m.MeasureText(line)
		widest = max(widest, w)
	}
	height := float64(len(lines))*m.LineHeight() + 2*m.padding
	return geom.Size{
		Width:  proposal.WidthOr(widest + 2*m.padding),
		Height: height,
	}
}

// NewBox creates a layout box whose size is the text block of body.
func (m *Measurer) NewBox(body string) *layout.Box {
	return layout.NewFlexibleBox(func(p geom.Proposal) geom.Size {
		return m.BlockSize(body, p)
	})
}
