// Package render draws arranged scenes onto raster images with gg.
package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"

	"fixedgrid/pkg/geom"
	"fixedgrid/pkg/scene"
	"fixedgrid/pkg/text"
)

// Palette colours items that do not name their own colour, by index.
var Palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2",
	"#59a14f", "#edc948", "#b07aa1", "#ff9da7",
}

const (
	guideFill   = "#f2f2f2"
	guideLine   = "#c8c8c8"
	outline     = "#333333"
	labelColour = "#ffffff"
)

// Options controls what Render draws besides the item rectangles.
type Options struct {
	Guides bool // column backgrounds and separators
	Labels bool // item labels
	Text   bool // wrapped bodies of text items
}

// DefaultOptions draws everything.
func DefaultOptions() Options {
	return Options{Guides: true, Labels: true, Text: true}
}

type Renderer struct {
	context  *gg.Context
	measurer *text.Measurer
	opts     Options
	offset   geom.Point
}

func NewRenderer(width, height int) *Renderer {
	return newRenderer(gg.NewContext(width, height))
}

// NewRendererForImage draws directly into target.
func NewRendererForImage(target *image.RGBA) *Renderer {
	return newRenderer(gg.NewContextForRGBA(target))
}

func newRenderer(dc *gg.Context) *Renderer {
	dc.SetFontFace(text.Face())
	return &Renderer{context: dc, measurer: text.NewMeasurer(), opts: DefaultOptions()}
}

// SetOptions replaces the drawing options.
func (r *Renderer) SetOptions(opts Options) {
	r.opts = opts
}

// SetOffset shifts everything drawn afterwards by p.
func (r *Renderer) SetOffset(p geom.Point) {
	r.offset = p
}

// Render clears the canvas and draws the result: column guides first,
// then items in placement order.
func (r *Renderer) Render(res *scene.Result) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()

	if r.opts.Guides {
		r.drawGuides(res.Columns)
	}
	for _, f := range res.Frames {
		r.drawFrame(f)
	}
}

func (r *Renderer) rect(rc geom.Rect) (x, y, w, h float64) {
	return rc.X + r.offset.X, rc.Y + r.offset.Y, rc.Width, rc.Height
}

func (r *Renderer) drawGuides(columns []geom.Rect) {
	for i, c := range columns {
		x, y, w, h := r.rect(c)
		if i%2 == 1 && w > 0 && h > 0 {
			r.context.SetHexColor(guideFill)
			r.context.DrawRectangle(x, y, w, h)
			r.context.Fill()
		}
		if i > 0 {
			r.context.SetHexColor(guideLine)
			r.context.SetLineWidth(1)
			r.context.DrawLine(x, y, x, y+h)
			r.context.Stroke()
		}
	}
}

// FrameColour returns the fill used for a frame.
func FrameColour(f scene.Frame) string {
	if f.Color != "" {
		return f.Color
	}
	return Palette[f.Index%len(Palette)]
}

func (r *Renderer) drawFrame(f scene.Frame) {
	x, y, w, h := r.rect(f.Rect)
	if w <= 0 || h <= 0 {
		return
	}

	r.context.SetHexColor(FrameColour(f))
	r.context.DrawRectangle(x, y, w, h)
	r.context.Fill()

	r.context.SetHexColor(outline)
	r.context.SetLineWidth(1)
	r.context.DrawRectangle(x+0.5, y+0.5, w-1, h-1)
	r.context.Stroke()

	pad := text.DefaultPadding
	if r.opts.Text && f.Text != "" {
		r.context.SetHexColor(labelColour)
		lines := r.measurer.WrapLines(f.Text, w-2*pad)
		lh := r.measurer.LineHeight()
		for i, line := range lines {
			r.context.DrawStringAnchored(line, x+pad, y+pad+float64(i)*lh, 0, 1)
		}
		return
	}
	if r.opts.Labels && f.Label != "" {
		label := f.Label
		if lw, _ := r.measurer.MeasureText(label); lw > w-2*pad {
			label = strings.TrimSpace(r.measurer.WrapLines(label, w-2*pad)[0])
		}
		r.context.SetHexColor(labelColour)
		r.context.DrawStringAnchored(label, x+pad, y+pad, 0, 1)
	}
}

// Image returns the canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// At returns the colour of one pixel of the canvas.
func (r *Renderer) At(x, y int) color.Color {
	return r.context.Image().At(x, y)
}

func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}
