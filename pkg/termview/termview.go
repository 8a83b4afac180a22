// Package termview prints an arranged scene as a character-cell sketch.
package termview

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fixedgrid/pkg/render"
	"fixedgrid/pkg/scene"
)

// CellAspect is how many times taller than wide a terminal cell is.
const CellAspect = 2.0

// Styles holds the lipgloss styles used by the preview.
type Styles struct {
	Frame  lipgloss.Style
	Header lipgloss.Style
	Empty  lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
	}
}

type cell struct {
	ch    rune
	owner int // frame index, -1 for background
}

// canvas is a grid of cells that frames are drawn into.
type canvas struct {
	cols, rows int
	cells      [][]cell
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: cols, rows: rows, cells: make([][]cell, rows)}
	for y := range c.cells {
		c.cells[y] = make([]cell, cols)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{ch: ' ', owner: -1}
		}
	}
	return c
}

func (c *canvas) set(x, y int, ch rune, owner int) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.cells[y][x] = cell{ch: ch, owner: owner}
}

// box draws an outlined rectangle with label written inside.
func (c *canvas) box(x0, y0, x1, y1, owner int, label string) {
	for x := x0; x <= x1; x++ {
		c.set(x, y0, '-', owner)
		c.set(x, y1, '-', owner)
	}
	for y := y0; y <= y1; y++ {
		c.set(x0, y, '|', owner)
		c.set(x1, y, '|', owner)
	}
	for _, p := range [][2]int{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		c.set(p[0], p[1], '+', owner)
	}
	ly := y0 + 1
	if y1-y0 < 2 {
		ly = y0
	}
	for i, r := range label {
		x := x0 + 1 + i
		if x >= x1 {
			break
		}
		c.set(x, ly, r, owner)
	}
}

// Preview renders res scaled so the container is cols cells wide.
type Preview struct {
	Styles Styles
	Colour bool
}

// New returns a preview with the default styles and colour enabled.
func New() *Preview {
	return &Preview{Styles: DefaultStyles(), Colour: true}
}

// Render draws res into a string cols cells wide.
func (p *Preview) Render(res *scene.Result, cols int) string {
	header := p.Styles.Header.Render(headerText(res))
	size := res.Size()
	if len(res.Frames) == 0 || size.Width <= 0 || size.Height <= 0 || cols < 2 {
		return lipgloss.JoinVertical(lipgloss.Left, header, p.Styles.Empty.Render("(empty)"))
	}

	scale := float64(cols) / size.Width
	rows := max(1, int(math.Ceil(size.Height*scale/CellAspect)))
	cv := newCanvas(cols, rows)

	for _, f := range res.Frames {
		rc := f.Rect.Translate(-res.Bounds.X, -res.Bounds.Y)
		x0 := int(math.Round(rc.MinX() * scale))
		x1 := int(math.Round(rc.MaxX()*scale)) - 1
		y0 := int(math.Round(rc.MinY() * scale / CellAspect))
		y1 := int(math.Round(rc.MaxY()*scale/CellAspect)) - 1
		if x1 < x0 || y1 < y0 {
			continue
		}
		cv.box(x0, y0, x1, y1, f.Index, frameLabel(f))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, p.Styles.Frame.Render(p.body(cv, res)))
}

// body joins canvas rows, colouring each run of cells by its owner.
func (p *Preview) body(cv *canvas, res *scene.Result) string {
	lines := make([]string, cv.rows)
	for y, row := range cv.cells {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].owner == row[start].owner {
				continue
			}
			b.WriteString(p.paint(row[start:x], res))
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (p *Preview) paint(run []cell, res *scene.Result) string {
	runes := make([]rune, len(run))
	for i, c := range run {
		runes[i] = c.ch
	}
	s := string(runes)
	owner := run[0].owner
	if !p.Colour || owner < 0 || owner >= len(res.Frames) {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(render.FrameColour(res.Frames[owner]))).Render(s)
}

func frameLabel(f scene.Frame) string {
	if f.Label != "" {
		return f.Label
	}
	return strconv.Itoa(f.Index)
}

func headerText(res *scene.Result) string {
	name := "grid"
	if res.Scene != nil && res.Scene.Name != "" {
		name = res.Scene.Name
	}
	size := res.Size()
	return fmt.Sprintf("%s  %gx%g  %d columns  %d items", name, size.Width, size.Height, len(res.Columns), len(res.Frames))
}
