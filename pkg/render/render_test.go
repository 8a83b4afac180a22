package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"fixedgrid/pkg/geom"
	"fixedgrid/pkg/scene"
)

func rgb(c color.Color) [3]uint32 {
	r, g, b, _ := c.RGBA()
	return [3]uint32{r >> 8, g >> 8, b >> 8}
}

func twoColumnResult(t *testing.T) *scene.Result {
	t.Helper()
	s := scene.New(scene.KindFixed)
	s.ColumnWidths = []float64{40, 40}
	s.Items = []scene.Item{
		{Height: 40, Color: "#ff0000"},
		{Height: 40, Color: "#0000ff"},
		{Height: 20},
	}
	res, err := s.Arrange()
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestRender_FillsFrames(t *testing.T) {
	r := NewRenderer(80, 100)
	r.Render(twoColumnResult(t))

	if got := rgb(r.At(20, 20)); got != [3]uint32{255, 0, 0} {
		t.Errorf("expected red inside first item, got %v", got)
	}
	if got := rgb(r.At(60, 20)); got != [3]uint32{0, 0, 255} {
		t.Errorf("expected blue inside second item, got %v", got)
	}
	if got := rgb(r.At(60, 50)); got != [3]uint32{242, 242, 242} {
		t.Errorf("expected column guide under the second item, got %v", got)
	}
	if got := rgb(r.At(20, 90)); got != [3]uint32{255, 255, 255} {
		t.Errorf("expected white background below the grid, got %v", got)
	}
}

func TestRender_PaletteFallback(t *testing.T) {
	r := NewRenderer(80, 100)
	r.Render(twoColumnResult(t))

	// Third item has no colour; palette entry 2 is #e15759.
	if got := rgb(r.At(20, 50)); got != [3]uint32{0xe1, 0x57, 0x59} {
		t.Errorf("expected palette colour, got %v", got)
	}
}

func TestRender_Offset(t *testing.T) {
	r := NewRenderer(100, 100)
	r.SetOffset(geom.Point{X: 10, Y: 10})
	r.Render(twoColumnResult(t))
	if got := rgb(r.At(5, 5)); got != [3]uint32{255, 255, 255} {
		t.Errorf("expected white margin, got %v", got)
	}
	if got := rgb(r.At(30, 30)); got != [3]uint32{255, 0, 0} {
		t.Errorf("expected red after offset, got %v", got)
	}
}

func TestRender_IntoImage(t *testing.T) {
	target := image.NewRGBA(image.Rect(0, 0, 80, 100))
	r := NewRendererForImage(target)
	r.SetOptions(Options{})
	r.Render(twoColumnResult(t))
	if got := rgb(target.At(20, 20)); got != [3]uint32{255, 0, 0} {
		t.Errorf("expected red drawn into target, got %v", got)
	}
	if got := rgb(target.At(60, 50)); got != [3]uint32{255, 255, 255} {
		t.Errorf("guides disabled, expected white, got %v", got)
	}
}

func TestRender_SavePNG(t *testing.T) {
	r := NewRenderer(80, 100)
	r.Render(twoColumnResult(t))
	path := filepath.Join(t.TempDir(), "grid.png")
	if err := r.SavePNG(path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty PNG")
	}
}

func TestFrameColour(t *testing.T) {
	if got := FrameColour(scene.Frame{Index: 9}); got != Palette[1] {
		t.Errorf("expected palette wrap-around, got %s", got)
	}
	if got := FrameColour(scene.Frame{Color: "#123456"}); got != "#123456" {
		t.Errorf("explicit colour should win, got %s", got)
	}
}
