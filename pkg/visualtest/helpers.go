package visualtest

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"fixedgrid/pkg/geom"
	"fixedgrid/pkg/js"
	"fixedgrid/pkg/render"
	"fixedgrid/pkg/scene"
)

// Margin is the blank border drawn around every rendered scene.
const Margin = 8

// LoadScene reads a scene file or runs a scene script.
func LoadScene(path string) (*scene.Scene, error) {
	return js.Load(path)
}

// RenderScene arranges s and draws it onto a width x height canvas.
func RenderScene(s *scene.Scene, width, height int) (image.Image, error) {
	res, err := s.Arrange()
	if err != nil {
		return nil, fmt.Errorf("arrange: %w", err)
	}
	r := render.NewRenderer(width, height)
	r.SetOffset(geom.Point{X: Margin, Y: Margin})
	r.Render(res)
	return r.Image(), nil
}

// RenderSceneFile renders the scene at scenePath to a PNG file
func RenderSceneFile(scenePath, outputPath string, width, height int) error {
	s, err := LoadScene(scenePath)
	if err != nil {
		return err
	}
	img, err := RenderScene(s, width, height)
	if err != nil {
		return fmt.Errorf("%s: %w", scenePath, err)
	}

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := savePNG(img, outputPath); err != nil {
		return fmt.Errorf("save error: %w", err)
	}
	return nil
}
