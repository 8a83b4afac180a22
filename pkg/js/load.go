package js

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fixedgrid/pkg/scene"
)

// Load reads a scene from path: scripts (.js) are run, anything else is
// read as a scene file.
func Load(path string) (*scene.Scene, error) {
	if !strings.EqualFold(filepath.Ext(path), ".js") {
		return scene.Load(path)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return New().RunNamed(filepath.Base(path), string(src))
}
