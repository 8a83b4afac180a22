package visualtest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	refWidth  = 400
	refHeight = 300
)

// TestSceneReftests renders every scene file under testdata/reftests next to
// the script of the same name and requires the two images to be identical.
func TestSceneReftests(t *testing.T) {
	scenes, err := filepath.Glob(filepath.Join("testdata", "reftests", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(scenes) == 0 {
		t.Skip("no reftest scenes found")
	}

	for _, scenePath := range scenes {
		scriptPath := strings.TrimSuffix(scenePath, ".yaml") + ".js"
		t.Run(filepath.Base(scenePath), func(t *testing.T) {
			if _, err := os.Stat(scriptPath); err != nil {
				t.Fatalf("missing script %s", scriptPath)
			}
			runReftest(t, scenePath, scriptPath)
		})
	}
}

func runReftest(t *testing.T, scenePath, scriptPath string) {
	t.Helper()

	fromFile, err := LoadScene(scenePath)
	if err != nil {
		t.Fatal(err)
	}
	fromScript, err := LoadScene(scriptPath)
	if err != nil {
		t.Fatal(err)
	}

	want, err := RenderScene(fromFile, refWidth, refHeight)
	if err != nil {
		t.Fatal(err)
	}
	got, err := RenderScene(fromScript, refWidth, refHeight)
	if err != nil {
		t.Fatal(err)
	}

	opts := CompareOptions{DiffImagePath: filepath.Join(t.TempDir(), "diff.png")}
	result, err := CompareImages(got, want, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Match {
		t.Errorf("%d/%d pixels differ (max channel difference %d), diff at %s",
			result.DifferentPixels, result.TotalPixels, result.MaxDifference, opts.DiffImagePath)
	}
}

// TestRenderSceneFile renders each reftest scene to disk twice and requires
// the files to be pixel-identical.
func TestRenderSceneFile(t *testing.T) {
	scenes, err := filepath.Glob(filepath.Join("testdata", "reftests", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(scenes) == 0 {
		t.Fatal("no reftest scenes found")
	}

	for _, scenePath := range scenes {
		t.Run(filepath.Base(scenePath), func(t *testing.T) {
			dir := t.TempDir()
			first := filepath.Join(dir, "out", "first.png")
			second := filepath.Join(dir, "out", "second.png")
			for _, out := range []string{first, second} {
				if err := RenderSceneFile(scenePath, out, refWidth, refHeight); err != nil {
					t.Fatal(err)
				}
			}

			result, err := CompareFiles(first, second, CompareOptions{})
			if err != nil {
				t.Fatal(err)
			}
			if !result.Match {
				t.Errorf("%d pixels differ between two renders of %s", result.DifferentPixels, scenePath)
			}
			if result.TotalPixels != refWidth*refHeight {
				t.Errorf("expected %d pixels, got %d", refWidth*refHeight, result.TotalPixels)
			}
		})
	}
}
