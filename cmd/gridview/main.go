// Command gridview shows a rendered scene in a window and re-renders it
// whenever a path is submitted.
package main

import (
	"fmt"
	"image"
	"log"
	"math"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"fixedgrid/pkg/geom"
	"fixedgrid/pkg/js"
	"fixedgrid/pkg/render"
)

const margin = 16

// renderFile loads and arranges the scene at path and draws it onto a
// canvas just large enough to hold it.
func renderFile(path string) (*image.RGBA, string, error) {
	s, err := js.Load(path)
	if err != nil {
		return nil, "", err
	}
	res, err := s.Arrange()
	if err != nil {
		return nil, "", err
	}
	size := res.Size()
	w := max(1, int(math.Ceil(size.Width))+2*margin)
	h := max(1, int(math.Ceil(size.Height))+2*margin)

	target := image.NewRGBA(image.Rect(0, 0, w, h))
	r := render.NewRendererForImage(target)
	r.SetOffset(geom.Point{X: margin, Y: margin})
	r.Render(res)

	summary := fmt.Sprintf("%s: %gx%g, %d items in %d columns", path, size.Width, size.Height, len(res.Frames), len(res.Columns))
	return target, summary, nil
}

func main() {
	a := app.New()
	w := a.NewWindow("gridview")
	w.Resize(fyne.NewSize(1024, 768))

	// Blank initial render target
	canvasImg := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel("Enter a scene file or script and press Enter")

	pathEntry := widget.NewEntry()
	pathEntry.SetPlaceHolder("scenes/masonry.yaml")

	load := func(path string) {
		status.SetText("Loading " + path + "...")
		go func() {
			img, summary, err := renderFile(path)
			fyne.Do(func() {
				if err != nil {
					log.Printf("gridview: %v", err)
					status.SetText("Error: " + err.Error())
					return
				}
				canvasImg.Image = img
				canvasImg.Refresh()
				status.SetText(summary)
				w.SetTitle("gridview: " + path)
			})
		}()
	}
	pathEntry.OnSubmitted = load
	reload := widget.NewButton("Reload", func() { load(pathEntry.Text) })

	topBar := container.NewBorder(nil, nil, nil, reload, pathEntry)
	content := container.NewBorder(topBar, status, nil, nil, container.NewScroll(canvasImg))
	w.SetContent(content)
	w.Canvas().Focus(pathEntry)

	if len(os.Args) > 1 {
		pathEntry.SetText(os.Args[1])
		load(os.Args[1])
	}

	w.ShowAndRun()
}
