package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"fixedgrid/pkg/geom"
	"fixedgrid/pkg/render"
)

func (a *app) newRenderCmd() *cobra.Command {
	var output string
	var noLabels, noGuides bool

	cmd := &cobra.Command{
		Use:   "render <scene>",
		Short: "Render a scene to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := arrangeFile(args[0])
			if err != nil {
				return err
			}

			margin := a.v.GetFloat64(cfgKeyMargin)
			width, height := a.v.GetInt(cfgKeyWidth), a.v.GetInt(cfgKeyHeight)
			size := res.Size()
			if width <= 0 {
				width = int(math.Ceil(size.Width + 2*margin))
			}
			if height <= 0 {
				height = int(math.Ceil(size.Height + 2*margin))
			}
			if width <= 0 || height <= 0 {
				return fmt.Errorf("nothing to render: canvas would be %dx%d", width, height)
			}

			r := render.NewRenderer(width, height)
			opts := render.DefaultOptions()
			opts.Labels = !noLabels
			opts.Text = !noLabels
			opts.Guides = !noGuides
			r.SetOptions(opts)
			r.SetOffset(geom.Point{X: margin, Y: margin})
			r.Render(res)

			if err := r.SavePNG(output); err != nil {
				return fmt.Errorf("save %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Rendered %d items (%dx%d) to %s\n", len(res.Frames), width, height, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "output.png", "output PNG file path")
	cmd.Flags().Int("width", 0, "canvas width in pixels (default: fit the layout)")
	cmd.Flags().Int("height", 0, "canvas height in pixels (default: fit the layout)")
	cmd.Flags().Float64("margin", 8, "blank border around the layout in pixels")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "do not draw labels or text")
	cmd.Flags().BoolVar(&noGuides, "no-guides", false, "do not draw column guides")
	_ = a.v.BindPFlag(cfgKeyWidth, cmd.Flags().Lookup("width"))
	_ = a.v.BindPFlag(cfgKeyHeight, cmd.Flags().Lookup("height"))
	_ = a.v.BindPFlag(cfgKeyMargin, cmd.Flags().Lookup("margin"))

	return cmd
}
