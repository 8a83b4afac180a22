package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fixedgrid/pkg/js"
	"fixedgrid/pkg/scene"
)

func (a *app) newMeasureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "measure <scene>",
		Short: "Arrange a scene and print the container size and item frames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := arrangeFile(args[0])
			if err != nil {
				return err
			}
			if a.jsonMode {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return writeTable(cmd.OutOrStdout(), res)
		},
	}
}

// arrangeFile loads a scene file or script and arranges it.
func arrangeFile(path string) (*scene.Result, error) {
	s, err := js.Load(path)
	if err != nil {
		return nil, err
	}
	res, err := s.Arrange()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

type jsonResult struct {
	Name          string        `json:"name,omitempty"`
	Kind          scene.Kind    `json:"kind"`
	Width         float64       `json:"width"`
	Height        float64       `json:"height"`
	ColumnHeights []float64     `json:"column_heights"`
	Result        *scene.Result `json:"layout"`
}

func writeJSON(w io.Writer, res *scene.Result) error {
	out := jsonResult{
		Width:         res.Size().Width,
		Height:        res.Size().Height,
		ColumnHeights: res.ColumnHeights(),
		Result:        res,
	}
	if res.Scene != nil {
		out.Name = res.Scene.Name
		out.Kind = res.Scene.Kind
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeTable(w io.Writer, res *scene.Result) error {
	size := res.Size()
	fmt.Fprintf(w, "size: %g x %g\n", size.Width, size.Height)
	fmt.Fprintf(w, "columns: %v\n", res.ColumnHeights())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tLABEL\tCOLUMN\tX\tY\tWIDTH\tHEIGHT")
	for _, f := range res.Frames {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%g\t%g\t%g\t%g\n",
			f.Index, f.Label, f.Column, f.Rect.X, f.Rect.Y, f.Rect.Width, f.Rect.Height)
	}
	return tw.Flush()
}
