package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fixedgrid/pkg/termview"
)

func (a *app) newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <scene>",
		Short: "Print a character-cell sketch of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := arrangeFile(args[0])
			if err != nil {
				return err
			}
			p := termview.New()
			p.Colour = a.v.GetBool(cfgKeyColour)
			fmt.Fprintln(cmd.OutOrStdout(), p.Render(res, a.v.GetInt(cfgKeyCols)))
			return nil
		},
	}

	cmd.Flags().Int("cols", 80, "preview width in terminal columns")
	cmd.Flags().Bool("colour", true, "colour items")
	_ = a.v.BindPFlag(cfgKeyCols, cmd.Flags().Lookup("cols"))
	_ = a.v.BindPFlag(cfgKeyColour, cmd.Flags().Lookup("colour"))

	return cmd
}
