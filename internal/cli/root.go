// Package cli implements the gridshow command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is reported by the version command.
const Version = "0.1.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// Config keys.
const (
	cfgKeyWidth  = "canvas.width"
	cfgKeyHeight = "canvas.height"
	cfgKeyMargin = "canvas.margin"
	cfgKeyCols   = "preview.cols"
	cfgKeyColour = "preview.colour"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault(cfgKeyWidth, 0)
	v.SetDefault(cfgKeyHeight, 0)
	v.SetDefault(cfgKeyMargin, 8)
	v.SetDefault(cfgKeyCols, 80)
	v.SetDefault(cfgKeyColour, true)
}

// app carries state shared by the subcommands of one root command.
type app struct {
	configFile string
	jsonMode   bool
	v          *viper.Viper
}

// NewRootCmd creates the top-level "gridshow" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	setDefaults(a.v)

	root := &cobra.Command{
		Use:   "gridshow",
		Short: "Measure, render and preview column grid layouts",
		Long: `gridshow runs a single layout pass of a fixed-width or balanced column
grid described by a scene file (YAML, JSON, TOML) or a scene script (.js),
and reports, renders or previews the result.`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.loadConfig,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./gridshow.yaml if present)")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(a.newMeasureCmd())
	root.AddCommand(a.newRenderCmd())
	root.AddCommand(a.newPreviewCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// loadConfig reads the optional config file. A missing default config is
// not an error; a missing explicit --config is.
func (a *app) loadConfig(cmd *cobra.Command, args []string) error {
	a.v.SetEnvPrefix("GRIDSHOW")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
	} else {
		a.v.SetConfigName("gridshow")
		a.v.AddConfigPath(".")
	}
	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && a.configFile == "" {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command with args and returns the exit code.
// Cobra reports the error itself.
func run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		return exitUserError
	}
	return exitSuccess
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gridshow version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gridshow", Version)
		},
	}
}
