// Package cli provides the command-line interface for okbase16.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/okbase16/internal/config"
	"github.com/jmylchreest/okbase16/internal/plugin/output"
	"github.com/jmylchreest/okbase16/internal/plugin/output/alacritty"
	"github.com/jmylchreest/okbase16/internal/plugin/output/base16"
	"github.com/jmylchreest/okbase16/internal/plugin/output/css"
	"github.com/jmylchreest/okbase16/internal/plugin/output/kitty"
	"github.com/jmylchreest/okbase16/internal/preview"
	"github.com/jmylchreest/okbase16/internal/version"
)

// app holds what one command tree shares between its commands.
type app struct {
	logger   hclog.Logger
	cfg      config.Config
	registry *output.Registry

	verbose    bool
	quiet      bool
	forceColor bool
	configPath string
	edits      stateFlags
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		logger:   hclog.NewNullLogger(),
		cfg:      config.Default(),
		registry: newRegistry(),
	}

	rootCmd := &cobra.Command{
		Use:   "okbase16",
		Short: "Edit Base16 colour schemes in OKLCH",
		Long: `okbase16 edits 16-slot Base16 colour schemes in the OKLCH colour space.

Schemes are generated from a seed colour with a harmony rule or edited slot by
slot, adjusted with global hue, saturation and lightness filters, shared as a
compact URL hash and exported to Base16 YAML and application themes.

The scheme every command works on is built from, in order: the --state hash
(or the state saved in the config file), the configured mode, filters and
metadata, and finally the editing flags on the command line.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetVersionTemplate(version.String() + "\n")

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	flags.BoolVar(&a.forceColor, "color", false, "force coloured output even when not writing to a terminal")
	flags.StringVar(&a.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/okbase16/config.toml)")
	a.edits.register(flags)

	rootCmd.AddCommand(
		newShowCmd(a),
		newShareCmd(a),
		newContrastCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newPreviewCmd(a),
		newSwatchCmd(a),
		newGradientCmd(a),
		newConvertCmd(a),
		newConfigCmd(a),
		newTemplatesCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// newRegistry registers every built-in output plugin.
func newRegistry() *output.Registry {
	r := output.NewRegistry()
	r.Register(base16.New())
	r.Register(kitty.New())
	r.Register(alacritty.New())
	r.Register(css.New())
	return r
}

// setup builds the logger and loads the configuration.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.verbose && a.quiet {
		return errors.New("--verbose and --quiet cannot be used together")
	}

	level := hclog.Warn
	switch {
	case a.quiet:
		level = hclog.Off
	case a.verbose:
		level = hclog.Debug
	}
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "okbase16",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})

	cfg, err := config.Loader{
		Path:   a.configPath,
		Logger: a.logger.Named("config"),
	}.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// previewOptions picks the colour profile for w.
func (a *app) previewOptions(w io.Writer) preview.Options {
	return preview.Options{Profile: preview.DetectProfile(w, a.forceColor)}
}

// status prints a progress line to stderr unless --quiet is set.
func (a *app) status(cmd *cobra.Command, format string, args ...any) {
	if a.quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// pluginNames lists the registered plugins for help text.
func (a *app) pluginNames() string {
	return strings.Join(a.registry.List(), ", ")
}
