package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/okbase16/internal/plugin/output"
)

type exportOptions struct {
	outputs  []string
	dir      string
	dryRun   bool
	compress bool
	backup   bool
}

func newExportCmd(a *app) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the scheme with output plugins",
		Long: fmt.Sprintf(`Generate configuration files from the scheme with one or more output
plugins. Plugins without their own output directory write to --dir.

Available plugins: %s

Examples:
  okbase16 export
  okbase16 export --outputs all --dir ~/.config/okbase16/out
  okbase16 export --outputs kitty --kitty.output-dir ~/.config/kitty --kitty.reload
  okbase16 export --outputs base16 --compress --dry-run`, a.pluginNames()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runExport(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&opts.outputs, "outputs", "o", nil, "comma-separated output plugins, or \"all\" (default from config)")
	flags.StringVarP(&opts.dir, "dir", "d", "", "output directory (default from config)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "generate without writing files")
	flags.BoolVar(&opts.compress, "compress", false, "write xz-compressed files")
	flags.BoolVar(&opts.backup, "backup", false, "keep existing files as <name>.backup")

	for _, name := range a.registry.List() {
		p, _ := a.registry.Get(name)
		p.RegisterFlags(cmd)
	}
	return cmd
}

func (a *app) runExport(cmd *cobra.Command, opts exportOptions) error {
	flags := cmd.Flags()
	if !flags.Changed("outputs") {
		opts.outputs = a.cfg.Export.Outputs
	}
	if !flags.Changed("dir") {
		opts.dir = a.cfg.Export.Dir
	}
	if !flags.Changed("compress") {
		opts.compress = a.cfg.Export.Compress
	}

	plugins, err := a.registry.Select(opts.outputs)
	if err != nil {
		return err
	}
	if len(plugins) == 0 {
		return fmt.Errorf("no output plugins selected (available: %s)", a.pluginNames())
	}

	_, theme, err := a.theme(cmd)
	if err != nil {
		return err
	}

	templateBase, err := a.cfg.TemplateBase()
	if err != nil {
		a.logger.Warn("custom templates disabled", "error", err)
		templateBase = ""
	}

	results, runErr := output.Run(cmd.Context(), plugins, theme, output.WriteOptions{
		Dir:          opts.dir,
		DryRun:       opts.dryRun,
		Compress:     opts.compress,
		Backup:       opts.backup,
		TemplateBase: templateBase,
		Logger:       a.logger.Named("export"),
	})

	w := cmd.OutOrStdout()
	succeeded := 0
	for _, r := range results {
		if r.Err != nil {
			a.status(cmd, "✗ %s failed: %v", r.Plugin, r.Err)
			continue
		}
		succeeded++
		a.status(cmd, "✓ Output plugin: %s", r.Plugin)
		for _, f := range r.Files {
			if f.Written {
				fmt.Fprintf(w, "  ├─ %s (%d bytes)\n", f.Path, f.Size)
			} else {
				fmt.Fprintf(w, "  Would write: %s (%d bytes)\n", f.Path, f.Size)
			}
		}
	}
	if runErr != nil {
		return fmt.Errorf("export failed: %w", runErr)
	}
	a.status(cmd, "✓ Done! Generated %d output plugin(s)", succeeded)
	return nil
}
