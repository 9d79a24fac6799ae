package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/okbase16/internal/plugin/output"
	tmplloader "github.com/jmylchreest/okbase16/internal/plugin/output/template"
)

type templatesOptions struct {
	plugins  []string
	force    bool
	location string
}

func newTemplatesCmd(a *app) *cobra.Command {
	var opts templatesOptions

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage output plugin templates",
		Long: `Manage output plugin templates including listing and dumping embedded templates.

Templates can be customised by dumping them to the template directory
(default: ~/.config/okbase16/templates/{plugin-name}/) and editing them. Custom
templates are used instead of the embedded ones.

Examples:
  okbase16 templates list
  okbase16 templates dump -o kitty
  okbase16 templates dump -o css --force`,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List available plugin templates",
		Long: `List all available templates from output plugins.

Shows which templates are embedded and which have custom overrides.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTemplatesList(cmd, opts)
		},
	}
	list.Flags().StringSliceVarP(&opts.plugins, "output-plugins", "o", nil, "comma-separated list of output plugins to list (default: all)")

	dump := &cobra.Command{
		Use:   "dump",
		Short: "Dump embedded templates to files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTemplatesDump(cmd, opts)
		},
	}
	dump.Flags().StringSliceVarP(&opts.plugins, "output-plugins", "o", nil, "comma-separated list of output plugins (default: all)")
	dump.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite existing custom templates")
	dump.Flags().StringVarP(&opts.location, "location", "l", "", "custom location to dump templates (default: template directory)")

	cmd.AddCommand(list, dump)
	return cmd
}

// templateLoaders returns a loader for every selected plugin that renders
// templates, keyed in registry order.
func (a *app) templateLoaders(names []string, base string) ([]string, map[string]*tmplloader.Loader, error) {
	if len(names) == 0 {
		names = []string{output.All}
	}
	plugins, err := a.registry.Select(names)
	if err != nil {
		return nil, nil, err
	}

	var order []string
	loaders := make(map[string]*tmplloader.Loader)
	for _, p := range plugins {
		tp, ok := p.(output.TemplatePlugin)
		if !ok {
			continue
		}
		order = append(order, p.Name())
		loaders[p.Name()] = tmplloader.New(p.Name(), tp.Templates()).
			WithCustomBase(base).
			WithLogger(a.logger.Named("templates"))
	}
	return order, loaders, nil
}

func (a *app) runTemplatesList(cmd *cobra.Command, opts templatesOptions) error {
	base, err := a.cfg.TemplateBase()
	if err != nil {
		return err
	}
	order, loaders, err := a.templateLoaders(opts.plugins, base)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(order) == 0 {
		fmt.Fprintln(w, "No plugins with templates selected")
		return nil
	}

	table := NewTable("Plugin", "Template", "Source", "Path")
	for _, name := range order {
		loader := loaders[name]
		templates, err := loader.ListEmbeddedTemplates()
		if err != nil {
			return fmt.Errorf("failed to list templates for %s: %w", name, err)
		}
		for _, tmpl := range templates {
			info := loader.GetInfo(tmpl)
			source := "embedded"
			if info.UsingCustom {
				source = "custom"
			}
			table.AddRow(name, tmpl, source, info.CustomPath)
		}
	}
	if _, err := table.WriteTo(w); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "To customise a template, use: okbase16 templates dump -o <plugin-name>")
	return nil
}

func (a *app) runTemplatesDump(cmd *cobra.Command, opts templatesOptions) error {
	base := opts.location
	if base == "" {
		b, err := a.cfg.TemplateBase()
		if err != nil {
			return err
		}
		base = b
	}
	base, err := output.ExpandHome(base)
	if err != nil {
		return err
	}
	order, loaders, err := a.templateLoaders(opts.plugins, base)
	if err != nil {
		return err
	}
	if len(order) == 0 {
		return errors.New("no plugins with templates selected")
	}

	w := cmd.OutOrStdout()
	total := 0
	var errs []error
	for _, name := range order {
		dumped, err := loaders[name].DumpAllTemplates(opts.force)
		for _, path := range dumped {
			fmt.Fprintf(w, "  ├─ %s\n", path)
		}
		total += len(dumped)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	a.status(cmd, "✓ Dumped %d template(s) to %s", total, filepath.Clean(base))
	if err := errors.Join(errs...); err != nil {
		if errors.Is(err, tmplloader.ErrTemplateExists) {
			return fmt.Errorf("%w (use --force to overwrite)", err)
		}
		return err
	}
	return nil
}
