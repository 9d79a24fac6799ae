// Package kitty provides an output plugin for Kitty terminal colour themes.
package kitty

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/okbase16/internal/plugin/output"
	"github.com/jmylchreest/okbase16/internal/plugin/output/common"
	tmplloader "github.com/jmylchreest/okbase16/internal/plugin/output/template"
)

// TemplateName is the embedded template rendered for every theme.
const TemplateName = "theme.conf.tmpl"

//go:embed *.tmpl
var templates embed.FS

// Plugin implements the output.Plugin interface for Kitty terminal.
type Plugin struct {
	outputDir    string
	reloadConfig bool
	templateBase string
	logger       hclog.Logger
}

// New creates a new Kitty output plugin with default settings.
func New() *Plugin {
	return &Plugin{logger: hclog.NewNullLogger()}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "kitty"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate Kitty terminal colour theme configuration"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "kitty.output-dir", "", "Output directory (default: export directory)")
	cmd.Flags().BoolVar(&p.reloadConfig, "kitty.reload", false, "Reload running kitty instances after writing (sends SIGUSR1)")
}

// SetLogger implements output.LoggerPlugin.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	p.logger = logger
}

// Templates implements output.TemplatePlugin.
func (p *Plugin) Templates() fs.FS {
	return templates
}

// SetTemplateBase implements output.TemplatePlugin.
func (p *Plugin) SetTemplateBase(dir string) {
	p.templateBase = dir
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	return nil
}

// OutputDir returns the plugin's output directory override.
func (p *Plugin) OutputDir() string {
	return p.outputDir
}

// Generate creates <slug>.conf.
func (p *Plugin) Generate(theme *output.Theme) (map[string][]byte, error) {
	if theme == nil {
		return nil, fmt.Errorf("theme cannot be nil")
	}

	loader := tmplloader.New(p.Name(), templates).WithLogger(p.logger)
	if p.templateBase != "" {
		loader.WithCustomBase(p.templateBase)
	}

	content, err := loader.Render(TemplateName, common.TemplateFuncs(), theme)
	if err != nil {
		return nil, fmt.Errorf("failed to generate theme: %w", err)
	}
	return map[string][]byte{theme.Slug() + ".conf": content}, nil
}

// PostWrite reloads running kitty instances when --kitty.reload is set.
// Implements the output.PostWriteHook interface.
func (p *Plugin) PostWrite(_ context.Context, paths []string) error {
	if !p.reloadConfig || len(paths) == 0 {
		return nil
	}
	if err := p.reloadAllKittyInstances(); err != nil {
		return err
	}
	p.logger.Info("reloaded kitty", "theme", paths[0])
	return nil
}
