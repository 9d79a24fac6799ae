// Package css provides an output plugin for CSS custom properties.
package css

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/okbase16/internal/plugin/output"
	"github.com/jmylchreest/okbase16/internal/plugin/output/common"
	tmplloader "github.com/jmylchreest/okbase16/internal/plugin/output/template"
)

// TemplateName is the embedded stylesheet template.
const TemplateName = "scheme.css.tmpl"

//go:embed *.tmpl
var templates embed.FS

// Plugin implements the output.Plugin interface for CSS.
type Plugin struct {
	outputDir    string
	selector     string
	templateBase string
	logger       hclog.Logger
}

// templateData is passed to the stylesheet template.
type templateData struct {
	*output.Theme
	Selector string
}

// New creates a new CSS output plugin with default settings.
func New() *Plugin {
	return &Plugin{selector: ":root", logger: hclog.NewNullLogger()}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "css"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate CSS custom properties with OKLCH values and hex fallbacks"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "css.output-dir", "", "Output directory (default: export directory)")
	cmd.Flags().StringVar(&p.selector, "css.selector", ":root", "Selector the custom properties are declared on")
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
	if p.selector == "" {
		return fmt.Errorf("css.selector cannot be empty")
	}
	return nil
}

// OutputDir returns the plugin's output directory override.
func (p *Plugin) OutputDir() string {
	return p.outputDir
}

// Generate creates <slug>.css.
func (p *Plugin) Generate(theme *output.Theme) (map[string][]byte, error) {
	if theme == nil {
		return nil, fmt.Errorf("theme cannot be nil")
	}

	loader := tmplloader.New(p.Name(), templates).WithLogger(p.logger)
	if p.templateBase != "" {
		loader.WithCustomBase(p.templateBase)
	}

	content, err := loader.Render(TemplateName, common.TemplateFuncs(), templateData{Theme: theme, Selector: p.selector})
	if err != nil {
		return nil, fmt.Errorf("failed to generate stylesheet: %w", err)
	}
	return map[string][]byte{theme.Slug() + ".css": content}, nil
}
