// Package template loads plugin templates, preferring user overrides over the
// copies embedded in the binary.
package template

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/okbase16/internal/config"
)

// ErrTemplateExists is returned by DumpTemplate when a custom template is
// already present and force is not set.
var ErrTemplateExists = errors.New("custom template already exists")

// Loader handles loading templates with support for custom overrides.
// It checks for custom templates in <config dir>/templates/{pluginName}/
// and falls back to embedded templates if custom ones don't exist.
type Loader struct {
	pluginName string
	embedFS    fs.FS
	customBase string // Base directory for custom templates
	logger     hclog.Logger
}

// New creates a new template loader for the specified plugin.
// embedFS should contain the plugin's default templates.
func New(pluginName string, embedFS fs.FS) *Loader {
	customBase := ""
	if dir, err := config.Dir(); err == nil {
		customBase = filepath.Join(dir, "templates")
	}

	return &Loader{
		pluginName: pluginName,
		embedFS:    embedFS,
		customBase: customBase,
		logger:     hclog.NewNullLogger(),
	}
}

// WithCustomBase sets the base directory searched for custom templates.
// An empty base disables custom templates.
func (l *Loader) WithCustomBase(customBase string) *Loader {
	l.customBase = customBase
	return l
}

// WithLogger sets the logger used to report which template was chosen.
func (l *Loader) WithLogger(logger hclog.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

func (l *Loader) log() hclog.Logger {
	if l.logger == nil {
		return hclog.NewNullLogger()
	}
	return l.logger
}

// Load reads a template file, checking for custom overrides first.
// Returns the template content and whether it was loaded from a custom override.
func (l *Loader) Load(filename string) (content []byte, fromCustom bool, err error) {
	if l.customBase != "" {
		customPath := l.CustomPath(filename)
		if content, err := os.ReadFile(customPath); err == nil {
			l.log().Debug("using custom template", "path", customPath)
			return content, true, nil
		}
	}

	l.log().Trace("using embedded template", "name", filename)
	content, err = fs.ReadFile(l.embedFS, filename)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", filename, err)
	}

	return content, false, nil
}

// Render loads filename, parses it with funcs and executes it with data.
func (l *Loader) Render(filename string, funcs template.FuncMap, data any) ([]byte, error) {
	content, _, err := l.Load(filename)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(path.Base(filename)).Funcs(funcs).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %q: %w", filename, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %q: %w", filename, err)
	}
	return buf.Bytes(), nil
}

// CustomPath returns the path where a custom template would be located.
func (l *Loader) CustomPath(filename string) string {
	return filepath.Join(l.customBase, l.pluginName, filepath.FromSlash(filename))
}

// CustomDir returns the directory where custom templates for this plugin would be located.
func (l *Loader) CustomDir() string {
	return filepath.Join(l.customBase, l.pluginName)
}

// HasCustomTemplate checks if a custom template exists for the given filename.
func (l *Loader) HasCustomTemplate(filename string) bool {
	if l.customBase == "" {
		return false
	}
	_, err := os.Stat(l.CustomPath(filename))
	return err == nil
}

// ListEmbeddedTemplates returns a list of all embedded template files.
func (l *Loader) ListEmbeddedTemplates() ([]string, error) {
	var templates []string

	err := fs.WalkDir(l.embedFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".tmpl" {
			templates = append(templates, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}

	return templates, nil
}

// DumpTemplate writes an embedded template to the custom templates directory.
// If force is false, it will not overwrite existing custom templates.
func (l *Loader) DumpTemplate(filename string, force bool) error {
	content, err := fs.ReadFile(l.embedFS, filename)
	if err != nil {
		return fmt.Errorf("failed to read embedded template %q: %w", filename, err)
	}

	outputPath := l.CustomPath(filename)

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrTemplateExists, outputPath)
		}
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", outputDir, err)
	}

	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write template to %q: %w", outputPath, err)
	}

	l.log().Debug("dumped template", "path", outputPath)
	return nil
}

// DumpAllTemplates writes all embedded templates to the custom templates directory.
// Existing templates are skipped unless force is set; skipped files are
// reported together in the returned error while the rest are still written.
func (l *Loader) DumpAllTemplates(force bool) ([]string, error) {
	templates, err := l.ListEmbeddedTemplates()
	if err != nil {
		return nil, err
	}

	var dumped []string
	var skipped []string

	for _, tmpl := range templates {
		if err := l.DumpTemplate(tmpl, force); err != nil {
			if errors.Is(err, ErrTemplateExists) {
				skipped = append(skipped, l.CustomPath(tmpl))
				continue
			}
			return dumped, err
		}
		dumped = append(dumped, l.CustomPath(tmpl))
	}

	if len(skipped) > 0 {
		return dumped, fmt.Errorf("%w: %s", ErrTemplateExists, strings.Join(skipped, ", "))
	}

	return dumped, nil
}

// TemplateInfo describes where a template would be loaded from.
type TemplateInfo struct {
	Filename       string
	EmbeddedExists bool
	CustomExists   bool
	CustomPath     string
	UsingCustom    bool
}

// GetInfo returns information about a specific template.
func (l *Loader) GetInfo(filename string) TemplateInfo {
	_, embeddedErr := fs.Stat(l.embedFS, filename)
	customExists := l.HasCustomTemplate(filename)

	return TemplateInfo{
		Filename:       filename,
		EmbeddedExists: embeddedErr == nil,
		CustomExists:   customExists,
		CustomPath:     l.CustomPath(filename),
		UsingCustom:    customExists,
	}
}
