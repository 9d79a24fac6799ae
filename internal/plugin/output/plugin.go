// Package output provides the interface and shared types for exporters that
// turn a colour scheme into application configuration files.
package output

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// All selects every registered plugin in Registry.Select.
const All = "all"

// Plugin represents an output plugin that can generate configuration files
// from a scheme.
type Plugin interface {
	// Name returns the plugin's name (e.g., "base16", "kitty").
	Name() string

	// Description returns a human-readable description of the plugin.
	Description() string

	// Generate creates output file(s) from the given theme.
	// Returns map of filename -> content relative to the output directory.
	Generate(theme *Theme) (map[string][]byte, error)

	// RegisterFlags registers plugin-specific flags with cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the plugin configuration is valid.
	Validate() error

	// OutputDir returns the directory set for this plugin, or "" to use the
	// export directory.
	OutputDir() string
}

// LoggerPlugin is implemented by plugins that log while generating.
type LoggerPlugin interface {
	SetLogger(logger hclog.Logger)
}

// PostWriteHook is implemented by plugins that act after their files have
// been written, such as asking a running application to reload. It is not
// called for dry runs or when the plugin failed.
type PostWriteHook interface {
	PostWrite(ctx context.Context, paths []string) error
}

// TemplatePlugin is implemented by plugins that render embedded templates
// which users may override.
type TemplatePlugin interface {
	// Templates returns the embedded default templates.
	Templates() fs.FS

	// SetTemplateBase sets the directory searched for overrides, laid out as
	// <base>/<plugin name>/<template>. An empty base uses the embedded
	// templates only.
	SetTemplateBase(dir string)
}

// Registry holds all registered output plugins.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates a new plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin to the registry.
func (r *Registry) Register(plugin Plugin) {
	r.plugins[plugin.Name()] = plugin
}

// Get retrieves a plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// List returns all registered plugin names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves plugin names, in the order given, to plugins. The name
// "all" expands to every plugin in sorted order. Duplicates are dropped.
func (r *Registry) Select(names []string) ([]Plugin, error) {
	seen := make(map[string]bool)
	var selected []Plugin

	add := func(name string) error {
		if seen[name] {
			return nil
		}
		p, ok := r.plugins[name]
		if !ok {
			return fmt.Errorf("unknown output plugin %q (available: %s)", name, strings.Join(r.List(), ", "))
		}
		seen[name] = true
		selected = append(selected, p)
		return nil
	}

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name == All {
			for _, n := range r.List() {
				if err := add(n); err != nil {
					return nil, err
				}
			}
			continue
		}
		if err := add(name); err != nil {
			return nil, err
		}
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no output plugins selected")
	}
	return selected, nil
}
