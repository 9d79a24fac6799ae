// Package base16 provides an output plugin for Base16 scheme YAML files, and
// a parser to read them back.
package base16

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/plugin/output"
	"github.com/jmylchreest/okbase16/internal/state"
)

// Extension is the file extension of exported schemes.
const Extension = ".yaml"

// ErrInvalidScheme is returned by Parse for files that are not complete
// Base16 schemes.
var ErrInvalidScheme = errors.New("invalid base16 scheme")

// Plugin implements the output.Plugin interface for Base16 YAML.
type Plugin struct {
	outputDir string
}

// New creates a new Base16 output plugin with default settings.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "base16"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate a Base16 scheme YAML file"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "base16.output-dir", "", "Output directory (default: export directory)")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	return nil
}

// OutputDir returns the plugin's output directory override.
func (p *Plugin) OutputDir() string {
	return p.outputDir
}

// Generate creates <slug>.yaml.
func (p *Plugin) Generate(theme *output.Theme) (map[string][]byte, error) {
	if theme == nil {
		return nil, fmt.Errorf("theme cannot be nil")
	}

	content, err := Marshal(theme)
	if err != nil {
		return nil, err
	}
	return map[string][]byte{theme.Slug() + Extension: content}, nil
}

// Marshal renders theme as a Base16 YAML document: scheme and author
// followed by one line per slot in canonical order, each annotated with the
// slot's role.
func Marshal(theme *output.Theme) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key, value, comment string) {
		k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		v := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: yaml.DoubleQuotedStyle}
		if comment != "" {
			v.LineComment = "# " + comment
		}
		doc.Content = append(doc.Content, k, v)
	}

	add("scheme", theme.Name, "")
	add("author", theme.Author, "")
	for _, c := range theme.Colours() {
		add(c.Name(), c.HexNoHash(), c.Description())
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode base16 yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode base16 yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse reads a Base16 YAML scheme. All 16 slots must be present, each with
// six hex digits and an optional leading '#'. Both the classic flat layout
// and the newer layout with colours under "palette" and the title under
// "name" are accepted. Other keys are ignored.
func Parse(r io.Reader) (colour.Scheme, state.Metadata, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return colour.Scheme{}, state.Metadata{}, fmt.Errorf("%w: empty document", ErrInvalidScheme)
		}
		return colour.Scheme{}, state.Metadata{}, fmt.Errorf("%w: %v", ErrInvalidScheme, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return colour.Scheme{}, state.Metadata{}, fmt.Errorf("%w: top level must be a mapping", ErrInvalidScheme)
	}

	var m state.Metadata
	values := make(map[string]string, colour.SlotCount)
	collect := func(key, value *yaml.Node) error {
		slot, err := colour.ParseSlot(key.Value)
		if err != nil {
			return nil
		}
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w: %s must be a scalar", ErrInvalidScheme, slot)
		}
		if _, dup := values[slot.String()]; dup {
			return fmt.Errorf("%w: duplicate slot %s", ErrInvalidScheme, slot)
		}
		hex := strings.TrimPrefix(strings.TrimSpace(value.Value), "#")
		if len(hex) != 6 {
			return fmt.Errorf("%w: %s: %q is not six hex digits", ErrInvalidScheme, slot, value.Value)
		}
		values[slot.String()] = hex
		return nil
	}

	root := doc.Content[0]
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "scheme":
			m.Name = value.Value
		case "name":
			if m.Name == "" {
				m.Name = value.Value
			}
		case "author":
			m.Author = value.Value
		case "palette":
			if value.Kind != yaml.MappingNode {
				return colour.Scheme{}, state.Metadata{}, fmt.Errorf("%w: palette must be a mapping", ErrInvalidScheme)
			}
			for j := 0; j+1 < len(value.Content); j += 2 {
				if err := collect(value.Content[j], value.Content[j+1]); err != nil {
					return colour.Scheme{}, state.Metadata{}, err
				}
			}
		default:
			if err := collect(key, value); err != nil {
				return colour.Scheme{}, state.Metadata{}, err
			}
		}
	}

	scheme, err := colour.SchemeFromHex(values)
	if err != nil {
		return colour.Scheme{}, state.Metadata{}, fmt.Errorf("%w: %v", ErrInvalidScheme, err)
	}

	if m.Name == "" {
		m.Name = state.DefaultName
	}
	if m.Author == "" {
		m.Author = state.DefaultAuthor
	}
	return scheme, m, nil
}
