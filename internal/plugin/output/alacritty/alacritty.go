// Package alacritty provides an output plugin for Alacritty terminal colour themes.
package alacritty

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/plugin/output"
)

// File is the top level of an alacritty colour import.
type File struct {
	Colors Colors `toml:"colors"`
}

// Colors is the [colors] table.
type Colors struct {
	Primary   Primary   `toml:"primary"`
	Cursor    Pair      `toml:"cursor"`
	Selection Pair      `toml:"selection"`
	Normal    ANSIBlock `toml:"normal"`
	Bright    ANSIBlock `toml:"bright"`
}

// Primary holds the default foreground and background.
type Primary struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
}

// Pair is a text/cursor colour pair.
type Pair struct {
	Text   string `toml:"text"`
	Cursor string `toml:"cursor,omitempty"`
	// Background is used by the selection table only.
	Background string `toml:"background,omitempty"`
}

// ANSIBlock is one set of eight terminal colours.
type ANSIBlock struct {
	Black   string `toml:"black"`
	Red     string `toml:"red"`
	Green   string `toml:"green"`
	Yellow  string `toml:"yellow"`
	Blue    string `toml:"blue"`
	Magenta string `toml:"magenta"`
	Cyan    string `toml:"cyan"`
	White   string `toml:"white"`
}

// Plugin implements the output.Plugin interface for Alacritty terminal.
type Plugin struct {
	outputDir string
}

// New creates a new Alacritty output plugin with default settings.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "alacritty"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate Alacritty terminal colour theme configuration"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "alacritty.output-dir", "", "Output directory (default: export directory)")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	return nil
}

// OutputDir returns the plugin's output directory override.
func (p *Plugin) OutputDir() string {
	return p.outputDir
}

// Generate creates <slug>.toml, meant to be listed under general.import in
// alacritty.toml.
func (p *Plugin) Generate(theme *output.Theme) (map[string][]byte, error) {
	if theme == nil {
		return nil, fmt.Errorf("theme cannot be nil")
	}

	file, err := Build(theme)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s by %s\n", theme.Name, theme.Author)
	fmt.Fprintf(&buf, "# generated by okbase16\n")
	for _, slot := range []colour.Slot{colour.Base01, colour.Base02, colour.Base04, colour.Base06, colour.Base09, colour.Base0F} {
		c := theme.Colour(slot)
		fmt.Fprintf(&buf, "# %s %s (%s)\n", c.Name(), c.Hex(), c.Description())
	}
	buf.WriteByte('\n')

	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(file); err != nil {
		return nil, fmt.Errorf("failed to encode alacritty theme: %w", err)
	}
	return map[string][]byte{theme.Slug() + ".toml": buf.Bytes()}, nil
}

// Build maps the theme onto alacritty's colour tables using the Base16
// terminal colour layout.
func Build(theme *output.Theme) (File, error) {
	var ansi [16]string
	for i := range ansi {
		c, err := theme.ANSI(i)
		if err != nil {
			return File{}, err
		}
		ansi[i] = c.Hex()
	}
	hex := func(slot colour.Slot) string { return theme.Colour(slot).Hex() }

	return File{Colors: Colors{
		Primary: Primary{
			Background: hex(colour.Base00),
			Foreground: hex(colour.Base05),
		},
		Cursor: Pair{
			Text:   hex(colour.Base00),
			Cursor: hex(colour.Base05),
		},
		Selection: Pair{
			Text:       hex(colour.Base05),
			Background: hex(colour.Base02),
		},
		Normal: block(ansi[:8]),
		Bright: block(ansi[8:]),
	}}, nil
}

func block(c []string) ANSIBlock {
	return ANSIBlock{
		Black:   c[0],
		Red:     c[1],
		Green:   c[2],
		Yellow:  c[3],
		Blue:    c[4],
		Magenta: c[5],
		Cyan:    c[6],
		White:   c[7],
	}
}
