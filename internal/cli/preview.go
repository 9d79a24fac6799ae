package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/plugin/output"
	"github.com/jmylchreest/okbase16/internal/preview"
)

// Preview sections in display order.
const (
	sectionPalette  = "palette"
	sectionTerminal = "terminal"
	sectionCode     = "code"
	sectionContrast = "contrast"
)

var previewSections = []string{sectionPalette, sectionTerminal, sectionCode, sectionContrast}

type previewFlags struct {
	lang      string
	formatter string
	only      []string
}

func newPreviewCmd(a *app) *cobra.Command {
	var opts previewFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the scheme in a terminal and code sample",
		Long: fmt.Sprintf(`Render the scheme as a terminal session and a syntax highlighted code sample.

Languages: %s

Examples:
  okbase16 preview
  okbase16 preview --lang rust --only code
  okbase16 preview --only terminal,contrast --mode complementary`, strings.Join(preview.Languages(), ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPreview(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.lang, "lang", "l", "", "code sample language (default from config)")
	flags.StringVarP(&opts.formatter, "formatter", "f", "", "chroma formatter: terminal16m, terminal256, html, noop (default from config)")
	flags.StringSliceVar(&opts.only, "only", []string{sectionTerminal, sectionCode}, "sections to show: "+strings.Join(previewSections, ", "))
	return cmd
}

func (a *app) runPreview(cmd *cobra.Command, opts previewFlags) error {
	sections, err := selectSections(opts.only)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	popts := a.previewOptions(w)

	if opts.lang == "" {
		opts.lang = a.cfg.Preview.Language
	}
	if opts.formatter == "" {
		opts.formatter = a.cfg.Preview.Formatter
		// Plain output for pipes unless colour was asked for.
		if popts.Profile == termenv.Ascii {
			opts.formatter = "noop"
		}
	}

	_, theme, err := a.theme(cmd)
	if err != nil {
		return err
	}

	for i, section := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := renderSection(w, section, theme, opts, popts); err != nil {
			return err
		}
	}
	return nil
}

func renderSection(w io.Writer, section string, theme *output.Theme, opts previewFlags, popts preview.Options) error {
	switch section {
	case sectionPalette:
		return preview.Palette(w, theme, popts)
	case sectionTerminal:
		return preview.Terminal(w, theme, popts)
	case sectionCode:
		return preview.Code(w, theme, opts.lang, opts.formatter)
	default:
		return preview.Contrast(w, theme, colour.CheckContrast(theme.Hex()), popts)
	}
}

// selectSections validates names and returns them in display order.
func selectSections(names []string) ([]string, error) {
	want := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		known := false
		for _, s := range previewSections {
			if s == name {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown preview section %q (available: %s)", name, strings.Join(previewSections, ", "))
		}
		want[name] = true
	}

	var out []string
	for _, s := range previewSections {
		if want[s] {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no preview sections selected (available: %s)", strings.Join(previewSections, ", "))
	}
	return out, nil
}
