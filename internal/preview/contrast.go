package preview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/plugin/output"
)

// Status colours are fixed so a failing scheme cannot hide its own failures.
var (
	passColour = lipgloss.Color("#10b981")
	warnColour = lipgloss.Color("#f59e0b")
	failColour = lipgloss.Color("#ef4444")
)

// Glyph returns ✓ for AAA, ⚠ for AA and ✗ otherwise.
func Glyph(r colour.ContrastResult) string {
	switch {
	case r.AAA:
		return "✓"
	case r.AA:
		return "⚠"
	default:
		return "✗"
	}
}

// Contrast writes a legend and one line per result, in the order given.
func Contrast(w io.Writer, theme *output.Theme, results []colour.ContrastResult, opts Options) error {
	p := newPainter(w, theme, opts)
	status := func(r colour.ContrastResult) string {
		c := failColour
		switch {
		case r.AAA:
			c = passColour
		case r.AA:
			c = warnColour
		}
		return p.r.NewStyle().Bold(true).Foreground(c).Render(Glyph(r))
	}

	legend := fmt.Sprintf("✓ WCAG AAA: ≥%g:1\n⚠ WCAG AA: %g:1-%g:1\n✗ Fail: <%g:1\n\n",
		colour.ContrastAAA, colour.ContrastAA, colour.ContrastAAA, colour.ContrastAA)
	if _, err := io.WriteString(w, legend); err != nil {
		return err
	}

	for _, r := range results {
		_, err := fmt.Fprintf(w, "%s %-6s %s %s %6.2f:1  %s\n",
			status(r), r.Slot, p.block(r.Slot, 2), theme.Colour(r.Slot).Hex(), r.Ratio, r.Level())
		if err != nil {
			return err
		}
	}
	return nil
}
