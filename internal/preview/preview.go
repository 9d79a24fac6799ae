// Package preview renders a scheme in representative contexts: a palette
// table, a terminal session, highlighted source code, a contrast report and
// a PNG swatch.
package preview

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/plugin/output"
)

// Options controls terminal rendering.
type Options struct {
	// Profile is the colour profile escape sequences are produced for.
	// termenv.Ascii disables colour entirely.
	Profile termenv.Profile
}

// fdWriter is satisfied by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	return ok && term.IsTerminal(int(f.Fd()))
}

// DetectProfile picks the colour profile for w. Writers that are not
// terminals get termenv.Ascii unless force is set, in which case true colour
// is used.
func DetectProfile(w io.Writer, force bool) termenv.Profile {
	if force {
		return termenv.TrueColor
	}
	if !IsTerminal(w) {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

// painter styles text with scheme colours for one writer.
type painter struct {
	r     *lipgloss.Renderer
	theme *output.Theme
}

func newPainter(w io.Writer, theme *output.Theme, opts Options) painter {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(opts.Profile)
	return painter{r: r, theme: theme}
}

func (p painter) hex(slot colour.Slot) lipgloss.Color {
	return lipgloss.Color(p.theme.Colour(slot).Hex())
}

// fg renders text in the colour of slot on the scheme background.
func (p painter) fg(slot colour.Slot, text string) string {
	return p.r.NewStyle().
		Foreground(p.hex(slot)).
		Background(p.hex(colour.Base00)).
		Render(text)
}

// bold is fg in bold.
func (p painter) bold(slot colour.Slot, text string) string {
	return p.r.NewStyle().
		Bold(true).
		Foreground(p.hex(slot)).
		Background(p.hex(colour.Base00)).
		Render(text)
}

// block renders width spaces filled with the colour of slot.
func (p painter) block(slot colour.Slot, width int) string {
	return p.r.NewStyle().Background(p.hex(slot)).Render(strings.Repeat(" ", width))
}

// shortRole returns a slot description without its parenthesised note.
func shortRole(slot colour.Slot) string {
	role := slot.Description()
	if i := strings.Index(role, " ("); i >= 0 {
		role = role[:i]
	}
	return role
}

// Block renders width cells filled with hex, for colours that are not scheme
// slots.
func Block(hex string, width int, opts Options) string {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(opts.Profile)
	return r.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", width))
}
