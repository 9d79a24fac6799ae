package preview

import (
	"fmt"
	"io"

	"github.com/jmylchreest/okbase16/internal/plugin/output"
)

// Palette writes one line per slot: a colour block, the slot name, hex,
// OKLCH and role.
func Palette(w io.Writer, theme *output.Theme, opts Options) error {
	p := newPainter(w, theme, opts)
	for _, c := range theme.Colours() {
		_, err := fmt.Fprintf(w, "%s  %-6s  %s  %-24s  %s\n",
			p.block(c.Slot, 6), c.Name(), c.Hex(), c.CSS(), shortRole(c.Slot))
		if err != nil {
			return err
		}
	}
	return nil
}
