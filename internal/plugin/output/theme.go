package output

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/state"
)

// Theme is the data handed to every plugin: the displayed scheme plus its
// metadata.
type Theme struct {
	Name   string
	Author string
	Scheme colour.Scheme
	hex    colour.HexScheme
}

// NewTheme builds a theme from the editor state, using the filtered display
// scheme.
func NewTheme(s state.State) *Theme {
	return NewThemeFromScheme(s.Display(), s.Metadata)
}

// NewThemeFromScheme builds a theme from an already displayable scheme.
func NewThemeFromScheme(scheme colour.Scheme, m state.Metadata) *Theme {
	scheme = scheme.Validate()
	return &Theme{
		Name:   m.Name,
		Author: m.Author,
		Scheme: scheme,
		hex:    scheme.Hex(),
	}
}

// Hex returns the hex form of the scheme.
func (t *Theme) Hex() colour.HexScheme {
	return t.hex
}

// Colour returns the value of one slot.
func (t *Theme) Colour(slot colour.Slot) Colour {
	return Colour{Slot: slot, OKLCH: t.Scheme[slot], hex: t.hex[slot]}
}

// Colours returns all slots in canonical order.
func (t *Theme) Colours() []Colour {
	out := make([]Colour, 0, colour.SlotCount)
	for _, slot := range colour.Slots() {
		out = append(out, t.Colour(slot))
	}
	return out
}

// Slug returns the scheme name lower-cased with runs of whitespace replaced
// by '-', for use in file names. Characters that are unsafe in file names are
// dropped.
func (t *Theme) Slug() string {
	parts := make([]string, 0, 4)
	for _, field := range strings.Fields(strings.ToLower(t.Name)) {
		var b strings.Builder
		for _, r := range field {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			parts = append(parts, b.String())
		}
	}
	slug := strings.Trim(strings.Join(parts, "-"), ".-")
	if slug == "" {
		return "scheme"
	}
	return slug
}

// Colour is one slot as seen by templates.
type Colour struct {
	Slot  colour.Slot
	OKLCH colour.OKLCH
	hex   string
}

// Name returns the slot identifier, e.g. "base0D".
func (c Colour) Name() string { return c.Slot.String() }

// Description returns the slot's Base16 role.
func (c Colour) Description() string { return c.Slot.Description() }

// Hex returns "#rrggbb".
func (c Colour) Hex() string { return c.hex }

// HexNoHash returns "rrggbb".
func (c Colour) HexNoHash() string { return strings.TrimPrefix(c.hex, "#") }

// RGB returns "rgb(r, g, b)".
func (c Colour) RGB() string {
	r, g, b := c.RGBValues()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// RGBValues returns the 8-bit channels.
func (c Colour) RGBValues() (r, g, b uint8) {
	col, err := colorful.Hex(c.hex)
	if err != nil {
		return 0, 0, 0
	}
	return col.RGB255()
}

// CSS returns the CSS oklch() form.
func (c Colour) CSS() string { return colour.FormatOKLCH(c.OKLCH) }

// ansiSlots maps the 16 terminal colours to slots following the usual
// base16-shell layout. Bright colours repeat the normal accents.
var ansiSlots = [16]colour.Slot{
	colour.Base00, colour.Base08, colour.Base0B, colour.Base0A,
	colour.Base0D, colour.Base0E, colour.Base0C, colour.Base05,
	colour.Base03, colour.Base08, colour.Base0B, colour.Base0A,
	colour.Base0D, colour.Base0E, colour.Base0C, colour.Base07,
}

// ANSI returns the colour used for terminal colour index (0-15).
func (t *Theme) ANSI(index int) (Colour, error) {
	slot, ok := ansiSlot(index)
	if !ok {
		return Colour{}, fmt.Errorf("ansi colour index %d out of range 0-15", index)
	}
	return t.Colour(slot), nil
}

func ansiSlot(index int) (colour.Slot, bool) {
	if index < 0 || index >= len(ansiSlots) {
		return 0, false
	}
	return ansiSlots[index], true
}
