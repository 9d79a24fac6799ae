// Package state holds the editor's immutable palette state and the pure
// transitions between states.
//
// A State is a value. Every transition returns a new State and leaves the
// receiver untouched, so callers can keep any previous state around for undo
// or comparison.
package state

import (
	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/filter"
	"github.com/jmylchreest/okbase16/internal/harmony"
)

// Default metadata values. They are omitted from encoded state.
const (
	DefaultName   = "My Color Scheme"
	DefaultAuthor = "Anonymous"
)

// SeedSlot is the slot generators read their seed from.
const SeedSlot = colour.Base08

// Metadata describes the scheme for export.
type Metadata struct {
	Name   string `json:"name" toml:"name"`
	Author string `json:"author" toml:"author"`
}

// DefaultMetadata returns the metadata of a fresh state.
func DefaultMetadata() Metadata {
	return Metadata{Name: DefaultName, Author: DefaultAuthor}
}

// State is one snapshot of the editor. Colours are always the unfiltered
// values; filters are applied on read by Display.
type State struct {
	Mode           harmony.Mode   `json:"mode"`
	Colours        colour.Scheme  `json:"colours"`
	Filters        filter.Filters `json:"filters"`
	FiltersEnabled bool           `json:"filtersEnabled"`
	Metadata       Metadata       `json:"metadata"`
}

var defaultColours = colour.Scheme{
	colour.Base00: {H: 240, C: 0.05, L: 0.15},
	colour.Base01: {H: 240, C: 0.05, L: 0.20},
	colour.Base02: {H: 240, C: 0.06, L: 0.25},
	colour.Base03: {H: 240, C: 0.08, L: 0.40},
	colour.Base04: {H: 240, C: 0.08, L: 0.60},
	colour.Base05: {H: 240, C: 0.05, L: 0.80},
	colour.Base06: {H: 240, C: 0.03, L: 0.90},
	colour.Base07: {H: 240, C: 0.02, L: 0.95},

	colour.Base08: {H: 0, C: 0.18, L: 0.65},
	colour.Base09: {H: 30, C: 0.16, L: 0.68},
	colour.Base0A: {H: 50, C: 0.15, L: 0.72},
	colour.Base0B: {H: 130, C: 0.14, L: 0.68},
	colour.Base0C: {H: 180, C: 0.15, L: 0.70},
	colour.Base0D: {H: 220, C: 0.17, L: 0.68},
	colour.Base0E: {H: 280, C: 0.16, L: 0.70},
	colour.Base0F: {H: 25, C: 0.12, L: 0.60},
}

// DefaultScheme returns the built-in dark palette.
func DefaultScheme() colour.Scheme {
	return defaultColours
}

// Default returns the initial editor state: the built-in palette in manual
// mode with identity filters enabled.
func Default() State {
	return State{
		Mode:           harmony.ModeManual,
		Colours:        defaultColours,
		Filters:        filter.Default(),
		FiltersEnabled: true,
		Metadata:       DefaultMetadata(),
	}
}

// Seed returns the colour generators derive from.
func (s State) Seed() colour.OKLCH {
	return s.Colours[SeedSlot]
}

// WithMode switches mode. Generated modes rebuild every slot from the seed;
// manual keeps the current colours.
func (s State) WithMode(mode harmony.Mode) (State, error) {
	if mode == harmony.ModeManual {
		s.Mode = mode
		return s, nil
	}
	colours, err := harmony.Generate(mode, s.Seed())
	if err != nil {
		return s, err
	}
	s.Mode = mode
	s.Colours = colours
	return s, nil
}

// WithSeed sets the seed slot and, in a generated mode, regenerates the
// scheme from it.
func (s State) WithSeed(seed colour.OKLCH) State {
	s.Colours = s.Colours.With(SeedSlot, seed)
	if !s.Mode.IsGenerated() {
		return s
	}
	colours, err := harmony.Generate(s.Mode, seed)
	if err != nil {
		return s
	}
	s.Colours = colours
	return s
}

// WithSlot replaces a single slot. The mode is kept, so the next mode change
// or seed edit may overwrite the edit.
func (s State) WithSlot(slot colour.Slot, c colour.OKLCH) (State, error) {
	if !slot.Valid() {
		return s, colour.ErrUnknownSlot
	}
	s.Colours = s.Colours.With(slot, c)
	return s, nil
}

// WithColours replaces the whole scheme.
func (s State) WithColours(colours colour.Scheme) State {
	s.Colours = colours
	return s
}

// WithFilters sets the global filters, clamped to their domains.
func (s State) WithFilters(f filter.Filters) State {
	s.Filters = f.Clamp()
	return s
}

// ResetFilters restores identity filters.
func (s State) ResetFilters() State {
	s.Filters = filter.Default()
	return s
}

// WithFiltersEnabled turns filter application on or off without losing the
// filter values.
func (s State) WithFiltersEnabled(enabled bool) State {
	s.FiltersEnabled = enabled
	return s
}

// WithMetadata sets the scheme name and author. Empty fields fall back to the
// defaults.
func (s State) WithMetadata(m Metadata) State {
	if m.Name == "" {
		m.Name = DefaultName
	}
	if m.Author == "" {
		m.Author = DefaultAuthor
	}
	s.Metadata = m
	return s
}

// Display returns the scheme as it should be shown and exported: filtered
// when filters are enabled, validated either way.
func (s State) Display() colour.Scheme {
	if s.FiltersEnabled {
		return filter.ApplyToScheme(s.Colours, s.Filters)
	}
	return s.Colours.Validate()
}

// Hex returns the displayable hex form of Display.
func (s State) Hex() colour.HexScheme {
	return s.Display().Hex()
}

// Contrast checks the displayed scheme against its background.
func (s State) Contrast() []colour.ContrastResult {
	return colour.CheckContrast(s.Hex())
}
