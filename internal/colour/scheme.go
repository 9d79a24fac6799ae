package colour

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSlot is returned when a slot identifier is not one of base00-base0F.
var ErrUnknownSlot = errors.New("unknown slot")

// Slot identifies one of the 16 Base16 colour roles. The order is fixed:
// Base00-Base07 form the background ramp and Base08-Base0F the accents.
type Slot int

// Base16 slots in canonical order.
const (
	Base00 Slot = iota
	Base01
	Base02
	Base03
	Base04
	Base05
	Base06
	Base07
	Base08
	Base09
	Base0A
	Base0B
	Base0C
	Base0D
	Base0E
	Base0F

	// SlotCount is the number of slots in a scheme.
	SlotCount = 16
)

var slotNames = [SlotCount]string{
	"base00", "base01", "base02", "base03",
	"base04", "base05", "base06", "base07",
	"base08", "base09", "base0A", "base0B",
	"base0C", "base0D", "base0E", "base0F",
}

var slotDescriptions = [SlotCount]string{
	"Default Background",
	"Lighter Background (Used for status bars, line number and folding marks)",
	"Selection Background",
	"Comments, Invisibles, Line Highlighting",
	"Dark Foreground (Used for status bars)",
	"Default Foreground, Caret, Delimiters, Operators",
	"Light Foreground (Not often used)",
	"Light Background (Not often used)",
	"Variables, XML Tags, Markup Link Text, Markup Lists, Diff Deleted",
	"Integers, Boolean, Constants, XML Attributes, Markup Link Url",
	"Classes, Markup Bold, Search Text Background",
	"Strings, Inherited Class, Markup Code, Diff Inserted",
	"Support, Regular Expressions, Escape Characters, Markup Quotes",
	"Functions, Methods, Attribute IDs, Headings",
	"Keywords, Storage, Selector, Markup Italic, Diff Changed",
	"Deprecated, Opening/Closing Embedded Language Tags",
}

// String returns the slot identifier, e.g. "base0A".
func (s Slot) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	return slotNames[s]
}

// Description returns the Base16 role description for the slot.
func (s Slot) Description() string {
	if !s.Valid() {
		return ""
	}
	return slotDescriptions[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Slot) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSlot, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Slot) UnmarshalText(text []byte) error {
	slot, err := ParseSlot(string(text))
	if err != nil {
		return err
	}
	*s = slot
	return nil
}

// Valid reports whether s is one of the 16 slots.
func (s Slot) Valid() bool {
	return s >= Base00 && s <= Base0F
}

// IsBackground reports whether s belongs to the background ramp.
func (s Slot) IsBackground() bool {
	return s >= Base00 && s <= Base07
}

// ParseSlot parses a slot identifier. Matching is case-insensitive, so
// "base0a" and "BASE0A" both resolve to Base0A.
func ParseSlot(name string) (Slot, error) {
	name = strings.TrimSpace(name)
	for i, n := range slotNames {
		if strings.EqualFold(n, name) {
			return Slot(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSlot, name)
}

// Slots returns all slots in canonical order.
func Slots() []Slot {
	slots := make([]Slot, SlotCount)
	for i := range slots {
		slots[i] = Slot(i)
	}
	return slots
}

// BackgroundSlots returns base00-base07.
func BackgroundSlots() []Slot {
	return Slots()[:8]
}

// AccentSlots returns base08-base0F.
func AccentSlots() []Slot {
	return Slots()[8:]
}

// Scheme is a complete 16-slot palette indexed by Slot. Being an array, it is
// copied on assignment, so a Scheme value is never shared mutably.
type Scheme [SlotCount]OKLCH

// Get returns the colour for slot.
func (s Scheme) Get(slot Slot) OKLCH {
	return s[slot]
}

// With returns a copy of s with slot set to c.
func (s Scheme) With(slot Slot, c OKLCH) Scheme {
	s[slot] = c
	return s
}

// Validate returns a copy of s with every slot validated.
func (s Scheme) Validate() Scheme {
	for i := range s {
		s[i] = Validate(s[i])
	}
	return s
}

// OutOfRange returns the slots whose stored values lie outside the OKLCH
// domain. Used for debug assertions; a validated scheme returns nil.
func (s Scheme) OutOfRange() []Slot {
	var bad []Slot
	for i, c := range s {
		if !c.InRange() {
			bad = append(bad, Slot(i))
		}
	}
	return bad
}

// Hex converts every slot to its displayable "#rrggbb" form.
func (s Scheme) Hex() HexScheme {
	var h HexScheme
	for i, c := range s {
		h[i] = ToHex(c)
	}
	return h
}

// MarshalJSON encodes the scheme as an object keyed by slot in canonical order.
func (s Scheme) MarshalJSON() ([]byte, error) {
	return marshalSlots(func(slot Slot) any { return s[slot] })
}

// UnmarshalJSON decodes an object keyed by slot identifier. Every slot must be
// present and no other keys are allowed.
func (s *Scheme) UnmarshalJSON(data []byte) error {
	var raw map[string]OKLCH
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode scheme: %w", err)
	}
	var out Scheme
	if err := fillSlots(raw, func(slot Slot, c OKLCH) { out[slot] = c }); err != nil {
		return err
	}
	*s = out
	return nil
}

// HexScheme is the displayable form of a Scheme. It is derived, never stored.
type HexScheme [SlotCount]string

// Get returns the hex colour for slot.
func (h HexScheme) Get(slot Slot) string {
	return h[slot]
}

// MarshalJSON encodes the hex scheme as an object keyed by slot.
func (h HexScheme) MarshalJSON() ([]byte, error) {
	return marshalSlots(func(slot Slot) any { return h[slot] })
}

// marshalSlots encodes one key per slot. encoding/json sorts map keys, and
// the sorted order of the slot identifiers is the canonical order.
func marshalSlots(value func(Slot) any) ([]byte, error) {
	m := make(map[string]any, SlotCount)
	for _, slot := range Slots() {
		m[slot.String()] = value(slot)
	}
	return json.Marshal(m)
}

// fillSlots maps keyed values onto slots, rejecting unknown and missing keys.
func fillSlots[T any](raw map[string]T, set func(Slot, T)) error {
	var seen [SlotCount]bool
	for key, v := range raw {
		slot, err := ParseSlot(key)
		if err != nil {
			return err
		}
		if seen[slot] {
			return fmt.Errorf("duplicate slot %s", slot)
		}
		seen[slot] = true
		set(slot, v)
	}
	for i, ok := range seen {
		if !ok {
			return fmt.Errorf("missing slot %s", Slot(i))
		}
	}
	return nil
}

// SchemeFromHex builds a scheme from keyed hex values such as those found in
// a Base16 YAML file.
func SchemeFromHex(values map[string]string) (Scheme, error) {
	var s Scheme
	err := fillSlots(values, func(slot Slot, hex string) {
		s[slot] = FromHex(hex)
	})
	if err != nil {
		return Scheme{}, err
	}
	for slot, hex := range values {
		if _, err := parseHex(hex); err != nil {
			return Scheme{}, fmt.Errorf("slot %s: %w", slot, err)
		}
	}
	return s, nil
}
