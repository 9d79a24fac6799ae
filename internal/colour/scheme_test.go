package colour

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func testScheme() Scheme {
	var s Scheme
	for i := range s {
		s[i] = OKLCH{H: float64(i) * 20, C: 0.1, L: 0.1 + float64(i)*0.05}
	}
	return s
}

func TestParseSlot(t *testing.T) {
	tests := []struct {
		input   string
		want    Slot
		wantErr bool
	}{
		{input: "base00", want: Base00},
		{input: "base0A", want: Base0A},
		{input: "base0a", want: Base0A},
		{input: "BASE0F", want: Base0F},
		{input: " base08 ", want: Base08},
		{input: "base10", wantErr: true},
		{input: "background", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSlot(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownSlot) {
					t.Fatalf("ParseSlot(%q) error = %v, want ErrUnknownSlot", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSlot(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSlot(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlotOrder(t *testing.T) {
	slots := Slots()
	if len(slots) != SlotCount {
		t.Fatalf("Slots() returned %d slots, want %d", len(slots), SlotCount)
	}
	if slots[0].String() != "base00" || slots[15].String() != "base0F" {
		t.Errorf("unexpected slot order: first %s, last %s", slots[0], slots[15])
	}
	for _, s := range BackgroundSlots() {
		if !s.IsBackground() {
			t.Errorf("%s should be a background slot", s)
		}
	}
	for _, s := range AccentSlots() {
		if s.IsBackground() {
			t.Errorf("%s should be an accent slot", s)
		}
		if s.Description() == "" {
			t.Errorf("%s has no description", s)
		}
	}
	if Slot(16).Valid() || Slot(-1).Valid() {
		t.Error("out of range slots should not be valid")
	}
}

func TestSchemeWithDoesNotMutate(t *testing.T) {
	orig := testScheme()
	before := orig[Base08]

	updated := orig.With(Base08, OKLCH{H: 1, C: 0.2, L: 0.5})

	if orig[Base08] != before {
		t.Error("With() mutated the original scheme")
	}
	if updated.Get(Base08) != (OKLCH{H: 1, C: 0.2, L: 0.5}) {
		t.Errorf("With() did not set the slot: %+v", updated.Get(Base08))
	}
}

func TestSchemeOutOfRange(t *testing.T) {
	s := testScheme()
	if bad := s.OutOfRange(); len(bad) != 0 {
		t.Fatalf("OutOfRange() = %v, want none", bad)
	}

	s[Base03] = OKLCH{H: -10, C: 0.1, L: 0.5}
	s[Base0C] = OKLCH{H: 10, C: 0.9, L: 0.5}
	bad := s.OutOfRange()
	if len(bad) != 2 || bad[0] != Base03 || bad[1] != Base0C {
		t.Errorf("OutOfRange() = %v, want [base03 base0C]", bad)
	}

	if bad := s.Validate().OutOfRange(); len(bad) != 0 {
		t.Errorf("validated scheme still out of range: %v", bad)
	}
}

func TestSchemeJSON(t *testing.T) {
	s := testScheme()

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	text := string(data)
	if strings.Index(text, `"base09"`) > strings.Index(text, `"base0A"`) {
		t.Errorf("slots not in canonical order: %s", text)
	}

	var decoded Scheme
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded != s {
		t.Errorf("decoded scheme differs from original")
	}
}

func TestSchemeJSONRejectsIncomplete(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "missing slot", data: `{"base00":{"h":0,"c":0,"l":0}}`, want: "missing slot"},
		{name: "unknown slot", data: `{"base10":{"h":0,"c":0,"l":0}}`, want: "unknown slot"},
		{name: "not an object", data: `[1,2,3]`, want: "failed to decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Scheme
			err := json.Unmarshal([]byte(tt.data), &s)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Unmarshal() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestSchemeFromHex(t *testing.T) {
	values := make(map[string]string, SlotCount)
	for _, slot := range Slots() {
		values[slot.String()] = "808080"
	}

	s, err := SchemeFromHex(values)
	if err != nil {
		t.Fatalf("SchemeFromHex() error = %v", err)
	}
	if got := s.Hex().Get(Base0F); got != "#808080" {
		t.Errorf("base0F = %s, want #808080", got)
	}

	values["base05"] = "zzzzzz"
	if _, err := SchemeFromHex(values); err == nil {
		t.Error("SchemeFromHex() should reject malformed hex")
	}

	delete(values, "base05")
	if _, err := SchemeFromHex(values); err == nil {
		t.Error("SchemeFromHex() should reject a missing slot")
	}
}
