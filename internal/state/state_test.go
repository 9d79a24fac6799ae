package state

import (
	"errors"
	"testing"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/filter"
	"github.com/jmylchreest/okbase16/internal/harmony"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.Mode != harmony.ModeManual {
		t.Errorf("Mode = %s, want manual", s.Mode)
	}
	if !s.FiltersEnabled || !s.Filters.IsIdentity() {
		t.Errorf("filters = %+v enabled=%v, want identity enabled", s.Filters, s.FiltersEnabled)
	}
	if s.Metadata != (Metadata{Name: "My Color Scheme", Author: "Anonymous"}) {
		t.Errorf("Metadata = %+v", s.Metadata)
	}
	if s.Colours[colour.Base00] != (colour.OKLCH{H: 240, C: 0.05, L: 0.15}) {
		t.Errorf("base00 = %+v", s.Colours[colour.Base00])
	}
	if s.Seed() != (colour.OKLCH{H: 0, C: 0.18, L: 0.65}) {
		t.Errorf("Seed() = %+v", s.Seed())
	}
	if bad := s.Colours.OutOfRange(); len(bad) != 0 {
		t.Errorf("default palette out of range: %v", bad)
	}
}

func TestWithModeRegeneratesFromSeed(t *testing.T) {
	orig := Default()

	next, err := orig.WithMode(harmony.ModeTriadic)
	if err != nil {
		t.Fatalf("WithMode() error = %v", err)
	}
	want := harmony.Triadic(orig.Seed())
	if next.Colours != want {
		t.Error("WithMode(triadic) did not regenerate from base08")
	}
	if next.Mode != harmony.ModeTriadic {
		t.Errorf("Mode = %s", next.Mode)
	}
	if orig.Colours != DefaultScheme() || orig.Mode != harmony.ModeManual {
		t.Error("WithMode() mutated the receiver")
	}

	manual, err := next.WithMode(harmony.ModeManual)
	if err != nil {
		t.Fatalf("WithMode(manual) error = %v", err)
	}
	if manual.Colours != next.Colours {
		t.Error("switching to manual should keep the current colours")
	}

	if _, err := orig.WithMode(harmony.Mode("rainbow")); !errors.Is(err, harmony.ErrUnknownMode) {
		t.Errorf("WithMode(rainbow) error = %v, want ErrUnknownMode", err)
	}
}

func TestWithSeed(t *testing.T) {
	seed := colour.OKLCH{H: 220, C: 0.17, L: 0.68}

	manual := Default().WithSeed(seed)
	if manual.Colours[SeedSlot] != seed {
		t.Errorf("seed slot = %+v, want %+v", manual.Colours[SeedSlot], seed)
	}
	if manual.Colours[colour.Base0D] != DefaultScheme()[colour.Base0D] {
		t.Error("manual mode should only change the seed slot")
	}

	generated, err := Default().WithMode(harmony.ModeComplementary)
	if err != nil {
		t.Fatal(err)
	}
	generated = generated.WithSeed(seed)
	if generated.Colours != harmony.Complementary(seed) {
		t.Error("WithSeed() in a generated mode should regenerate the scheme")
	}
}

func TestWithSlot(t *testing.T) {
	orig := Default()
	c := colour.OKLCH{H: 10, C: 0.2, L: 0.5}

	next, err := orig.WithSlot(colour.Base0C, c)
	if err != nil {
		t.Fatalf("WithSlot() error = %v", err)
	}
	if next.Colours[colour.Base0C] != c {
		t.Errorf("base0C = %+v", next.Colours[colour.Base0C])
	}
	if orig.Colours[colour.Base0C] == c {
		t.Error("WithSlot() mutated the receiver")
	}

	if _, err := orig.WithSlot(colour.Slot(42), c); !errors.Is(err, colour.ErrUnknownSlot) {
		t.Errorf("WithSlot(42) error = %v, want ErrUnknownSlot", err)
	}
}

func TestFilterTransitions(t *testing.T) {
	s := Default().WithFilters(filter.Filters{HueShift: 400, SaturationScale: -1, LightnessCurve: 0.1})
	want := filter.Filters{HueShift: 180, SaturationScale: 0, LightnessCurve: 0.1}
	if s.Filters != want {
		t.Errorf("WithFilters() = %+v, want clamped %+v", s.Filters, want)
	}

	for _, c := range s.Display() {
		if c.C != 0 {
			t.Fatalf("saturation 0 should remove all chroma, got %+v", c)
		}
	}

	off := s.WithFiltersEnabled(false)
	if off.Display() != off.Colours.Validate() {
		t.Error("disabled filters should display the validated raw colours")
	}
	if off.Filters != want {
		t.Error("disabling filters should keep their values")
	}

	if !s.ResetFilters().Filters.IsIdentity() {
		t.Error("ResetFilters() did not restore identity")
	}
}

func TestDisplayDoesNotChangeColours(t *testing.T) {
	s := Default().WithFilters(filter.Filters{HueShift: 90, SaturationScale: 1.5, LightnessCurve: -0.1})
	_ = s.Display()
	if s.Colours != DefaultScheme() {
		t.Error("Display() changed the stored colours")
	}
	if s.Display() == s.Colours {
		t.Error("Display() should differ from raw colours with non-identity filters")
	}
}

func TestWithMetadata(t *testing.T) {
	s := Default().WithMetadata(Metadata{Name: "Night Owl"})
	if s.Metadata.Name != "Night Owl" || s.Metadata.Author != DefaultAuthor {
		t.Errorf("Metadata = %+v", s.Metadata)
	}
}

func TestContrast(t *testing.T) {
	results := Default().Contrast()
	if len(results) != 13 {
		t.Fatalf("Contrast() returned %d results, want 13", len(results))
	}
	if results[0].Slot != colour.Base07 {
		t.Errorf("highest contrast slot = %s, want base07", results[0].Slot)
	}
}
