package editor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/filter"
	"github.com/jmylchreest/okbase16/internal/harmony"
	"github.com/jmylchreest/okbase16/internal/state"
)

func newLogger(buf *bytes.Buffer, level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "editor",
		Output: buf,
		Level:  level,
	})
}

func TestApplySequence(t *testing.T) {
	seed := colour.OKLCH{H: 220, C: 0.17, L: 0.68}
	start := New(state.Default(), nil)

	next, err := start.Apply(
		SetMode(harmony.ModeTriadic),
		SetSeed(seed),
		SetFilters(filter.Filters{HueShift: 10, SaturationScale: 1, LightnessCurve: 0}),
		ToggleFilters(),
		SetMetadata(state.Metadata{Name: "Triad", Author: "Me"}),
	)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	got := next.State()
	if got.Mode != harmony.ModeTriadic {
		t.Errorf("Mode = %s, want triadic", got.Mode)
	}
	if got.Colours != harmony.Triadic(seed) {
		t.Error("colours were not regenerated from the new seed")
	}
	if got.FiltersEnabled {
		t.Error("ToggleFilters() should have disabled filters")
	}
	if got.Filters.HueShift != 10 {
		t.Errorf("HueShift = %v, want 10", got.Filters.HueShift)
	}
	if got.Metadata.Name != "Triad" {
		t.Errorf("Name = %q", got.Metadata.Name)
	}

	if start.State() != state.Default() {
		t.Error("Apply() changed the original session")
	}
}

func TestApplyFailureKeepsState(t *testing.T) {
	start := New(state.Default(), nil)

	next, err := start.Apply(
		SetSlot(colour.Base08, colour.OKLCH{H: 1, C: 0.1, L: 0.5}),
		SetMode(harmony.Mode("rainbow")),
	)
	if !errors.Is(err, harmony.ErrUnknownMode) {
		t.Fatalf("Apply() error = %v, want ErrUnknownMode", err)
	}
	if !strings.Contains(err.Error(), "set-mode") {
		t.Errorf("error %q should name the failing action", err)
	}
	if next.State() != state.Default() {
		t.Error("failed Apply() should return the unchanged session")
	}
}

func TestFilterActions(t *testing.T) {
	s, err := New(state.Default(), nil).Apply(
		SetFilters(filter.Filters{HueShift: 30, SaturationScale: 0.5, LightnessCurve: 0.1}),
		EnableFilters(false),
		EnableFilters(true),
		ResetFilters(),
	)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !s.State().Filters.IsIdentity() || !s.State().FiltersEnabled {
		t.Errorf("filters = %+v enabled=%v", s.State().Filters, s.State().FiltersEnabled)
	}
}

func TestOutOfRangeLoggedAtDebug(t *testing.T) {
	bad := colour.OKLCH{H: 10, C: 0.9, L: 0.5}

	var buf bytes.Buffer
	_, err := New(state.Default(), newLogger(&buf, hclog.Debug)).Apply(SetSlot(colour.Base0C, bad))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "outside OKLCH range") || !strings.Contains(out, "base0C") {
		t.Errorf("expected an out-of-range warning for base0C, got %q", out)
	}
	if strings.Contains(out, "display colour out of range") {
		t.Errorf("display scheme should always be in range, got %q", out)
	}

	buf.Reset()
	next, err := New(state.Default(), newLogger(&buf, hclog.Warn)).Apply(SetSlot(colour.Base0C, bad))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("no checks should run above debug level, got %q", buf.String())
	}
	if next.State().Colours[colour.Base0C] != bad {
		t.Error("checks must not alter the stored colour")
	}
}

func TestActionString(t *testing.T) {
	if got := SetSeed(colour.OKLCH{}).String(); got != "set-seed" {
		t.Errorf("String() = %q", got)
	}
	if got := SetColours(state.DefaultScheme()).String(); got != "set-colours" {
		t.Errorf("String() = %q", got)
	}
}
