package filter

import (
	"math"
	"testing"

	"github.com/jmylchreest/okbase16/internal/colour"
)

func sampleScheme() colour.Scheme {
	var s colour.Scheme
	for i := range s {
		s[i] = colour.OKLCH{H: float64(i)*30 - 60, C: 0.03 * float64(i), L: 0.06 * float64(i)}
	}
	return s
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		colour  colour.OKLCH
		filters Filters
		want    colour.OKLCH
	}{
		{
			name:    "identity",
			colour:  colour.OKLCH{H: 220, C: 0.17, L: 0.68},
			filters: Default(),
			want:    colour.OKLCH{H: 220, C: 0.17, L: 0.68},
		},
		{
			name:    "hue shift wraps forward",
			colour:  colour.OKLCH{H: 20, C: 0.1, L: 0.5},
			filters: Filters{HueShift: -40, SaturationScale: 1},
			want:    colour.OKLCH{H: 340, C: 0.1, L: 0.5},
		},
		{
			name:    "hue shift wraps back",
			colour:  colour.OKLCH{H: 300, C: 0.1, L: 0.5},
			filters: Filters{HueShift: 90, SaturationScale: 1},
			want:    colour.OKLCH{H: 30, C: 0.1, L: 0.5},
		},
		{
			name:    "saturation clamps to max chroma",
			colour:  colour.OKLCH{H: 10, C: 0.3, L: 0.5},
			filters: Filters{SaturationScale: 2},
			want:    colour.OKLCH{H: 10, C: colour.MaxChroma, L: 0.5},
		},
		{
			name:    "zero saturation",
			colour:  colour.OKLCH{H: 10, C: 0.3, L: 0.5},
			filters: Filters{SaturationScale: 0},
			want:    colour.OKLCH{H: 10, C: 0, L: 0.5},
		},
		{
			name:    "lightness clamps high",
			colour:  colour.OKLCH{H: 10, C: 0.1, L: 0.9},
			filters: Filters{SaturationScale: 1, LightnessCurve: 0.3},
			want:    colour.OKLCH{H: 10, C: 0.1, L: 1},
		},
		{
			name:    "lightness clamps low",
			colour:  colour.OKLCH{H: 10, C: 0.1, L: 0.1},
			filters: Filters{SaturationScale: 1, LightnessCurve: -0.3},
			want:    colour.OKLCH{H: 10, C: 0.1, L: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.colour, tt.filters)
			if math.Abs(got.H-tt.want.H) > 1e-9 || math.Abs(got.C-tt.want.C) > 1e-9 || math.Abs(got.L-tt.want.L) > 1e-9 {
				t.Errorf("Apply() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestApplyToSchemeIdentity(t *testing.T) {
	s := sampleScheme()
	got := ApplyToScheme(s, Default())
	if got != s.Validate() {
		t.Errorf("identity filters should equal validation:\n got %+v\nwant %+v", got, s.Validate())
	}
}

func TestApplyToSchemeDoesNotMutate(t *testing.T) {
	s := sampleScheme()
	before := s

	_ = ApplyToScheme(s, Filters{HueShift: 45, SaturationScale: 0.5, LightnessCurve: 0.1})

	if s != before {
		t.Error("ApplyToScheme() mutated its input")
	}
}

func TestApplyToSchemeIsPerSlot(t *testing.T) {
	s := sampleScheme()
	f := Filters{HueShift: 12, SaturationScale: 1.3, LightnessCurve: -0.05}
	got := ApplyToScheme(s, f)
	for _, slot := range colour.Slots() {
		if want := Apply(s[slot], f); got[slot] != want {
			t.Errorf("%s = %+v, want %+v", slot, got[slot], want)
		}
	}
}

func TestFiltersClamp(t *testing.T) {
	got := Filters{HueShift: 400, SaturationScale: -1, LightnessCurve: 0.9}.Clamp()
	want := Filters{HueShift: MaxHueShift, SaturationScale: MinSaturationScale, LightnessCurve: MaxLightnessCurve}
	if got != want {
		t.Errorf("Clamp() = %+v, want %+v", got, want)
	}

	if !Default().IsIdentity() {
		t.Error("Default() should be the identity")
	}
	if (Filters{SaturationScale: 1, HueShift: 1}).IsIdentity() {
		t.Error("a hue shift is not the identity")
	}
}
