// Package filter applies global tone adjustments to OKLCH colours and schemes.
//
// Filters are a view transform: they always return new values and never touch
// the scheme they are given, so the unfiltered scheme stays available for
// editing and for toggling filters off again.
package filter

import (
	"github.com/jmylchreest/okbase16/internal/colour"
)

// Parameter domains.
const (
	MinHueShift        = -180.0
	MaxHueShift        = 180.0
	MinSaturationScale = 0.0
	MaxSaturationScale = 2.0
	MinLightnessCurve  = -0.3
	MaxLightnessCurve  = 0.3
)

// Filters holds the three global adjustments.
type Filters struct {
	// HueShift is added to every hue, in degrees.
	HueShift float64 `json:"hueShift" toml:"hue_shift"`
	// SaturationScale multiplies every chroma.
	SaturationScale float64 `json:"saturationScale" toml:"saturation_scale"`
	// LightnessCurve is added to every lightness.
	LightnessCurve float64 `json:"lightnessCurve" toml:"lightness_curve"`
}

// Default returns the identity filters {0, 1, 0}.
func Default() Filters {
	return Filters{HueShift: 0, SaturationScale: 1, LightnessCurve: 0}
}

// IsIdentity reports whether f leaves every colour unchanged apart from
// validation.
func (f Filters) IsIdentity() bool {
	return f == Default()
}

// Clamp bounds each parameter to its domain.
func (f Filters) Clamp() Filters {
	return Filters{
		HueShift:        colour.Clamp(f.HueShift, MinHueShift, MaxHueShift),
		SaturationScale: colour.Clamp(f.SaturationScale, MinSaturationScale, MaxSaturationScale),
		LightnessCurve:  colour.Clamp(f.LightnessCurve, MinLightnessCurve, MaxLightnessCurve),
	}
}

// Apply returns c with f applied. The result is always in range.
func Apply(c colour.OKLCH, f Filters) colour.OKLCH {
	return colour.OKLCH{
		H: colour.NormaliseHue(c.H + f.HueShift),
		C: colour.Clamp(c.C*f.SaturationScale, 0, colour.MaxChroma),
		L: colour.Clamp(c.L+f.LightnessCurve, 0, 1),
	}
}

// ApplyToScheme applies f to every slot independently and returns a new
// scheme. No slot influences another.
func ApplyToScheme(s colour.Scheme, f Filters) colour.Scheme {
	var out colour.Scheme
	for i, c := range s {
		out[i] = Apply(c, f)
	}
	return out
}
