package harmony

import (
	"github.com/jmylchreest/okbase16/internal/colour"
)

// SlotRecipe derives one slot from a seed: the hue is the seed hue plus
// HueOffset, the chroma is the seed chroma times ChromaScale, and the
// lightness is the fixed Lightness. The seed's own lightness is not used.
type SlotRecipe struct {
	HueOffset   float64
	ChromaScale float64
	Lightness   float64
}

// Recipe is the full per-slot table for one harmony.
type Recipe [colour.SlotCount]SlotRecipe

// The tables below are aesthetic data. Background slots stay on (or within
// 10 degrees of) the seed hue with damped chroma and a rising lightness ramp;
// the accent rows decide which slot reads as red, orange, yellow, green, cyan,
// blue, magenta and brown.
var recipes = map[Mode]Recipe{
	ModeMonochromatic: {
		colour.Base00: {HueOffset: 0, ChromaScale: 0.3, Lightness: 0.15},
		colour.Base01: {HueOffset: 0, ChromaScale: 0.3, Lightness: 0.20},
		colour.Base02: {HueOffset: 0, ChromaScale: 0.3, Lightness: 0.25},
		colour.Base03: {HueOffset: 0, ChromaScale: 0.4, Lightness: 0.40},
		colour.Base04: {HueOffset: 0, ChromaScale: 0.4, Lightness: 0.60},
		colour.Base05: {HueOffset: 0, ChromaScale: 0.3, Lightness: 0.75},
		colour.Base06: {HueOffset: 0, ChromaScale: 0.2, Lightness: 0.85},
		colour.Base07: {HueOffset: 0, ChromaScale: 0.1, Lightness: 0.95},
		colour.Base08: {HueOffset: 0, ChromaScale: 1.0, Lightness: 0.60},
		colour.Base09: {HueOffset: 0, ChromaScale: 0.9, Lightness: 0.65},
		colour.Base0A: {HueOffset: 0, ChromaScale: 0.8, Lightness: 0.70},
		colour.Base0B: {HueOffset: 0, ChromaScale: 0.9, Lightness: 0.65},
		colour.Base0C: {HueOffset: 0, ChromaScale: 0.85, Lightness: 0.68},
		colour.Base0D: {HueOffset: 0, ChromaScale: 1.0, Lightness: 0.62},
		colour.Base0E: {HueOffset: 0, ChromaScale: 0.9, Lightness: 0.67},
		colour.Base0F: {HueOffset: 0, ChromaScale: 0.7, Lightness: 0.55},
	},
	ModeAnalogous: {
		colour.Base00: {HueOffset: 0, ChromaScale: 0.3, Lightness: 0.15},
		colour.Base01: {HueOffset: 0, ChromaScale: 0.3, Lightness: 0.20},
		colour.Base02: {HueOffset: 5, ChromaScale: 0.3, Lightness: 0.25},
		colour.Base03: {HueOffset: 10, ChromaScale: 0.4, Lightness: 0.40},
		colour.Base04: {HueOffset: -10, ChromaScale: 0.4, Lightness: 0.60},
		colour.Base05: {HueOffset: 0, ChromaScale: 0.3, Lightness: 0.75},
		colour.Base06: {HueOffset: -5, ChromaScale: 0.2, Lightness: 0.85},
		colour.Base07: {HueOffset: 0, ChromaScale: 0.1, Lightness: 0.95},
		colour.Base08: {HueOffset: 0, ChromaScale: 1.0, Lightness: 0.60},
		colour.Base09: {HueOffset: 15, ChromaScale: 0.9, Lightness: 0.65},
		colour.Base0A: {HueOffset: 30, ChromaScale: 0.85, Lightness: 0.70},
		colour.Base0B: {HueOffset: -15, ChromaScale: 0.9, Lightness: 0.65},
		colour.Base0C: {HueOffset: -30, ChromaScale: 0.85, Lightness: 0.68},
		colour.Base0D: {HueOffset: 10, ChromaScale: 1.0, Lightness: 0.62},
		colour.Base0E: {HueOffset: -20, ChromaScale: 0.9, Lightness: 0.67},
		colour.Base0F: {HueOffset: 20, ChromaScale: 0.8, Lightness: 0.55},
	},
	// Warm accents sit around the seed, cool accents around seed+180.
	ModeComplementary: {
		colour.Base00: {HueOffset: 0, ChromaScale: 0.3, Lightness: 0.15},
		colour.Base01: {HueOffset: 0, ChromaScale: 0.3, Lightness: 0.20},
		colour.Base02: {HueOffset: 0, ChromaScale: 0.3, Lightness: 0.25},
		colour.Base03: {HueOffset: 0, ChromaScale: 0.4, Lightness: 0.40},
		colour.Base04: {HueOffset: 0, ChromaScale: 0.4, Lightness: 0.60},
		colour.Base05: {HueOffset: 0, ChromaScale: 0.3, Lightness: 0.75},
		colour.Base06: {HueOffset: 0, ChromaScale: 0.2, Lightness: 0.85},
		colour.Base07: {HueOffset: 0, ChromaScale: 0.1, Lightness: 0.95},
		colour.Base08: {HueOffset: 0, ChromaScale: 1.0, Lightness: 0.60},
		colour.Base09: {HueOffset: 30, ChromaScale: 0.9, Lightness: 0.65},
		colour.Base0A: {HueOffset: 60, ChromaScale: 0.85, Lightness: 0.70},
		colour.Base0B: {HueOffset: 180 - 30, ChromaScale: 0.9, Lightness: 0.65},
		colour.Base0C: {HueOffset: 180, ChromaScale: 0.85, Lightness: 0.68},
		colour.Base0D: {HueOffset: 180 + 30, ChromaScale: 1.0, Lightness: 0.62},
		colour.Base0E: {HueOffset: -30, ChromaScale: 0.9, Lightness: 0.67},
		colour.Base0F: {HueOffset: 45, ChromaScale: 0.8, Lightness: 0.55},
	},
	// Anchors at seed, seed+120 and seed+240.
	ModeTriadic: {
		colour.Base00: {HueOffset: 0, ChromaScale: 0.3, Lightness: 0.15},
		colour.Base01: {HueOffset: 0, ChromaScale: 0.3, Lightness: 0.20},
		colour.Base02: {HueOffset: 0, ChromaScale: 0.3, Lightness: 0.25},
		colour.Base03: {HueOffset: 0, ChromaScale: 0.4, Lightness: 0.40},
		colour.Base04: {HueOffset: 0, ChromaScale: 0.4, Lightness: 0.60},
		colour.Base05: {HueOffset: 0, ChromaScale: 0.3, Lightness: 0.75},
		colour.Base06: {HueOffset: 0, ChromaScale: 0.2, Lightness: 0.85},
		colour.Base07: {HueOffset: 0, ChromaScale: 0.1, Lightness: 0.95},
		colour.Base08: {HueOffset: 0, ChromaScale: 1.0, Lightness: 0.60},
		colour.Base09: {HueOffset: 30, ChromaScale: 0.9, Lightness: 0.65},
		colour.Base0A: {HueOffset: 60, ChromaScale: 0.85, Lightness: 0.70},
		colour.Base0B: {HueOffset: 120, ChromaScale: 0.9, Lightness: 0.65},
		colour.Base0C: {HueOffset: 120 + 20, ChromaScale: 0.85, Lightness: 0.68},
		colour.Base0D: {HueOffset: 240, ChromaScale: 1.0, Lightness: 0.62},
		colour.Base0E: {HueOffset: 240 + 20, ChromaScale: 0.9, Lightness: 0.67},
		colour.Base0F: {HueOffset: 45, ChromaScale: 0.8, Lightness: 0.55},
	},
}

// RecipeFor returns the table used by mode.
func RecipeFor(mode Mode) (Recipe, bool) {
	r, ok := recipes[mode]
	return r, ok
}

// Apply derives a complete scheme from seed. The seed is validated before
// scaling, so a seed chroma above colour.MaxChroma is clamped first and each
// slot receives MaxChroma*ChromaScale rather than a scaled raw value. Every
// emitted colour is validated.
func (r Recipe) Apply(seed colour.OKLCH) colour.Scheme {
	seed = colour.Validate(seed)
	var s colour.Scheme
	for i, sr := range r {
		s[i] = colour.Validate(colour.OKLCH{
			H: seed.H + sr.HueOffset,
			C: seed.C * sr.ChromaScale,
			L: sr.Lightness,
		})
	}
	return s
}
