package colour

import (
	"errors"
	"math"
)

// ErrInvalidSteps is returned by Gradient when fewer than one step is requested.
var ErrInvalidSteps = errors.New("gradient needs at least one step")

// InterpolateHue interpolates between two hues along the shorter arc of the
// colour wheel. The result is normalised into [0, 360). t is not clamped.
func InterpolateHue(h1, h2, t float64) float64 {
	h1, h2 = NormaliseHue(h1), NormaliseHue(h2)
	diff := h2 - h1
	if math.Abs(diff) > 180 {
		if diff > 0 {
			diff -= 360
		} else {
			diff += 360
		}
	}
	return NormaliseHue(h1 + diff*t)
}

// Interpolate blends a towards b. Chroma and lightness are interpolated
// linearly, hue along the shorter arc. t is clamped to [0, 1] and the result
// is validated, so Interpolate(a, b, 0) equals Validate(a).
func Interpolate(a, b OKLCH, t float64) OKLCH {
	t = Clamp(t, 0, 1)
	return Validate(OKLCH{
		H: InterpolateHue(a.H, b.H, t),
		C: a.C + (b.C-a.C)*t,
		L: a.L + (b.L-a.L)*t,
	})
}

// Gradient returns steps evenly spaced colours from a to b inclusive.
// A single step yields just a.
func Gradient(a, b OKLCH, steps int) ([]OKLCH, error) {
	switch {
	case steps < 1:
		return nil, ErrInvalidSteps
	case steps == 1:
		return []OKLCH{Validate(a)}, nil
	}

	colours := make([]OKLCH, steps)
	for i := range colours {
		t := float64(i) / float64(steps-1)
		colours[i] = Interpolate(a, b, t)
	}
	return colours, nil
}
