// Package harmony generates complete Base16 schemes from a single seed colour
// using classical hue harmonies.
//
// Generators are pure: the same seed always yields the same scheme.
package harmony

import (
	"fmt"

	"github.com/jmylchreest/okbase16/internal/colour"
)

// Generator derives a full scheme from one seed colour.
type Generator func(seed colour.OKLCH) colour.Scheme

// Monochromatic keeps every slot on the seed hue and varies chroma and
// lightness.
func Monochromatic(seed colour.OKLCH) colour.Scheme {
	return recipes[ModeMonochromatic].Apply(seed)
}

// Analogous spreads accents across a ±30° band around the seed hue.
func Analogous(seed colour.OKLCH) colour.Scheme {
	return recipes[ModeAnalogous].Apply(seed)
}

// Complementary splits accents between the seed hue and its opposite.
func Complementary(seed colour.OKLCH) colour.Scheme {
	return recipes[ModeComplementary].Apply(seed)
}

// Triadic distributes accents over three anchors 120° apart.
func Triadic(seed colour.OKLCH) colour.Scheme {
	return recipes[ModeTriadic].Apply(seed)
}

// GeneratorFor returns the generator for mode.
func GeneratorFor(mode Mode) (Generator, error) {
	switch mode {
	case ModeMonochromatic:
		return Monochromatic, nil
	case ModeAnalogous:
		return Analogous, nil
	case ModeComplementary:
		return Complementary, nil
	case ModeTriadic:
		return Triadic, nil
	default:
		return nil, fmt.Errorf("%w: %q has no generator", ErrUnknownMode, mode)
	}
}

// Generate derives a scheme from seed using mode.
func Generate(mode Mode, seed colour.OKLCH) (colour.Scheme, error) {
	gen, err := GeneratorFor(mode)
	if err != nil {
		return colour.Scheme{}, err
	}
	return gen(seed), nil
}
