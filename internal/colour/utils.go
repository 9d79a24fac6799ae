package colour

import (
	"image/color"
	"math"
	"sort"
)

// WCAG thresholds for normal text.
const (
	ContrastAA  = 4.5
	ContrastAAA = 7.0
)

// ContrastReference is the slot every contrast ratio is measured against.
const ContrastReference = Base00

// contrastSlots are the foreground slots checked against the background.
var contrastSlots = []Slot{
	Base03, Base04, Base05, Base06, Base07,
	Base08, Base09, Base0A, Base0B,
	Base0C, Base0D, Base0E, Base0F,
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	// Convert from 16-bit to 8-bit.
	rf := float64(r>>8) / 255.0
	gf := float64(g>>8) / 255.0
	bf := float64(b>>8) / 255.0

	return 0.2126*gammaCorrect(rf) + 0.7152*gammaCorrect(gf) + 0.0722*gammaCorrect(bf)
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// contrastOf calculates the contrast ratio between two colours.
func contrastOf(c1, c2 color.Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatio calculates the WCAG contrast ratio between two hex colours.
// Returns a value between 1 and 21 and is symmetric in its arguments.
// If either colour cannot be parsed the result is 1, the minimum.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(hex1, hex2 string) float64 {
	c1, err := parseHex(hex1)
	if err != nil {
		return 1
	}
	c2, err := parseHex(hex2)
	if err != nil {
		return 1
	}
	ratio := contrastOf(c1.Clamped(), c2.Clamped())
	if !finite(ratio) {
		return 1
	}
	return Clamp(ratio, 1, 21)
}

// ContrastResult is the contrast of one slot against base00.
type ContrastResult struct {
	Slot  Slot    `json:"slot"`
	Ratio float64 `json:"ratio"`
	AA    bool    `json:"aa"`
	AAA   bool    `json:"aaa"`
}

// Level returns "AAA", "AA" or "fail".
func (r ContrastResult) Level() string {
	switch {
	case r.AAA:
		return "AAA"
	case r.AA:
		return "AA"
	default:
		return "fail"
	}
}

// NewContrastResult classifies ratio for slot.
func NewContrastResult(slot Slot, ratio float64) ContrastResult {
	return ContrastResult{
		Slot:  slot,
		Ratio: ratio,
		AA:    ratio >= ContrastAA,
		AAA:   ratio >= ContrastAAA,
	}
}

// CheckContrast measures base03-base0F against base00 and returns the results
// sorted by ratio, highest first. Ties keep canonical slot order.
func CheckContrast(h HexScheme) []ContrastResult {
	bg := h[ContrastReference]
	results := make([]ContrastResult, 0, len(contrastSlots))
	for _, slot := range contrastSlots {
		results = append(results, NewContrastResult(slot, ContrastRatio(h[slot], bg)))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Ratio > results[j].Ratio
	})
	return results
}
