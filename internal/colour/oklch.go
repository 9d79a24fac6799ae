// Package colour provides the OKLCH colour model used by okbase16: validation,
// gamut-safe conversion to sRGB hex, hue interpolation and WCAG contrast.
//
// Every conversion in this package is total. Malformed or out-of-range input
// degrades to a defined fallback instead of returning an error.
package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// MaxChroma is the upper bound of the stored chroma domain.
	MaxChroma = 0.4

	// FallbackHex is returned when a colour cannot be converted for display.
	FallbackHex = "#000000"

	// achromaticChroma is the chroma below which a parsed colour has no
	// meaningful hue.
	achromaticChroma = 1e-4

	// gamutTolerance absorbs floating point noise at the sRGB cube faces.
	gamutTolerance = 1e-6

	gamutSearchSteps = 32
	gamutEpsilon     = 1e-7
)

// OKLab matrices from linear sRGB. The reverse direction uses their exact
// inverses so a colour read from hex maps back onto the same hex.
var (
	linearToLMS = [3][3]float64{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	lmsToLab = [3][3]float64{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	lmsToLinear = invert3(linearToLMS)
	labToLMS    = invert3(lmsToLab)
)

// OKLCH is a colour in the OKLCH space. H is in degrees and circular, C is
// chroma in [0, MaxChroma] and L is lightness in [0, 1].
type OKLCH struct {
	H float64 `json:"h"`
	C float64 `json:"c"`
	L float64 `json:"l"`
}

// String returns the colour in CSS oklch() notation.
func (c OKLCH) String() string {
	return FormatOKLCH(c)
}

// Validate returns a copy of c with the hue normalised and chroma and
// lightness clamped to their domains.
func (c OKLCH) Validate() OKLCH {
	return Validate(c)
}

// Validate normalises the hue of c and clamps chroma to [0, MaxChroma] and
// lightness to [0, 1]. It never fails.
func Validate(c OKLCH) OKLCH {
	return OKLCH{
		H: NormaliseHue(c.H),
		C: Clamp(c.C, 0, MaxChroma),
		L: Clamp(c.L, 0, 1),
	}
}

// InRange reports whether c already lies inside the stored domain.
func (c OKLCH) InRange() bool {
	return !math.IsNaN(c.H) && c.H >= 0 && c.H < 360 &&
		c.C >= 0 && c.C <= MaxChroma &&
		c.L >= 0 && c.L <= 1
}

// NormaliseHue reduces h into [0, 360) using true modulo, so negative hues
// wrap forward. Non-finite input maps to 0.
func NormaliseHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	n := math.Mod(h, 360)
	if n < 0 {
		n += 360
	}
	// -tiny + 360 rounds to 360, and Mod keeps the sign of -0.
	if n >= 360 || n == 0 {
		n = 0
	}
	return n
}

// Clamp bounds v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GamutClamp validates c and then reduces its chroma, holding hue and
// lightness fixed, until it falls inside the sRGB gamut.
func GamutClamp(c OKLCH) OKLCH {
	c = Validate(c)
	if inGamut(c) {
		return c
	}

	lo, hi := 0.0, c.C
	for i := 0; i < gamutSearchSteps && hi-lo > gamutEpsilon; i++ {
		mid := (lo + hi) / 2
		if inGamut(OKLCH{H: c.H, C: mid, L: c.L}) {
			lo = mid
		} else {
			hi = mid
		}
	}
	c.C = lo
	return c
}

// inGamut reports whether c maps inside the sRGB cube.
func inGamut(c OKLCH) bool {
	r, g, b := oklchToLinear(c)
	rgb := colorful.LinearRgb(r, g, b)
	return within(rgb.R) && within(rgb.G) && within(rgb.B)
}

func within(v float64) bool {
	return v >= -gamutTolerance && v <= 1+gamutTolerance
}

// ToHex converts c to a "#rrggbb" string. The colour is validated and gamut
// clamped first. If the conversion still produces a non-finite channel the
// result is FallbackHex.
func ToHex(c OKLCH) string {
	rgb, ok := toRGB(c)
	if !ok {
		return FallbackHex
	}
	return rgb.Hex()
}

// toRGB converts c to an in-gamut sRGB colour.
func toRGB(c OKLCH) (colorful.Color, bool) {
	r, g, b := oklchToLinear(GamutClamp(c))
	rgb := colorful.LinearRgb(r, g, b).Clamped()
	if !finite(rgb.R) || !finite(rgb.G) || !finite(rgb.B) {
		return colorful.Color{}, false
	}
	return rgb, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FromHex parses a "#rgb" or "#rrggbb" string (the leading # is optional)
// into OKLCH. Unparseable input yields the zero colour.
func FromHex(s string) OKLCH {
	rgb, err := parseHex(s)
	if err != nil {
		return OKLCH{}
	}
	c := linearToOKLCH(rgb.LinearRgb())
	if !finite(c.L) || !finite(c.C) || !finite(c.H) {
		return OKLCH{}
	}
	if c.C < achromaticChroma {
		c.H, c.C = 0, 0
	}
	return c
}

// oklchToLinear converts c to linear sRGB without clamping.
func oklchToLinear(c OKLCH) (r, g, b float64) {
	rad := c.H * math.Pi / 180
	lms := mul3(labToLMS, [3]float64{c.L, c.C * math.Cos(rad), c.C * math.Sin(rad)})
	for i, v := range lms {
		lms[i] = v * v * v
	}
	rgb := mul3(lmsToLinear, lms)
	return rgb[0], rgb[1], rgb[2]
}

// linearToOKLCH converts linear sRGB to OKLCH with the hue in [0, 360).
func linearToOKLCH(r, g, b float64) OKLCH {
	lms := mul3(linearToLMS, [3]float64{r, g, b})
	for i, v := range lms {
		lms[i] = math.Cbrt(v)
	}
	lab := mul3(lmsToLab, lms)
	return OKLCH{
		H: NormaliseHue(math.Atan2(lab[2], lab[1]) * 180 / math.Pi),
		C: math.Hypot(lab[1], lab[2]),
		L: lab[0],
	}
}

func mul3(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// invert3 inverts a non-singular 3x3 matrix by its adjugate.
func invert3(m [3][3]float64) [3][3]float64 {
	cof := func(r0, r1, c0, c1 int) float64 {
		return m[r0][c0]*m[r1][c1] - m[r0][c1]*m[r1][c0]
	}
	adj := [3][3]float64{
		{cof(1, 2, 1, 2), -cof(0, 2, 1, 2), cof(0, 1, 1, 2)},
		{-cof(1, 2, 0, 2), cof(0, 2, 0, 2), -cof(0, 1, 0, 2)},
		{cof(1, 2, 0, 1), -cof(0, 2, 0, 1), cof(0, 1, 0, 1)},
	}
	det := m[0][0]*adj[0][0] + m[0][1]*adj[1][0] + m[0][2]*adj[2][0]
	var inv [3][3]float64
	for i := range inv {
		for j := range inv[i] {
			inv[i][j] = adj[i][j] / det
		}
	}
	return inv
}

// parseHex accepts hex colours with or without a leading #.
func parseHex(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return colorful.Color{}, fmt.Errorf("invalid hex colour %q: must be 3 or 6 hex digits", s)
	}
	for _, r := range s[1:] {
		if !isHexDigit(r) {
			return colorful.Color{}, fmt.Errorf("invalid hex colour %q: unexpected %q", s, r)
		}
	}
	return colorful.Hex(s)
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// FormatOKLCH renders c in CSS notation, e.g. "oklch(0.680 0.170 220.0)".
func FormatOKLCH(c OKLCH) string {
	return fmt.Sprintf("oklch(%.3f %.3f %.1f)", c.L, c.C, c.H)
}

// ParseOKLCH parses either a share-state triple "h,c,l" or CSS
// "oklch(L C H)" notation. Lightness in CSS form may be a percentage.
// The result is not validated.
func ParseOKLCH(text string) (OKLCH, error) {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)

	if strings.HasPrefix(lower, "oklch(") && strings.HasSuffix(lower, ")") {
		body := text[len("oklch(") : len(text)-1]
		if i := strings.Index(body, "/"); i >= 0 {
			body = body[:i]
		}
		fields := strings.Fields(strings.ReplaceAll(body, ",", " "))
		if len(fields) != 3 {
			return OKLCH{}, fmt.Errorf("invalid oklch() colour %q: expected 3 components", text)
		}
		l, err := parseComponent(strings.TrimSuffix(fields[0], "%"))
		if err != nil {
			return OKLCH{}, fmt.Errorf("invalid lightness in %q: %w", text, err)
		}
		if strings.HasSuffix(fields[0], "%") {
			l /= 100
		}
		c, err := parseComponent(fields[1])
		if err != nil {
			return OKLCH{}, fmt.Errorf("invalid chroma in %q: %w", text, err)
		}
		h, err := parseComponent(strings.TrimSuffix(fields[2], "deg"))
		if err != nil {
			return OKLCH{}, fmt.Errorf("invalid hue in %q: %w", text, err)
		}
		return OKLCH{H: h, C: c, L: l}, nil
	}

	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return OKLCH{}, fmt.Errorf("invalid colour %q: expected h,c,l or oklch(L C H)", text)
	}
	var vals [3]float64
	for i, p := range parts {
		v, err := parseComponent(p)
		if err != nil {
			return OKLCH{}, fmt.Errorf("invalid colour %q: %w", text, err)
		}
		vals[i] = v
	}
	return OKLCH{H: vals[0], C: vals[1], L: vals[2]}, nil
}

// parseComponent parses a single finite number.
func parseComponent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if !finite(v) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}

// ParseColour accepts a hex colour or any form ParseOKLCH understands.
// Hex input is converted with FromHex.
func ParseColour(text string) (OKLCH, error) {
	if _, err := parseHex(text); err == nil {
		return FromHex(text), nil
	}
	return ParseOKLCH(text)
}
