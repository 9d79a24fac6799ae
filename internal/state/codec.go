package state

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/filter"
	"github.com/jmylchreest/okbase16/internal/harmony"
)

// ErrInvalidState is returned when encoded state does not hold exactly 16
// well-formed colour triples.
var ErrInvalidState = errors.New("invalid encoded state")

// Share-state parameter keys.
const (
	paramColours    = "c"
	paramMode       = "mode"
	paramHueShift   = "hs"
	paramSaturation = "ss"
	paramLightness  = "lc"
	paramFilters    = "fe"
	paramName       = "name"
	paramAuthor     = "author"
)

const (
	slotSeparator      = "|"
	componentSeparator = ","
)

// EncodeScheme renders s as 16 pipe-separated "h,c,l" triples in canonical
// slot order. Hue is rounded to whole degrees, chroma and lightness to two
// decimal places.
func EncodeScheme(s colour.Scheme) string {
	parts := make([]string, colour.SlotCount)
	for i, c := range s {
		parts[i] = encodeColour(c)
	}
	return strings.Join(parts, slotSeparator)
}

func encodeColour(c colour.OKLCH) string {
	return formatNumber(math.Round(c.H)) + componentSeparator +
		formatNumber(math.Round(c.C*100)/100) + componentSeparator +
		formatNumber(math.Round(c.L*100)/100)
}

// formatNumber prints the shortest decimal form, with negative zero printed as 0.
func formatNumber(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DecodeScheme parses the output of EncodeScheme. Values are not validated,
// but each must be a finite number.
func DecodeScheme(text string) (colour.Scheme, error) {
	parts := strings.Split(text, slotSeparator)
	if len(parts) != colour.SlotCount {
		return colour.Scheme{}, fmt.Errorf("%w: expected %d colours, got %d", ErrInvalidState, colour.SlotCount, len(parts))
	}

	var s colour.Scheme
	for i, part := range parts {
		c, err := decodeColour(part)
		if err != nil {
			return colour.Scheme{}, fmt.Errorf("%w: %s: %v", ErrInvalidState, colour.Slot(i), err)
		}
		s[i] = c
	}
	return s, nil
}

func decodeColour(text string) (colour.OKLCH, error) {
	fields := strings.Split(text, componentSeparator)
	if len(fields) != 3 {
		return colour.OKLCH{}, fmt.Errorf("expected h,c,l triple, got %q", text)
	}

	var values [3]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return colour.OKLCH{}, fmt.Errorf("malformed number %q", field)
		}
		values[i] = v
	}
	return colour.OKLCH{H: values[0], C: values[1], L: values[2]}, nil
}

// Encode renders s as a share hash, e.g. "#c=...&mode=manual". Filters and
// metadata are only included when they differ from the defaults.
func Encode(s State) string {
	var b strings.Builder
	b.WriteByte('#')

	add := func(key, value string) {
		if b.Len() > 1 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}

	add(paramColours, EncodeScheme(s.Colours))
	mode := s.Mode
	if mode == "" {
		mode = harmony.ModeManual
	}
	add(paramMode, mode.String())

	def := filter.Default()
	if s.Filters.HueShift != def.HueShift {
		add(paramHueShift, formatNumber(s.Filters.HueShift))
	}
	if s.Filters.SaturationScale != def.SaturationScale {
		add(paramSaturation, formatNumber(s.Filters.SaturationScale))
	}
	if s.Filters.LightnessCurve != def.LightnessCurve {
		add(paramLightness, formatNumber(s.Filters.LightnessCurve))
	}
	if !s.FiltersEnabled {
		add(paramFilters, "0")
	}
	if s.Metadata.Name != "" && s.Metadata.Name != DefaultName {
		add(paramName, s.Metadata.Name)
	}
	if s.Metadata.Author != "" && s.Metadata.Author != DefaultAuthor {
		add(paramAuthor, s.Metadata.Author)
	}
	return b.String()
}

// Decode parses a share hash. It accepts the bare parameter string, the same
// with a leading '#', or a full URL carrying the hash as its fragment.
//
// Only the colours are mandatory. A missing or unknown mode decodes as manual,
// and missing or malformed filter values take their defaults before being
// clamped.
func Decode(hash string) (State, error) {
	query := strings.TrimSpace(hash)
	if i := strings.IndexByte(query, '#'); i >= 0 {
		query = query[i+1:]
	}
	if query == "" {
		return State{}, fmt.Errorf("%w: empty", ErrInvalidState)
	}

	params, err := url.ParseQuery(query)
	if err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	encoded := params.Get(paramColours)
	if encoded == "" {
		return State{}, fmt.Errorf("%w: no colours", ErrInvalidState)
	}
	colours, err := DecodeScheme(encoded)
	if err != nil {
		return State{}, err
	}

	mode, err := harmony.ParseMode(params.Get(paramMode))
	if err != nil {
		mode = harmony.ModeManual
	}

	def := filter.Default()
	filters := filter.Filters{
		HueShift:        floatParam(params, paramHueShift, def.HueShift),
		SaturationScale: floatParam(params, paramSaturation, def.SaturationScale),
		LightnessCurve:  floatParam(params, paramLightness, def.LightnessCurve),
	}.Clamp()

	s := State{
		Mode:           mode,
		Colours:        colours,
		Filters:        filters,
		FiltersEnabled: params.Get(paramFilters) != "0",
	}
	return s.WithMetadata(Metadata{
		Name:   params.Get(paramName),
		Author: params.Get(paramAuthor),
	}), nil
}

func floatParam(params url.Values, key string, fallback float64) float64 {
	raw := params.Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// LoadOrDefault decodes hash, falling back to Default when it is empty or
// invalid. The decode error, if any, is returned alongside the default state.
func LoadOrDefault(hash string) (State, error) {
	if strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(hash), "#")) == "" {
		return Default(), nil
	}
	s, err := Decode(hash)
	if err != nil {
		return Default(), err
	}
	return s, nil
}
