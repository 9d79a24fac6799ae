package harmony

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*Mode)(nil)

// ErrUnknownMode is returned when a mode name is not recognised or a mode has
// no generator.
var ErrUnknownMode = errors.New("unknown generation mode")

// Mode selects how a scheme is produced.
type Mode string

// Supported modes. ModeManual means the scheme is edited slot by slot and is
// never regenerated.
const (
	ModeManual        Mode = "manual"
	ModeMonochromatic Mode = "monochromatic"
	ModeAnalogous     Mode = "analogous"
	ModeComplementary Mode = "complementary"
	ModeTriadic       Mode = "triadic"
)

// Modes returns every mode in display order.
func Modes() []Mode {
	return []Mode{ModeManual, ModeMonochromatic, ModeAnalogous, ModeComplementary, ModeTriadic}
}

// ParseMode parses a mode name case-insensitively.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, m := range Modes() {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownMode, name, modeList())
}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// Set implements pflag.Value.
func (m *Mode) Set(value string) error {
	parsed, err := ParseMode(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "mode"
}

// IsGenerated reports whether the mode derives the scheme from a seed.
func (m Mode) IsGenerated() bool {
	_, ok := recipes[m]
	return ok
}

func modeList() string {
	names := make([]string, 0, len(Modes()))
	for _, m := range Modes() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}
