package base16

import (
	"errors"
	"strings"
	"testing"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/plugin/output"
	plugintesting "github.com/jmylchreest/okbase16/internal/plugin/output/testing"
	"github.com/jmylchreest/okbase16/internal/state"
)

func TestBase16Plugin(t *testing.T) {
	plugintesting.RunAllTests(t, func() output.Plugin { return New() }, plugintesting.TestConfig{
		ExpectedName:  "base16",
		ExpectedFiles: []string{"test-scheme.yaml"},
	})
}

const sample = `scheme: "Sample"
author: "Someone"
base00: "000000"
base01: "111111"
base02: "222222"
base03: "333333"
base04: "444444"
base05: "555555"
base06: "666666"
base07: "777777"
base08: "888888"
base09: "999999"
base0A: "aaaaaa"
base0B: "bbbbbb"
base0C: "cccccc"
base0D: "dddddd"
base0E: "eeeeee"
base0F: "ffffff"
`

func TestMarshal(t *testing.T) {
	theme := output.NewTheme(state.Default())
	data, err := Marshal(theme)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 2+colour.SlotCount {
		t.Fatalf("Marshal() produced %d lines, want %d:\n%s", len(lines), 2+colour.SlotCount, data)
	}
	if lines[0] != `scheme: "My Color Scheme"` {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != `author: "Anonymous"` {
		t.Errorf("line 1 = %q", lines[1])
	}
	for i, c := range theme.Colours() {
		want := c.Name() + `: "` + c.HexNoHash() + `" # ` + c.Description()
		if got := lines[i+2]; got != want {
			t.Errorf("line %d = %q, want %q", i+2, got, want)
		}
	}
}

func TestGenerateFileName(t *testing.T) {
	files, err := New().Generate(output.NewTheme(state.Default()))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if _, ok := files["my-color-scheme.yaml"]; !ok {
		t.Errorf("Generate() files = %v, want my-color-scheme.yaml", keys(files))
	}
}

func TestParse(t *testing.T) {
	scheme, meta, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if meta.Name != "Sample" || meta.Author != "Someone" {
		t.Errorf("metadata = %+v", meta)
	}
	hex := scheme.Hex()
	if hex[colour.Base00] != "#000000" {
		t.Errorf("base00 = %s, want #000000", hex[colour.Base00])
	}
	if hex[colour.Base0F] != "#ffffff" {
		t.Errorf("base0F = %s, want #ffffff", hex[colour.Base0F])
	}
	if hex[colour.Base05] != "#555555" {
		t.Errorf("base05 = %s, want #555555", hex[colour.Base05])
	}
}

func TestParseRoundTrip(t *testing.T) {
	theme := output.NewTheme(state.Default())
	data, err := Marshal(theme)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	scheme, meta, err := Parse(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if meta != state.DefaultMetadata() {
		t.Errorf("metadata = %+v, want defaults", meta)
	}
	if got, want := scheme.Hex(), theme.Hex(); got != want {
		t.Errorf("round trip hex = %v, want %v", got, want)
	}
}

func TestParseLayouts(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantName   string
		wantAuthor string
	}{
		{
			name:       "palette layout",
			input:      paletteLayout(),
			wantName:   "Nested",
			wantAuthor: "Someone",
		},
		{
			name:       "unquoted numeric hex",
			input:      strings.NewReplacer(`"000000"`, "000000", `"111111"`, "111111").Replace(sample),
			wantName:   "Sample",
			wantAuthor: "Someone",
		},
		{
			name:       "hash prefix and upper case",
			input:      strings.Replace(sample, `"aaaaaa"`, `"#AAAAAA"`, 1),
			wantName:   "Sample",
			wantAuthor: "Someone",
		},
		{
			name:       "missing metadata",
			input:      withoutLines(sample, "scheme:", "author:"),
			wantName:   state.DefaultName,
			wantAuthor: state.DefaultAuthor,
		},
		{
			name:       "extra keys ignored",
			input:      sample + "slug: sample\nvariant: dark\n",
			wantName:   "Sample",
			wantAuthor: "Someone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheme, meta, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if meta.Name != tt.wantName || meta.Author != tt.wantAuthor {
				t.Errorf("metadata = %+v, want %s/%s", meta, tt.wantName, tt.wantAuthor)
			}
			if got := scheme.Hex()[colour.Base0A]; got != "#aaaaaa" {
				t.Errorf("base0A = %s, want #aaaaaa", got)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not a mapping", "- base00\n- base01\n"},
		{"missing slot", withoutLines(sample, "base0F:")},
		{"short hex", strings.Replace(sample, `"cccccc"`, `"ccc"`, 1)},
		{"bad digits", strings.Replace(sample, `"cccccc"`, `"cccxyz"`, 1)},
		{"duplicate slot", sample + "BASE00: \"010101\"\n"},
		{"nested slot", strings.Replace(sample, `base01: "111111"`, "base01:\n  r: 1", 1)},
		{"malformed yaml", "scheme: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, ErrInvalidScheme) {
				t.Errorf("Parse() error = %v, want ErrInvalidScheme", err)
			}
		})
	}
}

func paletteLayout() string {
	var b strings.Builder
	b.WriteString("system: base16\nname: \"Nested\"\nauthor: \"Someone\"\npalette:\n")
	for _, line := range strings.Split(sample, "\n") {
		if strings.HasPrefix(line, "base") {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func withoutLines(s string, prefixes ...string) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		drop := false
		for _, p := range prefixes {
			if strings.HasPrefix(line, p) {
				drop = true
			}
		}
		if !drop {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
