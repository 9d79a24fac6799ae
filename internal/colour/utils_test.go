package colour

import (
	"image/color"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want float64
	}{
		{name: "black", c: color.RGBA{A: 255}, want: 0},
		{name: "white", c: color.RGBA{R: 255, G: 255, B: 255, A: 255}, want: 1},
		{name: "pure green", c: color.RGBA{G: 255, A: 255}, want: 0.7152},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luminance(tt.c); !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("Luminance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "black on white", a: "#000000", b: "#ffffff", want: 21},
		{name: "same colour", a: "#336699", b: "#336699", want: 1},
		{name: "no hash prefix", a: "000000", b: "ffffff", want: 21},
		{name: "invalid first", a: "nope", b: "#ffffff", want: 1},
		{name: "invalid second", a: "#000000", b: "", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContrastRatio(tt.a, tt.b); !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("ContrastRatio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestContrastRatioSymmetric(t *testing.T) {
	hexes := []string{"#000000", "#ffffff", "#1a1b26", "#7aa2f7", "#f7768e", "#9ece6a", "#808080"}
	for _, a := range hexes {
		for _, b := range hexes {
			ab := ContrastRatio(a, b)
			ba := ContrastRatio(b, a)
			if ab != ba {
				t.Errorf("ContrastRatio(%s, %s) = %v but reversed = %v", a, b, ab, ba)
			}
			if ab < 1 || ab > 21 {
				t.Errorf("ContrastRatio(%s, %s) = %v out of [1, 21]", a, b, ab)
			}
		}
	}
}

func TestCheckContrast(t *testing.T) {
	var h HexScheme
	for i := range h {
		h[i] = "#000000"
	}
	h[Base05] = "#ffffff"
	h[Base08] = "#777777"
	h[Base0D] = "#595959"

	results := CheckContrast(h)
	if len(results) != 13 {
		t.Fatalf("CheckContrast() returned %d results, want 13", len(results))
	}

	for _, r := range results {
		if r.Slot == Base00 || r.Slot == Base01 || r.Slot == Base02 {
			t.Errorf("CheckContrast() should not include %s", r.Slot)
		}
	}

	for i := 1; i < len(results); i++ {
		if results[i].Ratio > results[i-1].Ratio {
			t.Fatalf("results not sorted descending at %d: %v > %v", i, results[i].Ratio, results[i-1].Ratio)
		}
	}

	first := results[0]
	if first.Slot != Base05 || !first.AAA || first.Level() != "AAA" {
		t.Errorf("first result = %+v, want base05 at AAA", first)
	}

	last := results[len(results)-1]
	if last.AA || last.Level() != "fail" {
		t.Errorf("last result = %+v, want fail", last)
	}
	// Ties keep canonical order, so base0F sorts last.
	if last.Slot != Base0F {
		t.Errorf("last result slot = %s, want base0F", last.Slot)
	}
}

func TestContrastResultLevel(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{ratio: 7, want: "AAA"},
		{ratio: 6.99, want: "AA"},
		{ratio: 4.5, want: "AA"},
		{ratio: 4.49, want: "fail"},
		{ratio: 1, want: "fail"},
	}
	for _, tt := range tests {
		if got := NewContrastResult(Base05, tt.ratio).Level(); got != tt.want {
			t.Errorf("Level(%v) = %s, want %s", tt.ratio, got, tt.want)
		}
	}
}
