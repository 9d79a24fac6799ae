package css

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/plugin/output"
	plugintesting "github.com/jmylchreest/okbase16/internal/plugin/output/testing"
	"github.com/jmylchreest/okbase16/internal/state"
)

func TestCSSPlugin(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	plugintesting.RunAllTests(t, func() output.Plugin { return New() }, plugintesting.TestConfig{
		ExpectedName:  "css",
		ExpectedFiles: []string{"test-scheme.css"},
	})
}

func TestCSSGenerate(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	theme := output.NewTheme(state.Default())
	files, err := New().Generate(theme)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	text := string(files["my-color-scheme.css"])

	if !strings.HasPrefix(text, "/* My Color Scheme by Anonymous, generated by okbase16 */\n:root {\n") {
		t.Errorf("unexpected header:\n%s", text)
	}
	for _, c := range theme.Colours() {
		fallback := "  --" + c.Name() + ": " + c.Hex() + "; /* " + c.Description() + " */\n"
		if !strings.Contains(text, fallback) {
			t.Errorf("output missing %q", fallback)
		}
		modern := "    --" + c.Name() + ": " + c.CSS() + ";\n"
		if !strings.Contains(text, modern) {
			t.Errorf("output missing %q", modern)
		}
	}
	if !strings.Contains(text, "oklch(") {
		t.Error("output has no oklch() values")
	}
}

func TestCSSSelector(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	p := New()
	cmd := &cobra.Command{Use: "test"}
	p.RegisterFlags(cmd)
	if err := cmd.Flags().Set("css.selector", "[data-theme=dusk]"); err != nil {
		t.Fatal(err)
	}

	files, err := p.Generate(output.NewTheme(state.Default()))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got := strings.Count(string(files["my-color-scheme.css"]), "[data-theme=dusk] {"); got != 2 {
		t.Errorf("selector appears %d times, want 2", got)
	}

	if err := cmd.Flags().Set("css.selector", ""); err != nil {
		t.Fatal(err)
	}
	if err := p.Validate(); err == nil {
		t.Error("Validate() should reject an empty selector")
	}
}

func TestCSSUsesDisplayScheme(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	s, err := state.Default().WithSlot(colour.Base0D, colour.OKLCH{H: 120, C: 0.1, L: 0.6})
	if err != nil {
		t.Fatal(err)
	}
	theme := output.NewTheme(s)
	files, err := New().Generate(theme)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(string(files["my-color-scheme.css"]), "--base0D: "+theme.Colour(colour.Base0D).Hex()+";") {
		t.Error("output does not use the edited slot")
	}
}
