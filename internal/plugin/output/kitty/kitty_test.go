package kitty

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/plugin/output"
	plugintesting "github.com/jmylchreest/okbase16/internal/plugin/output/testing"
	"github.com/jmylchreest/okbase16/internal/state"
)

func TestKittyPlugin(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	plugintesting.RunAllTests(t, func() output.Plugin { return New() }, plugintesting.TestConfig{
		ExpectedName:  "kitty",
		ExpectedFiles: []string{"test-scheme.conf"},
	})
}

func TestKittyThemeContent(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	theme := output.NewTheme(state.Default())
	files, err := New().Generate(theme)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	content, ok := files["my-color-scheme.conf"]
	if !ok {
		t.Fatal("my-color-scheme.conf not generated")
	}
	text := string(content)

	want := []string{
		"## name: My Color Scheme",
		"## author: Anonymous",
		"background " + theme.Colour(colour.Base00).Hex(),
		"foreground " + theme.Colour(colour.Base05).Hex(),
		"color0 " + theme.Colour(colour.Base00).Hex(),
		"color1 " + theme.Colour(colour.Base08).Hex(),
		"color8 " + theme.Colour(colour.Base03).Hex(),
		"color15 " + theme.Colour(colour.Base07).Hex(),
	}
	for _, line := range want {
		if !strings.Contains(text, line+"\n") {
			t.Errorf("output missing %q", line)
		}
	}

	if strings.Contains(text, "{{") || strings.Contains(text, "}}") {
		t.Error("Template syntax not fully processed")
	}
}

func TestKittyCustomTemplate(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "kitty")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	custom := `background {{ slot . "base00" | hexNoHash }}` + "\n"
	if err := os.WriteFile(filepath.Join(dir, TemplateName), []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	p := New()
	p.SetTemplateBase(base)
	theme := output.NewTheme(state.Default())
	files, err := p.Generate(theme)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := "background " + theme.Colour(colour.Base00).HexNoHash() + "\n"
	if got := string(files["my-color-scheme.conf"]); got != want {
		t.Errorf("custom template output = %q, want %q", got, want)
	}
}

func TestKittyBrokenCustomTemplate(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "kitty")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, TemplateName), []byte(`{{ slot . "base99" | hex }}`), 0o600); err != nil {
		t.Fatal(err)
	}

	p := New()
	p.SetTemplateBase(base)
	if _, err := p.Generate(output.NewTheme(state.Default())); err == nil {
		t.Error("Generate() should fail for an unknown slot")
	}
}

func TestKittyPostWriteWithoutReload(t *testing.T) {
	if err := New().PostWrite(context.Background(), []string{"theme.conf"}); err != nil {
		t.Errorf("PostWrite() without --kitty.reload should be a no-op, got %v", err)
	}
}
