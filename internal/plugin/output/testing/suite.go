// Package testing provides shared test utilities for output plugins.
package testing

import (
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/okbase16/internal/harmony"
	"github.com/jmylchreest/okbase16/internal/plugin/output"
	"github.com/jmylchreest/okbase16/internal/state"
)

// TestBasicInterface tests the basic plugin interface methods that all plugins must implement.
func TestBasicInterface(t *testing.T, p output.Plugin, expectedName string) {
	t.Run("Name", func(t *testing.T) {
		if p.Name() != expectedName {
			t.Errorf("Name() = %s, want %s", p.Name(), expectedName)
		}
	})

	t.Run("Description", func(t *testing.T) {
		if p.Description() == "" {
			t.Error("Description() should not be empty")
		}
	})

	t.Run("OutputDir", func(t *testing.T) {
		if dir := p.OutputDir(); dir != "" {
			t.Errorf("OutputDir() = %s, want empty before flags are set", dir)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})
}

// TestGeneration tests the Generate method with various scenarios.
func TestGeneration(t *testing.T, p output.Plugin, expectedFiles []string) {
	t.Run("Generate", func(t *testing.T) {
		files, err := p.Generate(CreateTestTheme(t))
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		if len(files) != len(expectedFiles) {
			t.Fatalf("Generate() returned %d files, want %d", len(files), len(expectedFiles))
		}

		for _, expectedFile := range expectedFiles {
			content, ok := files[expectedFile]
			if !ok {
				t.Errorf("Generate() did not return %s", expectedFile)
				continue
			}
			if len(content) == 0 {
				t.Errorf("Generate() returned empty %s", expectedFile)
			}
		}
	})

	t.Run("GenerateNilTheme", func(t *testing.T) {
		if _, err := p.Generate(nil); err == nil {
			t.Error("Generate() with nil theme should return error")
		}
	})

	t.Run("GenerateContainsEveryColour", func(t *testing.T) {
		theme := CreateTestTheme(t)
		files, err := p.Generate(theme)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		var all strings.Builder
		for _, content := range files {
			all.Write(content)
		}
		text := strings.ToLower(all.String())
		for _, c := range theme.Colours() {
			if !strings.Contains(text, strings.ToLower(c.HexNoHash())) {
				t.Errorf("output does not mention %s (%s)", c.Name(), c.Hex())
			}
		}
	})
}

// TestLoggerPlugin tests logger injection if the plugin supports it.
func TestLoggerPlugin(t *testing.T, p any) {
	lp, ok := p.(output.LoggerPlugin)
	if !ok {
		t.Skip("Plugin does not implement SetLogger")
	}

	t.Run("SetLogger", func(_ *testing.T) {
		// Just test that it doesn't panic.
		lp.SetLogger(hclog.NewNullLogger())
		lp.SetLogger(nil)
	})
}

// TestFlags tests plugin-specific flag registration.
func TestFlags(t *testing.T, p output.Plugin, expectedFlagPrefix string) {
	t.Run("RegisterFlags", func(t *testing.T) {
		cmd := &cobra.Command{
			Use: "test",
		}

		p.RegisterFlags(cmd)

		expectedFlag := expectedFlagPrefix + ".output-dir"
		flag := cmd.Flags().Lookup(expectedFlag)
		if flag == nil {
			t.Fatalf("RegisterFlags() did not register %s flag", expectedFlag)
		}
		if err := cmd.Flags().Set(expectedFlag, "/tmp/okbase16-test"); err != nil {
			t.Fatalf("failed to set %s: %v", expectedFlag, err)
		}
		if p.OutputDir() != "/tmp/okbase16-test" {
			t.Errorf("OutputDir() = %q after setting %s", p.OutputDir(), expectedFlag)
		}
	})
}

// CreateTestTheme returns a theme generated from a fixed seed.
func CreateTestTheme(t *testing.T) *output.Theme {
	t.Helper()
	s := state.Default().WithSeed(state.Default().Seed())
	s, err := s.WithMode(harmony.ModeTriadic)
	if err != nil {
		t.Fatalf("failed to build test state: %v", err)
	}
	s = s.WithMetadata(state.Metadata{Name: "Test Scheme", Author: "Test Author"})
	return output.NewTheme(s)
}

// RunAllTests runs all standard tests for a plugin. A fresh plugin is
// needed for the flag test, so newPlugin is called more than once.
func RunAllTests(t *testing.T, newPlugin func() output.Plugin, config TestConfig) {
	TestBasicInterface(t, newPlugin(), config.ExpectedName)
	TestGeneration(t, newPlugin(), config.ExpectedFiles)
	TestLoggerPlugin(t, newPlugin())
	TestFlags(t, newPlugin(), config.ExpectedName)
}

// TestConfig holds configuration for running plugin tests.
type TestConfig struct {
	ExpectedName  string   // Plugin name
	ExpectedFiles []string // Files that Generate() should return
}
