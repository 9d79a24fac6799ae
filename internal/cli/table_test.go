package cli

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestNewTable(t *testing.T) {
	table := NewTable("Slot", "Hex", "Role")

	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable("Slot", "Hex")

	table.AddRow("base00", "#1a1b26")
	table.AddRow("base01")
	table.AddRow("base02", "#292e42", "extra")

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	if got := table.rows[1]; !reflect.DeepEqual(got, []string{"base01", ""}) {
		t.Errorf("short row = %q, want padded", got)
	}
	if got := table.rows[2]; !reflect.DeepEqual(got, []string{"base02", "#292e42"}) {
		t.Errorf("long row = %q, want truncated", got)
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("Slot", "Hex", "Role")
	table.AddRow("base00", "#1a1b26", "Default Background")
	table.AddRow("base0D", "#7aa2f7", "Functions")

	want := "" +
		"Slot    Hex      Role\n" +
		"------  -------  ------------------\n" +
		"base00  #1a1b26  Default Background\n" +
		"base0D  #7aa2f7  Functions\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Expected empty string for empty table, got: %q", got)
	}

	got := NewTable("Column1", "Column2").Render()
	if got != "Column1  Column2\n-------  -------\n" {
		t.Errorf("headers only = %q", got)
	}
}

func TestTableEscapeSequences(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.TrueColor)
	swatch := r.NewStyle().Background(lipgloss.Color("#7aa2f7")).Render("    ")
	if !strings.Contains(swatch, "\x1b[") {
		t.Fatal("expected a coloured swatch")
	}

	table := NewTable("Swatch", "Hex")
	table.AddRow(swatch, "#7aa2f7")
	lines := strings.Split(table.Render(), "\n")

	// The swatch is four cells wide, padded to the six-cell header.
	if got := lipgloss.Width(lines[2]); got != lipgloss.Width(lines[1]) {
		t.Errorf("row width %d, rule width %d", got, lipgloss.Width(lines[1]))
	}
}

func TestTableWrap(t *testing.T) {
	table := NewTable("Slot", "Role")
	table.SetColumnMaxWidth(1, 20)
	table.AddRow("base01", "Lighter Background (Used for status bars)")

	want := "" +
		"Slot    Role\n" +
		"------  ------------------\n" +
		"base01  Lighter Background\n" +
		"        (Used for status\n" +
		"        bars)\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestTableWriteTo(t *testing.T) {
	table := NewTable("A")
	table.AddRow("x")

	var buf bytes.Buffer
	n, err := table.WriteTo(&buf)
	if err != nil || n != int64(buf.Len()) || buf.String() != table.Render() {
		t.Errorf("WriteTo() = %d, %v, %q", n, err, buf.String())
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"},
		{"", 5, "     "},
		{"café", 6, "café  "},
	}

	for _, tt := range tests {
		if result := padRight(tt.input, tt.width); result != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"short", 10, []string{"short"}},
		{"one two three", 7, []string{"one two", "three"}},
		{"abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"aa abcdef", 4, []string{"aa", "abcd", "ef"}},
		{"anything", 0, []string{"anything"}},
	}
	for _, tt := range tests {
		if got := wrapText(tt.text, tt.width); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
