// Package common provides shared utilities for output plugins.
package common

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/plugin/output"
)

// TemplateFuncs returns standard template functions for all output plugins.
// These functions provide consistent colour access and formatting across all templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Colour access.
		"slot":    slotFunc,
		"ansi":    ansiFunc,
		"colours": coloursFunc,

		// Format conversion.
		"hex":       hexFunc,
		"hexNoHash": hexNoHashFunc,
		"rgb":       rgbFunc,
		"oklch":     oklchFunc,

		// Colour metadata.
		"name":        nameFunc,
		"description": descriptionFunc,

		// String manipulation (custom wrappers for pipe-friendly argument order).
		"trimPrefix": trimPrefixFunc,
		"trimSuffix": trimSuffixFunc,
		"replace":    replaceFunc,
		"quote":      quoteFunc,
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
	}
}

// slotFunc returns a colour by slot name, e.g. {{ slot . "base0D" | hex }}.
func slotFunc(theme *output.Theme, name string) (output.Colour, error) {
	if theme == nil {
		return output.Colour{}, fmt.Errorf("no theme")
	}
	slot, err := colour.ParseSlot(name)
	if err != nil {
		return output.Colour{}, err
	}
	return theme.Colour(slot), nil
}

// ansiFunc returns the colour for a terminal colour index.
func ansiFunc(theme *output.Theme, index int) (output.Colour, error) {
	if theme == nil {
		return output.Colour{}, fmt.Errorf("no theme")
	}
	return theme.ANSI(index)
}

// coloursFunc returns every slot in canonical order.
func coloursFunc(theme *output.Theme) []output.Colour {
	if theme == nil {
		return nil
	}
	return theme.Colours()
}

func hexFunc(c output.Colour) string {
	return c.Hex()
}

func hexNoHashFunc(c output.Colour) string {
	return c.HexNoHash()
}

func rgbFunc(c output.Colour) string {
	return c.RGB()
}

func oklchFunc(c output.Colour) string {
	return c.CSS()
}

func nameFunc(c output.Colour) string {
	return c.Name()
}

func descriptionFunc(c output.Colour) string {
	return c.Description()
}

// trimPrefixFunc wraps strings.TrimPrefix with pipe-friendly argument order.
// Usage: {{ .Value | trimPrefix "#" }}.
func trimPrefixFunc(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

// trimSuffixFunc wraps strings.TrimSuffix with pipe-friendly argument order.
func trimSuffixFunc(suffix, s string) string {
	return strings.TrimSuffix(s, suffix)
}

// replaceFunc wraps strings.ReplaceAll with pipe-friendly argument order.
// Usage: {{ .Value | replace " " "-" }}.
func replaceFunc(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}

// quoteFunc returns s as a double-quoted string with Go escaping.
func quoteFunc(s string) string {
	return fmt.Sprintf("%q", s)
}
