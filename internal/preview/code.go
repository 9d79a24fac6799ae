package preview

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/plugin/output"
)

var (
	// ErrUnknownLanguage is returned for languages without a sample.
	ErrUnknownLanguage = errors.New("unknown preview language")
	// ErrUnknownFormatter is returned for formatter names chroma does not know.
	ErrUnknownFormatter = errors.New("unknown formatter")
)

// tokenSlots assigns token categories to slots. Subcategories inherit from
// their parents in chroma, so only the roots and the exceptions are listed.
var tokenSlots = []struct {
	token chroma.TokenType
	slot  colour.Slot
}{
	{chroma.Text, colour.Base05},
	{chroma.Comment, colour.Base03},
	{chroma.CommentPreproc, colour.Base0E},
	{chroma.LiteralString, colour.Base0B},
	{chroma.LiteralStringEscape, colour.Base0C},
	{chroma.LiteralStringRegex, colour.Base0C},
	{chroma.LiteralNumber, colour.Base09},
	{chroma.Keyword, colour.Base0E},
	{chroma.KeywordConstant, colour.Base09},
	{chroma.KeywordType, colour.Base0A},
	{chroma.Name, colour.Base05},
	{chroma.NameFunction, colour.Base0D},
	{chroma.NameClass, colour.Base0A},
	{chroma.NameVariable, colour.Base08},
	{chroma.NameTag, colour.Base08},
	{chroma.NameAttribute, colour.Base09},
	{chroma.NameConstant, colour.Base09},
	{chroma.NameBuiltin, colour.Base0C},
	{chroma.NameDecorator, colour.Base0F},
	{chroma.Operator, colour.Base05},
	{chroma.Punctuation, colour.Base05},
	{chroma.GenericDeleted, colour.Base08},
	{chroma.GenericInserted, colour.Base0B},
	{chroma.GenericHeading, colour.Base0D},
	{chroma.Error, colour.Base08},
}

// Style builds a chroma style from the scheme.
func Style(theme *output.Theme) (*chroma.Style, error) {
	hex := func(slot colour.Slot) string { return theme.Colour(slot).Hex() }

	entries := chroma.StyleEntries{
		chroma.Background:         fmt.Sprintf("%s bg:%s", hex(colour.Base05), hex(colour.Base00)),
		chroma.LineNumbers:        fmt.Sprintf("%s bg:%s", hex(colour.Base03), hex(colour.Base01)),
		chroma.LineHighlight:      "bg:" + hex(colour.Base02),
		chroma.GenericEmph:        "italic",
		chroma.GenericStrong:      "bold",
		chroma.KeywordDeclaration: hex(colour.Base0E) + " bold",
	}
	for _, ts := range tokenSlots {
		if _, ok := entries[ts.token]; !ok {
			entries[ts.token] = hex(ts.slot)
		}
	}

	name := "okbase16-" + theme.Slug()
	style, err := chroma.NewStyle(name, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to build highlight style: %w", err)
	}
	return style, nil
}

// Formatters returns the chroma formatter names, sorted.
func Formatters() []string {
	names := make([]string, 0, len(formatters.Registry))
	for name := range formatters.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Code highlights the sample for lang with the scheme and writes it using
// the named chroma formatter, e.g. "terminal16m", "terminal256" or "html".
func Code(w io.Writer, theme *output.Theme, lang, formatterName string) error {
	snippet, ok := LookupSnippet(lang)
	if !ok {
		return fmt.Errorf("%w %q (available: %s)", ErrUnknownLanguage, lang, strings.Join(Languages(), ", "))
	}

	formatter, ok := formatters.Registry[formatterName]
	if !ok {
		return fmt.Errorf("%w %q (available: %s)", ErrUnknownFormatter, formatterName, strings.Join(Formatters(), ", "))
	}

	lexer := lexers.Get(snippet.Lexer)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style, err := Style(theme)
	if err != nil {
		return err
	}

	iterator, err := lexer.Tokenise(nil, snippet.Source)
	if err != nil {
		return fmt.Errorf("failed to tokenise %s sample: %w", snippet.Language, err)
	}
	if err := formatter.Format(w, style, iterator); err != nil {
		return fmt.Errorf("failed to format %s sample: %w", snippet.Language, err)
	}
	return nil
}
