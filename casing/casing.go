package casing

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/shapekit/words"
)

// ToPascalCase capitalizes the first letter of every word and concatenates
// them. The rest of each word is left unchanged.
func ToPascalCase(ws []string) string {
	// Casers are stateful, so each call gets its own.
	upper := cases.Upper(language.Und)

	var b strings.Builder
	for _, w := range ws {
		b.WriteString(capitalize(upper, w))
	}
	return b.String()
}

// ToCamelCase is ToPascalCase with the first letter of the result lowercased.
func ToCamelCase(ws []string) string {
	pascal := ToPascalCase(ws)
	if pascal == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(pascal)
	return cases.Lower(language.Und).String(string(r)) + pascal[size:]
}

// ToSnakeCase lowercases every word and joins them with "_".
func ToSnakeCase(ws []string) string {
	return joinLower(ws, "_")
}

// ToKebabCase lowercases every word and joins them with "-".
func ToKebabCase(ws []string) string {
	return joinLower(ws, "-")
}

// Join joins words in the given style. Unknown styles fall back to Snake.
func Join(ws []string, style Style) string {
	switch style {
	case Pascal:
		return ToPascalCase(ws)
	case Camel:
		return ToCamelCase(ws)
	case Kebab:
		return ToKebabCase(ws)
	default:
		return ToSnakeCase(ws)
	}
}

// SplitCaseToWords splits an arbitrarily cased identifier into words using
// the default delimiters and uppercase boundaries.
func SplitCaseToWords(input string) []string {
	return words.SplitWords(input)
}

// Convert re-cases input into style.
func Convert(input string, style Style) string {
	return Join(SplitCaseToWords(input), style)
}

// SnakeToCamel splits input on "_", capitalizes every word after the first
// and concatenates them. The first word is kept as-is.
//
//	SnakeToCamel("foo_bar") // "fooBar"
func SnakeToCamel(input string) string {
	parts := words.Split(input, "_")
	if len(parts) == 0 {
		return ""
	}
	upper := cases.Upper(language.Und)

	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		b.WriteString(capitalize(upper, p))
	}
	return b.String()
}

func joinLower(ws []string, sep string) string {
	lower := cases.Lower(language.Und)
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = lower.String(w)
	}
	return strings.Join(out, sep)
}

// capitalize upper-cases the first rune of w. Digraphs take their full
// uppercase form ("ǆ" becomes "Ǆ", not the titlecase "ǅ").
func capitalize(upper cases.Caser, w string) string {
	if w == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(w)
	return upper.String(string(r)) + w[size:]
}
