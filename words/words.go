package words

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/shapekit/internal/options"
)

// canonical is the separator every delimiter is rewritten to before the
// case-boundary scan.
const canonical = "_"

// DefaultDelimiters returns the delimiters used by SplitWords.
func DefaultDelimiters() []string {
	return []string{" ", "-", "_"}
}

// Tokenizer splits strings into words using a configurable delimiter set.
// A Tokenizer is read-only after construction and safe for concurrent use.
type Tokenizer struct {
	// Delimiters are the strings treated as explicit word separators.
	// Nil means DefaultDelimiters.
	Delimiters []string
}

// New creates a Tokenizer. With no delimiters it uses DefaultDelimiters.
func New(delims ...string) *Tokenizer {
	if len(delims) == 0 {
		delims = DefaultDelimiters()
	}
	return &Tokenizer{Delimiters: delims}
}

// Validate reports an invalid delimiter set.
func (t *Tokenizer) Validate() error {
	if t.Delimiters == nil {
		return nil
	}
	return options.ValidateDelimiters(t.Delimiters)
}

// Split splits input into words.
func (t *Tokenizer) Split(input string) []string {
	delims := t.Delimiters
	if delims == nil {
		delims = DefaultDelimiters()
	}
	s := input
	for _, d := range delims {
		s = Replace(s, d, canonical)
	}
	return Split(markBoundaries(s), canonical)
}

// SplitWords splits input into words on the default delimiters and on
// uppercase runes.
func SplitWords(input string) []string {
	return New().Split(input)
}

// markBoundaries writes the canonical separator before every uppercase
// rune and lowercases the result.
func markBoundaries(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteString(canonical)
		}
		b.WriteRune(r)
	}
	return cases.Lower(language.Und).String(b.String())
}

// Split splits s on sep.
//
// The empty string yields no parts and a single trailing empty part is
// dropped; leading and interior empty parts are kept:
//
//	Split("a__b", "_") // ["a", "", "b"]
//	Split("_b", "_")   // ["", "b"]
//	Split("a_", "_")   // ["a"]
//
// An empty sep returns s as the only part.
func Split(s, sep string) []string {
	if s == "" {
		return []string{}
	}
	if sep == "" {
		return []string{s}
	}
	parts := strings.Split(s, sep)
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Replace replaces every occurrence of old in s with replacement. An empty
// old leaves s unchanged.
func Replace(s, old, replacement string) string {
	if old == "" {
		return s
	}
	return strings.ReplaceAll(s, old, replacement)
}
