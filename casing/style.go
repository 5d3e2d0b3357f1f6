package casing

import (
	"strings"

	"github.com/erraggy/shapekit/shapeerrors"
)

// Style is a case convention for joining words.
type Style int

const (
	// Pascal capitalizes every word and joins them without a separator.
	Pascal Style = iota
	// Camel is Pascal with the first letter lowercased.
	Camel
	// Snake lowercases every word and joins them with "_".
	Snake
	// Kebab lowercases every word and joins them with "-".
	Kebab
)

// String returns the style's own name written in that style.
func (s Style) String() string {
	switch s {
	case Pascal:
		return "PascalCase"
	case Camel:
		return "camelCase"
	case Snake:
		return "snake_case"
	case Kebab:
		return "kebab-case"
	default:
		return "unknown"
	}
}

// Styles returns every supported style.
func Styles() []Style {
	return []Style{Pascal, Camel, Snake, Kebab}
}

var styleNames = map[string]Style{
	"pascal":     Pascal,
	"pascalcase": Pascal,
	"camel":      Camel,
	"camelcase":  Camel,
	"snake":      Snake,
	"snake_case": Snake,
	"kebab":      Kebab,
	"kebab-case": Kebab,
}

// ParseStyle resolves a style name such as "snake", "snake_case" or
// "PascalCase". Matching is case-insensitive.
func ParseStyle(name string) (Style, error) {
	if s, ok := styleNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return 0, &shapeerrors.ConfigError{
		Option:  "style",
		Value:   name,
		Message: "valid styles: pascal, camel, snake, kebab",
	}
}
