package main

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"wrods", "words"},
		{"word", "words"},
		{"cas", "case"},
		{"snake2came", "snake2camel"},
		{"param", "params"},
		{"parms", "params"},
		{"path", "paths"},
		{"reslove", "resolve"},
		{"resolv", "resolve"},
		{"pik", "pick"},
		{"overide", "override"},
		{"injct", "inject"},
		{"mpc", "mcp"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyzzy", ""},
		{"foobarbaz", ""},
		{"overriding", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, suggestCommand(tt.input))
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"case", "case", 0},
		{"flaw", "lawn", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
		assert.Equal(t, tt.want, levenshtein(tt.b, tt.a), "%q vs %q", tt.b, tt.a)
	}
}

func TestKnownCommandsHaveHandlers(t *testing.T) {
	for name := range handlers {
		assert.True(t, slices.Contains(knownCommands, name), "handler %q missing from knownCommands", name)
	}
	assert.Len(t, knownCommands, len(handlers)+2) // version, help
}
