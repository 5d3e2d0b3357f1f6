// Package commands provides CLI command handlers for shapekit.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/shapekit"
	"github.com/erraggy/shapekit/internal/cliutil"
	"github.com/erraggy/shapekit/internal/docio"
)

// Output format constants
const (
	FormatText = docio.FormatText
	FormatJSON = docio.FormatJSON
	FormatYAML = docio.FormatYAML
	// FormatGo dumps values with Go type information (resolve only).
	FormatGo = "go"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = docio.StdinPath

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string, extra ...string) error {
	return docio.ValidateFormat(format, extra...)
}

// OutputStructured writes v to stdout in format.
func OutputStructured(v any, format string) error {
	if err := docio.Write(os.Stdout, v, format); err != nil {
		return fmt.Errorf("writing %s output: %w", format, err)
	}
	return nil
}

// ReadDocument decodes the JSON or YAML document at path; "-" reads stdin.
func ReadDocument(path string) (map[string]any, error) {
	return docio.ReadFile(path, os.Stdin)
}

// ParseList splits a comma-separated flag value. Empty entries are kept
// so that validation can reject them.
func ParseList(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

// NewLogger returns a debug logger on stderr when verbose is set, and a
// NopLogger otherwise.
func NewLogger(verbose bool) shapekit.Logger {
	if !verbose {
		return shapekit.NopLogger{}
	}
	return shapekit.NewSlogAdapter(cliutil.NewLogger(os.Stderr, true))
}
