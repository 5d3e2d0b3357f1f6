// Package docio reads and writes the plain-data documents consumed by the
// command line and MCP surfaces.
package docio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/asaskevich/govalidator"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/shapekit/internal/plain"
	"github.com/erraggy/shapekit/shapeerrors"
)

// StdinPath is the special source path that reads from stdin.
const StdinPath = "-"

// Output format names.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DetectFormat reports FormatJSON when data is a JSON document and
// FormatYAML otherwise. YAML is a superset of JSON, so either decoder
// accepts JSON input; the distinction only picks the stricter decoder.
func DetectFormat(data []byte) string {
	if govalidator.IsJSON(string(data)) {
		return FormatJSON
	}
	return FormatYAML
}

// Decode decodes data as a JSON or YAML object. Non-object roots and empty
// documents are rejected with a *shapeerrors.ParseError naming source.
func Decode(source string, data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &shapeerrors.ParseError{Source: source, Message: "empty document"}
	}

	var raw any
	format := DetectFormat(data)
	var err error
	if format == FormatJSON {
		err = json.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, &shapeerrors.ParseError{
			Source:  source,
			Message: "invalid " + format,
			Cause:   err,
		}
	}

	obj, ok := plain.AsObject(raw)
	if !ok {
		return nil, &shapeerrors.ParseError{
			Source:  source,
			Message: fmt.Sprintf("document root is %s, not an object", plain.Classify(raw)),
		}
	}
	// Normalizes nested YAML maps to map[string]any.
	return plain.CopyObject(obj), nil
}

// ReadFile decodes the document at path. StdinPath reads from stdin.
func ReadFile(path string, stdin io.Reader) (map[string]any, error) {
	var data []byte
	var err error
	if path == StdinPath {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return nil, fmt.Errorf("docio: reading %s: %w", DisplayName(path), err)
	}
	return Decode(DisplayName(path), data)
}

// DisplayName returns "<stdin>" for StdinPath and path otherwise.
func DisplayName(path string) string {
	if path == StdinPath {
		return "<stdin>"
	}
	return path
}

// ValidateFormat rejects unknown output formats. extra lists additional
// formats the caller accepts.
func ValidateFormat(format string, extra ...string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	for _, e := range extra {
		if format == e {
			return nil
		}
	}
	return &shapeerrors.ConfigError{
		Option:  "format",
		Value:   format,
		Message: fmt.Sprintf("valid formats: %s, %s, %s", FormatText, FormatJSON, FormatYAML),
	}
}

// Marshal encodes v as JSON (indented) or YAML.
func Marshal(v any, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("docio: marshaling to json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("docio: marshaling to yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("docio: invalid format for structured output: %s", format)
	}
}

// Write writes v to w in format. The text format prints string slices one
// per line, scalars with fmt, and everything else as YAML.
func Write(w io.Writer, v any, format string) error {
	if format == FormatText {
		return writeText(w, v)
	}
	data, err := Marshal(v, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeText(w io.Writer, v any) error {
	switch val := v.(type) {
	case []string:
		for _, s := range val {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
		return nil
	case nil:
		_, err := fmt.Fprintln(w, "null")
		return err
	}
	if plain.Classify(v) == plain.KindScalar {
		_, err := fmt.Fprintln(w, v)
		return err
	}
	return Write(w, v, FormatYAML)
}
