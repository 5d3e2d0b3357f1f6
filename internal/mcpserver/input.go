package mcpserver

import (
	"fmt"

	"github.com/erraggy/shapekit/internal/docio"
	"github.com/erraggy/shapekit/internal/options"
)

// docInput represents the two ways a data document can be provided to a
// tool. Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON or YAML file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

// resolve decodes the document from whichever input was provided.
func (d docInput) resolve() (map[string]any, error) {
	if err := options.ValidateSingleInputSource(
		"exactly one of file or content must be provided (got none)",
		"exactly one of file or content must be provided (got both)",
		d.File != "", d.Content != "",
	); err != nil {
		return nil, err
	}

	if d.File != "" {
		return docio.ReadFile(d.File, nil)
	}

	if int64(len(d.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set SHAPEKIT_MAX_INLINE_SIZE to increase",
			len(d.Content), cfg.MaxInlineSize)
	}
	return docio.Decode("content", []byte(d.Content))
}

// depthOrDefault returns depth when set, otherwise cfg.MaxDepth. Negative
// depths are rejected.
func depthOrDefault(depth *int) (int, error) {
	if depth == nil {
		return cfg.MaxDepth, nil
	}
	if err := options.ValidateDepth("max_depth", *depth); err != nil {
		return 0, err
	}
	return *depth, nil
}
