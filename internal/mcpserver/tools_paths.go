package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/shapekit/internal/plain"
	"github.com/erraggy/shapekit/keypath"
)

type enumeratePathsInput struct {
	Doc      docInput `json:"doc"                 jsonschema:"The JSON or YAML document"`
	MaxDepth *int     `json:"max_depth,omitempty" jsonschema:"Number of object levels to descend (default: SHAPEKIT_MAX_DEPTH)"`
	LeafOnly *bool    `json:"leaf_only,omitempty" jsonschema:"Only list terminal paths (default: SHAPEKIT_LEAF_ONLY)"`
}

type enumeratePathsOutput struct {
	Paths    []string `json:"paths"`
	Count    int      `json:"count"`
	MaxDepth int      `json:"max_depth"`
	LeafOnly bool     `json:"leaf_only"`
}

func handleEnumeratePaths(_ context.Context, _ *mcp.CallToolRequest, input enumeratePathsInput) (*mcp.CallToolResult, enumeratePathsOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), enumeratePathsOutput{}, nil
	}
	depth, err := depthOrDefault(input.MaxDepth)
	if err != nil {
		return errResult(err), enumeratePathsOutput{}, nil
	}
	leafOnly := cfg.LeafOnly
	if input.LeafOnly != nil {
		leafOnly = *input.LeafOnly
	}

	e := keypath.Enumerator{
		MaxDepth: depth,
		LeafOnly: leafOnly,
		Logger:   toolLogger("enumerate_paths"),
	}
	paths := e.Enumerate(doc)
	return nil, enumeratePathsOutput{
		Paths:    paths,
		Count:    len(paths),
		MaxDepth: depth,
		LeafOnly: leafOnly,
	}, nil
}

type resolvePathInput struct {
	Doc  docInput `json:"doc"  jsonschema:"The JSON or YAML document"`
	Path string   `json:"path" jsonschema:"Dot-separated key path, e.g. server.tls.enabled"`
}

type resolvePathOutput struct {
	Path  string `json:"path"`
	Kind  string `json:"kind"`
	Value any    `json:"value"`
}

func handleResolvePath(_ context.Context, _ *mcp.CallToolRequest, input resolvePathInput) (*mcp.CallToolResult, resolvePathOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), resolvePathOutput{}, nil
	}
	v, err := keypath.Resolve(doc, input.Path)
	if err != nil {
		return errResult(err), resolvePathOutput{}, nil
	}
	return nil, resolvePathOutput{
		Path:  input.Path,
		Kind:  plain.Classify(v).String(),
		Value: v,
	}, nil
}
