package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/shapekit/merge"
)

type deepMergeInput struct {
	Base     docInput `json:"base"                jsonschema:"The document to merge into"`
	Patch    docInput `json:"patch"               jsonschema:"The object applied at every nesting level of base"`
	MaxDepth *int     `json:"max_depth,omitempty" jsonschema:"Number of object levels to process (default: SHAPEKIT_MAX_DEPTH)"`
}

type deepMergeOutput struct {
	Result map[string]any `json:"result"`
}

func handleDeepOverride(_ context.Context, _ *mcp.CallToolRequest, input deepMergeInput) (*mcp.CallToolResult, deepMergeOutput, error) {
	return runDeepMerge("deep_override", input, (*merge.Merger).DeepOverride)
}

func handleDeepInject(_ context.Context, _ *mcp.CallToolRequest, input deepMergeInput) (*mcp.CallToolResult, deepMergeOutput, error) {
	return runDeepMerge("deep_inject", input, (*merge.Merger).DeepInject)
}

func runDeepMerge(
	tool string,
	input deepMergeInput,
	op func(*merge.Merger, map[string]any, map[string]any) map[string]any,
) (*mcp.CallToolResult, deepMergeOutput, error) {
	base, err := input.Base.resolve()
	if err != nil {
		return errResult(err), deepMergeOutput{}, nil
	}
	patch, err := input.Patch.resolve()
	if err != nil {
		return errResult(err), deepMergeOutput{}, nil
	}
	depth, err := depthOrDefault(input.MaxDepth)
	if err != nil {
		return errResult(err), deepMergeOutput{}, nil
	}

	m := &merge.Merger{MaxDepth: depth, Logger: toolLogger(tool)}
	return nil, deepMergeOutput{Result: op(m, base, patch)}, nil
}
