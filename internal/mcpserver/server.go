// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes shapekit operations as MCP tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/shapekit"
)

const serverInstructions = `shapekit MCP server: splits and re-cases identifiers, extracts template placeholders, enumerates and resolves key paths in JSON/YAML documents, and deep-merges documents.

Configuration: defaults are configurable via SHAPEKIT_* environment variables set in your MCP client config.

Key settings:
- SHAPEKIT_MAX_DEPTH (default: 10): depth bound for enumerate_paths, deep_override and deep_inject
- SHAPEKIT_LEAF_ONLY (default: false): enumerate_paths returns terminal paths only
- SHAPEKIT_OPEN_MARKER / SHAPEKIT_CLOSE_MARKER (default: {{ and }}): parametrize markers
- SHAPEKIT_MAX_INLINE_SIZE (default: 10MiB): maximum inline document size

Deep merges broadcast: the same patch is applied to every nested object, not to the sub-object at the same path.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "shapekit", Version: shapekit.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "split_words",
		Description: "Split a string into lowercase words on delimiters (default: space, hyphen, underscore) and before every uppercase letter. Acronyms are not grouped: HTTPServer yields h, t, t, p, server after a leading empty word.",
	}, handleSplitWords)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_case",
		Description: "Convert an identifier to PascalCase, camelCase, snake_case or kebab-case. Use style=snake_to_camel for the direct snake_case to camelCase conversion that keeps the first word as-is.",
	}, handleConvertCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parametrize",
		Description: "Extract placeholder names from a space-separated template. A placeholder must sit inside one token between the open and close markers. Markers default to SHAPEKIT_OPEN_MARKER and SHAPEKIT_CLOSE_MARKER.",
	}, handleParametrize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "enumerate_paths",
		Description: "List the dot-separated key paths of a JSON or YAML document, sorted. Arrays are leaves. Use leaf_only to drop paths to nested objects. Paths deeper than max_depth (default SHAPEKIT_MAX_DEPTH) are silently omitted.",
	}, handleEnumeratePaths)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_path",
		Description: "Return the value at a dot-separated key path in a JSON or YAML document. Fails when a key is missing or an intermediate value is not an object. Arrays cannot be indexed.",
	}, handleResolvePath)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "deep_override",
		Description: "Apply patch to base and to every object nested in base, replacing only keys that already exist at each level. The same patch is applied at every depth (broadcast), down to max_depth levels.",
	}, handleDeepOverride)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "deep_inject",
		Description: "Like deep_override, but keys of patch missing from an object are added at every level.",
	}, handleDeepInject)
}

// toolLogger is handed to the engines so depth truncation shows up in the
// server's debug log.
func toolLogger(tool string) shapekit.Logger {
	return shapekit.NewSlogAdapter(slog.Default()).With("tool", tool)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
