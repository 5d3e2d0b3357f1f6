// Package shapekit provides runtime transformations over plain data and
// identifier strings.
//
// shapekit is split into small packages that can be used independently:
//
//   - keypath: enumerate and resolve dot-separated key paths in nested maps
//   - merge: shallow and deep (broadcast) override and inject of maps
//   - words: split strings into words on delimiters and case boundaries
//   - casing: join words into PascalCase, camelCase, snake_case, kebab-case
//   - params: extract named placeholders from a template string
//   - shapeerrors: structured error types for errors.Is / errors.As
//
// All operations are pure: they never mutate their arguments and keep no
// state between calls, so they are safe for concurrent use.
//
// # Installation
//
//	go get github.com/erraggy/shapekit
//
// # Quick Start
//
// Enumerate and resolve paths:
//
//	doc := map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}}
//
//	paths := keypath.EnumeratePaths(doc, keypath.DefaultMaxDepth)
//	// ["a", "a.b", "a.b.c"]
//
//	v, err := keypath.Resolve(doc, "a.b.c")
//	if errors.Is(err, shapeerrors.ErrPathNotFound) {
//		// handle missing path
//	}
//
// Deep override (the same patch is applied at every depth):
//
//	merged := merge.DeepOverride(base, map[string]any{"enabled": false})
//
// Convert identifiers:
//
//	casing.Convert("fooBar", casing.Snake)      // "foo_bar"
//	casing.ToKebabCase(words.SplitWords("foo bar_baz")) // "foo-bar-baz"
//
// Extract template placeholders:
//
//	p := params.Parametrize("{{foo}} bar {{baz}}", "{{", "}}")
//	p.Names() // ["baz", "foo"]
//
// # Depth Bound
//
// Path enumeration and deep merging are bounded by [keypath.DefaultMaxDepth]
// and [merge.DefaultMaxDepth] (both 10). Structures deeper than the bound are
// truncated silently: enumeration stops emitting paths and merging leaves
// deeper values untouched. Both bounds can be changed per call.
//
// # Logging
//
// The engines accept a [Logger]. The default is [NopLogger]; wrap a
// *slog.Logger with [NewSlogAdapter] to see depth truncation at debug level.
//
// # Command Line
//
// The cmd/shapekit binary exposes every operation for use in shell
// pipelines, and "shapekit mcp" serves the same operations as MCP tools.
package shapekit
