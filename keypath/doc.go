// Package keypath enumerates and resolves dot-separated key paths over
// nested plain data.
//
// Plain data is what encoding/json and YAML decoders produce: maps with
// string (or numeric) keys, slices, and scalars. Only maps are descended
// into; slices are opaque leaves, so a path never addresses a slice element.
//
// # Enumeration
//
// [EnumeratePaths] lists the path of every key, including the keys whose
// values are nested objects. [EnumerateLeafPaths] lists terminal paths only.
// Both stop descending after maxDepth levels without reporting an error:
//
//	doc := map[string]any{"a": map[string]any{"b": 1}}
//	keypath.EnumeratePaths(doc, 1)     // ["a"]
//	keypath.EnumeratePaths(doc, 10)    // ["a", "a.b"]
//	keypath.EnumerateLeafPaths(doc, 10) // ["a.b"]
//
// Results are sorted so that output is deterministic.
//
// # Resolution
//
// [Resolve] walks a path and returns a *shapeerrors.PathNotFoundError when a
// key is missing or an intermediate value is not an object:
//
//	v, err := keypath.Resolve(doc, "a.b")
//	if errors.Is(err, shapeerrors.ErrPathNotFound) {
//		...
//	}
//
// Resolution is not depth bounded.
package keypath
