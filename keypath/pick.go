package keypath

import (
	"github.com/erraggy/shapekit/internal/plain"
)

// Pick builds a new object holding only the values at paths, nested the
// same way they are in root. Values are deep copies. The first path that
// does not resolve aborts with its *shapeerrors.PathNotFoundError.
//
//	doc := map[string]any{"a": map[string]any{"b": 1, "c": 2}, "d": 3}
//	keypath.Pick(doc, "a.b", "d") // {"a": {"b": 1}, "d": 3}
func Pick(root any, paths ...string) (map[string]any, error) {
	out := map[string]any{}
	for _, raw := range paths {
		p, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		v, err := p.Resolve(root)
		if err != nil {
			return nil, err
		}
		place(out, p.segments, plain.Copy(v))
	}
	return out, nil
}

// place stores v at segments inside dst, creating intermediate objects.
func place(dst map[string]any, segments []string, v any) {
	cur := dst
	for _, seg := range segments[:len(segments)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[seg] = next
		}
		cur = next
	}
	cur[segments[len(segments)-1]] = v
}
