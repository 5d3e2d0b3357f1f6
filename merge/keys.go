package merge

import (
	"github.com/google/go-cmp/cmp"

	"github.com/erraggy/shapekit/internal/maputil"
	"github.com/erraggy/shapekit/internal/plain"
)

// Common returns the entries of a whose key is also in b with a deeply
// equal value.
func Common(a, b map[string]any) map[string]any {
	out := map[string]any{}
	for k, av := range a {
		bv, ok := b[k]
		if ok && cmp.Equal(av, bv) {
			out[k] = plain.Copy(av)
		}
	}
	return out
}

// Difference returns the entries of a whose key is not in b.
func Difference(a, b map[string]any) map[string]any {
	out := map[string]any{}
	for k, v := range a {
		if _, ok := b[k]; !ok {
			out[k] = plain.Copy(v)
		}
	}
	return out
}

// OmitNil returns a copy of obj without its nil-valued keys.
func OmitNil(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		if v != nil {
			out[k] = plain.Copy(v)
		}
	}
	return out
}

// NilKeys returns the sorted keys of obj whose value is nil.
func NilKeys(obj map[string]any) []string {
	return maputil.KeysWhere(obj, func(v any) bool { return v == nil })
}

// EnabledKeys returns the sorted names that end up true after overrides
// is injected over a set where every name in defaults is true.
//
//	EnabledKeys([]string{"a", "b"}, map[string]any{"b": false, "c": true})
//	// ["a", "c"]
func EnabledKeys(defaults []string, overrides map[string]any) []string {
	base := make(map[string]any, len(defaults))
	for _, name := range defaults {
		base[name] = true
	}
	return maputil.KeysWhere(Inject(base, overrides), func(v any) bool {
		enabled, ok := v.(bool)
		return ok && enabled
	})
}
