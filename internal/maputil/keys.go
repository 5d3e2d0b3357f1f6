// Package maputil provides small helpers over string-keyed maps.
package maputil

import "slices"

// SortedKeys returns the keys of m in ascending order. A nil or empty map
// yields an empty, non-nil slice.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// KeysWhere returns the sorted keys of m whose value satisfies keep.
func KeysWhere[M ~map[string]V, V any](m M, keep func(V) bool) []string {
	keys := make([]string, 0, len(m))
	for k, v := range m {
		if keep(v) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}
