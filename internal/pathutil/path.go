package pathutil

import "strings"

// Separator joins key path segments.
const Separator = '.'

// Split splits a dotted path into its segments. An empty path yields a
// single empty segment, matching strings.Split.
func Split(path string) []string {
	return strings.Split(path, string(Separator))
}

// Join joins segments with Separator.
func Join(segments ...string) string {
	return strings.Join(segments, string(Separator))
}

// FirstEmpty returns the index of the first empty segment, or -1.
func FirstEmpty(segments []string) int {
	for i, s := range segments {
		if s == "" {
			return i
		}
	}
	return -1
}
