// Package params extracts named placeholders from template strings.
//
// A template is split on single spaces into tokens. A token contributes a
// parameter when it contains the open marker followed later by the close
// marker; the name is the text strictly between the first open marker and
// the next close marker after it.
//
//	p := params.Parametrize("{{foo}} bar {{baz}}", "{{", "}}")
//	p.Names() // ["baz", "foo"]
//
// Markers are only recognized inside a single token, so a pair split by a
// space ("{{ foo }}") yields no parameter. Every value in the result is
// [Marker]; only the presence of a name is meaningful.
package params
