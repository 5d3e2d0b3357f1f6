// Package words splits strings into lowercase words.
//
// A word boundary is any configured delimiter (space, hyphen and
// underscore by default) and every uppercase rune:
//
//	words.SplitWords("foo bar_baz") // ["foo", "bar", "baz"]
//	words.SplitWords("fooBar")      // ["foo", "bar"]
//
// Each uppercase rune starts its own word, so acronyms are not grouped and
// a leading uppercase rune produces a leading empty word:
//
//	words.SplitWords("HTTPServer")  // ["", "h", "t", "t", "p", "server"]
//
// Consecutive delimiters produce empty words, which are kept so that joins
// in the casing package stay consistent. A single trailing empty word is
// dropped, and the empty string has no words at all.
//
// The underscore is the canonical separator and always splits words,
// whatever delimiters a [Tokenizer] is configured with.
package words
