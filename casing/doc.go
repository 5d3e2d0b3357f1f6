// Package casing joins word sequences into case styles and converts
// identifiers between styles.
//
// The joins operate on words as produced by the words package:
//
//	casing.ToPascalCase([]string{"foo", "bar"}) // "FooBar"
//	casing.ToCamelCase([]string{"foo", "bar"})  // "fooBar"
//	casing.ToSnakeCase([]string{"foo", "bar"})  // "foo_bar"
//	casing.ToKebabCase([]string{"foo", "bar"})  // "foo-bar"
//
// [Convert] splits an arbitrarily cased identifier with [SplitCaseToWords]
// and joins it in the target [Style]. Empty words contribute nothing to
// PascalCase and camelCase and still take their separator in snake_case and
// kebab-case, so a PascalCase input converts to snake_case with a leading
// underscore:
//
//	casing.Convert("fooBar", casing.Snake) // "foo_bar"
//	casing.Convert("FooBar", casing.Snake) // "_foo_bar"
package casing
