// Package options provides shared option validation across packages.
package options

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/erraggy/shapekit/shapeerrors"
)

// ValidateDepth rejects negative recursion bounds. Zero is allowed and
// means "do not recurse".
func ValidateDepth(option string, depth int) error {
	if err := validation.Validate(depth, validation.Min(0)); err != nil {
		return &shapeerrors.ConfigError{Option: option, Value: depth, Cause: err}
	}
	return nil
}

// ValidateMarkers requires a non-empty placeholder delimiter pair.
func ValidateMarkers(open, close string) error {
	errs := validation.Errors{
		"open":  validation.Validate(open, validation.Required),
		"close": validation.Validate(close, validation.Required),
	}.Filter()
	if errs != nil {
		return &shapeerrors.ConfigError{Option: "markers", Cause: errs}
	}
	return nil
}

// ValidateDelimiters requires at least one delimiter and no empty ones.
func ValidateDelimiters(delims []string) error {
	err := validation.Validate(delims,
		validation.Required,
		validation.Each(validation.Required),
	)
	if err != nil {
		return &shapeerrors.ConfigError{Option: "delimiters", Value: delims, Cause: err}
	}
	return nil
}

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return fmt.Errorf("%s", noSourceMsg)
	}
	if sourceCount > 1 {
		return fmt.Errorf("%s", multiSourceMsg)
	}

	return nil
}
