package shapeerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrPathNotFound indicates a key path could not be resolved.
	ErrPathNotFound = errors.New("path not found")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrParse indicates a data document could not be decoded.
	ErrParse = errors.New("parse error")
)

// Reasons reported by PathNotFoundError.
const (
	ReasonMissingKey   = "missing key"
	ReasonNotObject    = "not an object"
	ReasonEmptySegment = "empty segment"
)

// PathNotFoundError reports a failed path resolution.
type PathNotFoundError struct {
	// Path is the full dot-separated path being resolved
	Path string
	// Segment is the segment at which resolution stopped
	Segment string
	// Index is the zero-based position of Segment within Path
	Index int
	// Reason is one of the Reason* constants
	Reason string
}

// Error returns a human-readable error message.
func (e *PathNotFoundError) Error() string {
	msg := "path not found"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Reason != "" {
		msg += fmt.Sprintf(" at segment %q (index %d): %s", e.Segment, e.Index, e.Reason)
	}
	return msg
}

// Unwrap returns nil as PathNotFoundError has no underlying cause.
func (e *PathNotFoundError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// ConfigError represents an invalid configuration or input option.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ParseError represents a failure to decode a YAML or JSON data document.
type ParseError struct {
	// Source is the file path or source identifier ("-" for stdin)
	Source string
	// Message describes the failure
	Message string
	// Cause is the underlying decoder error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
