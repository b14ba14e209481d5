package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MisconfigurationError reports a controller set up with options that can
// never work, such as grid navigation without a column count. It is returned
// once at construction time and never from key handling.
type MisconfigurationError struct {
	Component string
	Option    string
	Message   string
}

// NewMisconfigurationError constructs a MisconfigurationError.
func NewMisconfigurationError(component, option, message string) error {
	return &MisconfigurationError{Component: component, Option: option, Message: message}
}

func (e *MisconfigurationError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Component != "" && e.Option != "":
		return fmt.Sprintf("misconfigured %s: %s: %s", e.Component, e.Option, e.Message)
	case e.Component != "":
		return fmt.Sprintf("misconfigured %s: %s", e.Component, e.Message)
	default:
		return fmt.Sprintf("misconfiguration: %s", e.Message)
	}
}
