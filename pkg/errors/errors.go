package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrNotImplemented marks toolbar actions that exist only as placeholders.
var ErrNotImplemented = stdErrors.New("not implemented")

// NotFoundError reports a lookup of an unknown catalog kind, template or screen.
type NotFoundError struct {
	Resource string
	Name     string
}

// NewNotFoundError constructs a NotFoundError for the given resource type.
func NewNotFoundError(resource, name string) error {
	return &NotFoundError{Resource: resource, Name: name}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	if e.Resource == "" {
		return fmt.Sprintf("%q not found", e.Name)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return stdErrors.As(err, &target)
}

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

// ValidationError captures configuration, template and build validation issues.
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

// BuildError wraps a failure of the placeholder build for one platform.
type BuildError struct {
	Platform string
	Err      error
}

// NewBuildError constructs a BuildError.
func NewBuildError(platform string, err error) error {
	return &BuildError{Platform: platform, Err: err}
}

func (e *BuildError) Error() string {
	if e == nil {
		return ""
	}
	if e.Platform != "" {
		return fmt.Sprintf("build error [%s]: %v", e.Platform, e.Err)
	}
	return fmt.Sprintf("build error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *BuildError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
