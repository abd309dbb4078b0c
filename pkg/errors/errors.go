package errors

import (
	"fmt"
)

// ParseError represents a settings file parsing failure with optional line metadata.
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

// ValidationError captures headline settings shape violations.
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

// StoreError reports a failed read or write against the local document store.
type StoreError struct {
	Key string
	Op  string
	Err error
}

// NewStoreError constructs a StoreError for the given key and operation.
func NewStoreError(key, op string, err error) error {
	return &StoreError{Key: key, Op: op, Err: err}
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("store error: %s %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("store error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the root error.
func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DeliveryError indicates an export artifact could not be handed to the
// hosting environment (clipboard or file download).
type DeliveryError struct {
	Format string
	Target string
	Err    error
}

// NewDeliveryError constructs a DeliveryError.
func NewDeliveryError(format, target string, err error) error {
	return &DeliveryError{Format: format, Target: target, Err: err}
}

func (e *DeliveryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Format != "" {
		return fmt.Sprintf("delivery error [%s -> %s]: %v", e.Format, e.Target, e.Err)
	}
	return fmt.Sprintf("delivery error [%s]: %v", e.Target, e.Err)
}

// Unwrap exposes the underlying error.
func (e *DeliveryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
