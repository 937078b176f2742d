// Package domain defines domain-specific errors.
// These errors represent document pipeline failures and are independent of infrastructure.
package domain

import (
	"errors"
	"fmt"
)

// Common errors that services and adapters can return.
var (
	// ErrDocumentNotFound is returned when no file exists at a resolved path.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrDocumentUnreadable is returned when a document exists but cannot be read.
	ErrDocumentUnreadable = errors.New("document unreadable")

	// ErrConversionFailed is returned when Markdown cannot be converted to HTML.
	ErrConversionFailed = errors.New("markdown conversion failed")

	// ErrInvalidBaseDir is returned when the document base directory is unusable.
	ErrInvalidBaseDir = errors.New("invalid base directory")
)

// DocumentError represents a failure while loading or rendering a document.
// The render pipeline turns these into visible content rather than returning them.
type DocumentError struct {
	Op      string // Operation that failed (e.g., "read", "convert")
	Path    string // Absolute document path
	Message string // Error message
	Err     error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("document %s failed for '%s': %s: %v", e.Op, e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("document %s failed for '%s': %s", e.Op, e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *DocumentError) Unwrap() error {
	return e.Err
}

// NewDocumentError creates a new DocumentError.
func NewDocumentError(op, path, message string, err error) *DocumentError {
	return &DocumentError{
		Op:      op,
		Path:    path,
		Message: message,
		Err:     err,
	}
}

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string      // Field that failed validation
	Value   interface{} // Value that failed validation
	Message string      // Error message
	Err     error       // Sentinel this validation failure maps to (if any)
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s (value: %v)", e.Field, e.Message, e.Value)
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// ConfigError represents a failure to load application configuration.
type ConfigError struct {
	Path    string // Config file path
	Message string // Error message
	Err     error  // Underlying error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config '%s': %s: %v", e.Path, e.Message, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(path, message string, err error) *ConfigError {
	return &ConfigError{
		Path:    path,
		Message: message,
		Err:     err,
	}
}
