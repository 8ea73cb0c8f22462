// Package errors provides a lightweight structured error type (ForgeError)
// for category-based classification across the resolver, stager, and CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a smithyforge error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Build output and staging errors
	CategoryProjection ErrorCategory = "projection"
	CategoryFileSystem ErrorCategory = "filesystem"

	// External tool integration errors
	CategoryTool ErrorCategory = "tool"

	// Runtime and infrastructure errors
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// ForgeError is a structured error with category, severity, and context.
// Errors at this layer are deterministic: retrying without a configuration
// change reproduces the same failure, so there is no retryable flag.
type ForgeError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for ForgeError
type ContextFields map[string]any

// Error implements the error interface
func (e *ForgeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *ForgeError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *ForgeError) WithContext(key string, value any) *ForgeError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new ForgeError
func New(category ErrorCategory, severity ErrorSeverity, message string) *ForgeError {
	return &ForgeError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new ForgeError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *ForgeError {
	return &ForgeError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if fe, ok := err.(*ForgeError); ok {
		return fe.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a ForgeError
func GetCategory(err error) ErrorCategory {
	if fe, ok := err.(*ForgeError); ok {
		return fe.Category
	}
	return CategoryInternal
}
