// Package errors provides error types with actionable suggestions for
// bubblechart. Errors carry contextual details so the user can tell a missing
// dataset from a malformed one at a glance.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrLoad indicates the dataset could not be read.
	ErrLoad = errors.New("load error")
	// ErrParse indicates the dataset could not be parsed.
	ErrParse = errors.New("parse error")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrExport indicates a snapshot could not be written.
	ErrExport = errors.New("export error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// ChartError is the base error type for bubblechart errors.
// It wraps an underlying error and provides additional context.
type ChartError struct {
	// Kind is the category of error (e.g., ErrLoad, ErrConfig).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, line number).
	Details map[string]string
}

// Error implements the error interface.
func (e *ChartError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *ChartError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error kind matches the target.
func (e *ChartError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestions.
func (e *ChartError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *ChartError) WithDetails(key, value string) *ChartError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *ChartError) WithCause(cause error) *ChartError {
	e.Cause = cause
	return e
}

// New creates a new ChartError with the given kind and message.
func New(kind error, message string) *ChartError {
	return &ChartError{
		Kind:    kind,
		Message: message,
	}
}

// FormatAny formats err with Format when it is a ChartError and falls back to
// the plain message otherwise.
func FormatAny(err error) string {
	if err == nil {
		return ""
	}
	var ce *ChartError
	if errors.As(err, &ce) {
		return ce.Format()
	}
	return "Error: " + err.Error() + "\n"
}
