// Package errors provides error types for bubblechart.
// This file contains snapshot export errors.
package errors

import (
	"fmt"
	"strings"
)

// ExportFailed creates an error for a snapshot that could not be written.
func ExportFailed(path string, cause error) *ChartError {
	return &ChartError{
		Kind:    ErrExport,
		Message: fmt.Sprintf("failed to export snapshot: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check that the output directory exists and is writable.",
	}
}

// UnsupportedExportFormat creates an error for an unknown output extension.
func UnsupportedExportFormat(path string, supported []string) *ChartError {
	return &ChartError{
		Kind:    ErrExport,
		Message: fmt.Sprintf("unsupported export format: %s", path),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: fmt.Sprintf("Use one of these extensions: %s", strings.Join(supported, ", ")),
	}
}
