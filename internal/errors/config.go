// Package errors provides error types for bubblechart.
// This file contains configuration-related errors.
package errors

import (
	"fmt"
	"strings"
)

// Configuration-related error constructors.

// ConfigNotFound creates an error for a missing configuration file that was
// requested explicitly.
func ConfigNotFound(configPath string) *ChartError {
	return &ChartError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("configuration file not found: %s", configPath),
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Create a configuration file:

  Option 1: Write the defaults
    bubblechart init

  Option 2: Run without one
    Omit --config and the built-in defaults are used.`,
	}
}

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *ChartError {
	return &ChartError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Durations need a unit, e.g. 500ms or 1s
  3. Colours are hex strings, e.g. "#4e79a7"`,
	}
}

// ConfigValidationError creates an error for an invalid value of field in the
// file at configPath.
func ConfigValidationError(field, configPath string, validOptions []string) *ChartError {
	suggestion := fmt.Sprintf("Fix the %q field in %s", field, configPath)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &ChartError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", configPath),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}
