// Package errors provides error types for bubblechart.
// This file contains dataset loading errors.
package errors

import (
	"fmt"
	"strings"
)

// DatasetNotFound creates an error for a dataset path that does not exist.
// The ErrNotFound cause supplies the "not found" wording of Error.
func DatasetNotFound(path string) *ChartError {
	return &ChartError{
		Kind:    ErrLoad,
		Message: fmt.Sprintf("dataset %s", path),
		Cause:   ErrNotFound,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Point bubblechart at a CSV file:
    bubblechart --data ./bubble_data.csv

  Or set data.path in .bubblechart/config.yaml.`,
	}
}

// DatasetUnreadable creates an error for a dataset that exists but cannot be read.
func DatasetUnreadable(path string, cause error) *ChartError {
	return &ChartError{
		Kind:    ErrLoad,
		Message: fmt.Sprintf("failed to read dataset: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check the file permissions and that the path is a regular file.",
	}
}

// DatasetHeaderInvalid creates an error for a CSV header missing required columns.
func DatasetHeaderInvalid(missing []string) *ChartError {
	return &ChartError{
		Kind:    ErrParse,
		Message: fmt.Sprintf("dataset header is missing columns: %s", strings.Join(missing, ", ")),
		Details: map[string]string{
			"missing": strings.Join(missing, ","),
		},
		Suggestion: `The first line must name the columns:
    country,year,gni_per_capita,life_expectancy,population`,
	}
}

// DatasetEmpty creates an informational error when no usable rows were loaded.
func DatasetEmpty(path string, skipped int) *ChartError {
	return &ChartError{
		Kind:    ErrParse,
		Message: "dataset contains no usable rows",
		Details: map[string]string{
			"path":    path,
			"skipped": fmt.Sprintf("%d", skipped),
		},
		Suggestion: "Run 'bubblechart inspect' to list the rows that were skipped and why.",
	}
}
