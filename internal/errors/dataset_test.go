package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestDatasetNotFound(t *testing.T) {
	err := DatasetNotFound("data/bubble_data.csv")

	if !errors.Is(err, ErrLoad) {
		t.Error("DatasetNotFound should return ErrLoad")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("DatasetNotFound should also match ErrNotFound")
	}
	if err.Details["path"] != "data/bubble_data.csv" {
		t.Error("Should include path in details")
	}
	if !strings.Contains(err.Suggestion, "--data") {
		t.Error("Suggestion should mention the --data flag")
	}
	if got, want := err.Error(), "dataset data/bubble_data.csv: not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDatasetUnreadable(t *testing.T) {
	cause := errors.New("permission denied")
	err := DatasetUnreadable("secret.csv", cause)

	if !errors.Is(err, ErrLoad) {
		t.Error("DatasetUnreadable should return ErrLoad")
	}
	if !errors.Is(err, cause) {
		t.Error("DatasetUnreadable should wrap the cause")
	}
}

func TestDatasetHeaderInvalid(t *testing.T) {
	err := DatasetHeaderInvalid([]string{"year", "population"})

	if !errors.Is(err, ErrParse) {
		t.Error("DatasetHeaderInvalid should return ErrParse")
	}
	if !strings.Contains(err.Message, "year, population") {
		t.Errorf("Message should list missing columns, got %q", err.Message)
	}
	if !strings.Contains(err.Suggestion, "country,year,gni_per_capita") {
		t.Error("Suggestion should show the expected header")
	}
}

func TestDatasetEmpty(t *testing.T) {
	err := DatasetEmpty("empty.csv", 3)

	if !errors.Is(err, ErrParse) {
		t.Error("DatasetEmpty should return ErrParse")
	}
	if err.Details["skipped"] != "3" {
		t.Errorf("skipped detail = %q, want 3", err.Details["skipped"])
	}
}

func TestExportErrors(t *testing.T) {
	cause := errors.New("disk full")
	err := ExportFailed("out.svg", cause)
	if !errors.Is(err, ErrExport) || !errors.Is(err, cause) {
		t.Error("ExportFailed should be ErrExport and wrap the cause")
	}

	unsupported := UnsupportedExportFormat("out.gif", []string{".svg", ".png"})
	if !errors.Is(unsupported, ErrExport) {
		t.Error("UnsupportedExportFormat should return ErrExport")
	}
	if !strings.Contains(unsupported.Suggestion, ".svg, .png") {
		t.Error("Suggestion should list supported extensions")
	}
}
