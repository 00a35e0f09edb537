package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	charterrors "github.com/dbmrq/bubblechart/internal/errors"
	"github.com/dbmrq/bubblechart/internal/logging"
)

// RowError describes one CSV row that was skipped.
type RowError struct {
	Line   int    `json:"line"`
	Column string `json:"column,omitempty"`
	Value  string `json:"value,omitempty"`
	Reason string `json:"reason"`
}

func (e RowError) String() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("line %d: %s %q: %s", e.Line, e.Column, e.Value, e.Reason)
}

// Report summarises a parse: how many rows were read and which were skipped.
type Report struct {
	Source  string     `json:"source,omitempty"`
	Rows    int        `json:"rows"`
	Loaded  int        `json:"loaded"`
	Skipped []RowError `json:"skipped,omitempty"`
}

// SkippedCount returns the number of rows that did not become records.
func (r *Report) SkippedCount() int {
	if r == nil {
		return 0
	}
	return len(r.Skipped)
}

// Log writes the summary at INFO and each skipped row at WARN.
func (r *Report) Log(l *logging.Logger) {
	if r == nil {
		return
	}
	for _, e := range r.Skipped {
		l.Warn("row skipped",
			"source", r.Source,
			"line", e.Line,
			"column", e.Column,
			"value", e.Value,
			"reason", e.Reason)
	}
	l.Info("dataset loaded",
		"source", r.Source,
		"rows", r.Rows,
		"loaded", r.Loaded,
		"skipped", len(r.Skipped))
}

// Load reads and parses the CSV file at path.
func Load(ctx context.Context, path string) (*Dataset, *Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, charterrors.DatasetNotFound(path)
		}
		return nil, nil, charterrors.DatasetUnreadable(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, charterrors.DatasetUnreadable(path, err)
	}
	if info.IsDir() {
		return nil, nil, charterrors.DatasetUnreadable(path, fmt.Errorf("%s is a directory", path))
	}

	ds, report, err := Parse(f)
	if report != nil {
		report.Source = path
	}
	if err != nil {
		var ce *charterrors.ChartError
		if errors.As(err, &ce) {
			return nil, report, ce.WithDetails("path", path)
		}
		return nil, report, charterrors.DatasetUnreadable(path, err)
	}
	return ds, report, nil
}

// Parse reads CSV from r. The header must name every required column, in any
// order; extra columns are ignored. Rows whose fields cannot be coerced are
// skipped and listed in the returned Report.
func Parse(r io.Reader) (*Dataset, *Report, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &Report{}, charterrors.DatasetHeaderInvalid(RequiredColumns)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	idx, missing := indexHeader(header)
	if len(missing) > 0 {
		return nil, &Report{}, charterrors.DatasetHeaderInvalid(missing)
	}

	report := &Report{}
	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				report.Rows++
				report.Skipped = append(report.Skipped, RowError{Line: pe.StartLine, Reason: pe.Err.Error()})
				continue
			}
			return nil, report, fmt.Errorf("failed to read CSV: %w", err)
		}
		if isBlank(row) {
			continue
		}
		report.Rows++
		line, _ := reader.FieldPos(0)

		if len(row) != len(header) {
			report.Skipped = append(report.Skipped, RowError{
				Line:   line,
				Reason: fmt.Sprintf("expected %d fields, got %d", len(header), len(row)),
			})
			continue
		}

		rec, rowErr := parseRow(row, idx)
		if rowErr != nil {
			rowErr.Line = line
			report.Skipped = append(report.Skipped, *rowErr)
			continue
		}
		records = append(records, rec)
	}

	report.Loaded = len(records)
	return New(records), report, nil
}

func indexHeader(header []string) (map[string]int, []string) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	return idx, missing
}

func parseRow(row []string, idx map[string]int) (Record, *RowError) {
	// Countries are bubble keys, so composed and decomposed spellings must collapse.
	country := norm.NFC.String(strings.TrimSpace(row[idx[ColCountry]]))
	if country == "" {
		return Record{}, &RowError{Column: ColCountry, Reason: "empty country"}
	}

	yearRaw := strings.TrimSpace(row[idx[ColYear]])
	year, err := strconv.Atoi(yearRaw)
	if err != nil {
		return Record{}, &RowError{Column: ColYear, Value: yearRaw, Reason: "not an integer"}
	}

	gni, rowErr := parseNumber(row, idx, ColGNIPerCapita, true)
	if rowErr != nil {
		return Record{}, rowErr
	}
	life, rowErr := parseNumber(row, idx, ColLifeExpectancy, false)
	if rowErr != nil {
		return Record{}, rowErr
	}
	pop, rowErr := parseNumber(row, idx, ColPopulation, true)
	if rowErr != nil {
		return Record{}, rowErr
	}

	return Record{
		Country:        country,
		Year:           year,
		GNIPerCapita:   gni,
		LifeExpectancy: life,
		Population:     pop,
	}, nil
}

func parseNumber(row []string, idx map[string]int, col string, nonNegative bool) (float64, *RowError) {
	raw := strings.TrimSpace(row[idx[col]])
	if raw == "" {
		return 0, &RowError{Column: col, Reason: "empty value"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &RowError{Column: col, Value: raw, Reason: "not a number"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &RowError{Column: col, Value: raw, Reason: "not a finite number"}
	}
	if nonNegative && v < 0 {
		return 0, &RowError{Column: col, Value: raw, Reason: "must not be negative"}
	}
	return v, nil
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
