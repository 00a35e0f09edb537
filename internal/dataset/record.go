// Package dataset loads country-year observations from CSV and indexes them by year.
package dataset

import (
	"sort"
)

// Column names expected in the CSV header.
const (
	ColCountry        = "country"
	ColYear           = "year"
	ColGNIPerCapita   = "gni_per_capita"
	ColLifeExpectancy = "life_expectancy"
	ColPopulation     = "population"
)

// RequiredColumns lists the header columns every dataset must carry.
var RequiredColumns = []string{
	ColCountry,
	ColYear,
	ColGNIPerCapita,
	ColLifeExpectancy,
	ColPopulation,
}

// Record is one country-year observation.
type Record struct {
	Country        string  `json:"country"`
	Year           int     `json:"year"`
	GNIPerCapita   float64 `json:"gni_per_capita"`
	LifeExpectancy float64 `json:"life_expectancy"`
	Population     float64 `json:"population"`
}

// Dataset is the immutable set of records loaded for a session.
type Dataset struct {
	records   []Record
	byYear    map[int][]Record
	countries []string
	years     []int
}

// New builds a Dataset from records, keeping their order.
func New(records []Record) *Dataset {
	ds := &Dataset{
		records: make([]Record, len(records)),
		byYear:  make(map[int][]Record),
	}
	copy(ds.records, records)

	seen := make(map[string]bool)
	for _, r := range ds.records {
		if _, ok := ds.byYear[r.Year]; !ok {
			ds.years = append(ds.years, r.Year)
		}
		ds.byYear[r.Year] = append(ds.byYear[r.Year], r)
		if !seen[r.Country] {
			seen[r.Country] = true
			ds.countries = append(ds.countries, r.Country)
		}
	}
	sort.Ints(ds.years)

	return ds
}

// Records returns all records in load order.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Empty reports whether the dataset has no records.
func (d *Dataset) Empty() bool {
	return len(d.records) == 0
}

// ForYear returns the records of year in load order, or nil when the year has no data.
func (d *Dataset) ForYear(year int) []Record {
	recs := d.byYear[year]
	if len(recs) == 0 {
		return nil
	}
	out := make([]Record, len(recs))
	copy(out, recs)
	return out
}

// HasYear reports whether any record belongs to year.
func (d *Dataset) HasYear(year int) bool {
	return len(d.byYear[year]) > 0
}

// Countries returns the distinct country names in first-seen order.
func (d *Dataset) Countries() []string {
	out := make([]string, len(d.countries))
	copy(out, d.countries)
	return out
}

// Years returns the distinct years in ascending order.
func (d *Dataset) Years() []int {
	out := make([]int, len(d.years))
	copy(out, d.years)
	return out
}

// YearRange returns the first and last year. ok is false for an empty dataset.
func (d *Dataset) YearRange() (lo, hi int, ok bool) {
	if len(d.years) == 0 {
		return 0, 0, false
	}
	return d.years[0], d.years[len(d.years)-1], true
}

// MaxGNI returns the largest GNI per capita, or 0 for an empty dataset.
func (d *Dataset) MaxGNI() float64 {
	return d.max(func(r Record) float64 { return r.GNIPerCapita })
}

// MaxLifeExpectancy returns the largest life expectancy, or 0 for an empty dataset.
func (d *Dataset) MaxLifeExpectancy() float64 {
	return d.max(func(r Record) float64 { return r.LifeExpectancy })
}

// MaxPopulation returns the largest population, or 0 for an empty dataset.
func (d *Dataset) MaxPopulation() float64 {
	return d.max(func(r Record) float64 { return r.Population })
}

func (d *Dataset) max(field func(Record) float64) float64 {
	if len(d.records) == 0 {
		return 0
	}
	m := field(d.records[0])
	for _, r := range d.records[1:] {
		if v := field(r); v > m {
			m = v
		}
	}
	return m
}
