// Package filter tracks which countries are eligible for display.
package filter

import "github.com/dbmrq/bubblechart/internal/dataset"

// Selection is the set of selected countries over a fixed list of known
// countries. Unknown countries can never be selected.
type Selection struct {
	countries []string
	selected  map[string]bool
}

// New returns a Selection over countries with every country selected.
func New(countries []string) *Selection {
	s := &Selection{
		selected: make(map[string]bool, len(countries)),
	}
	for _, c := range countries {
		if _, dup := s.selected[c]; dup {
			continue
		}
		s.countries = append(s.countries, c)
		s.selected[c] = true
	}
	return s
}

// Toggle selects or deselects country. It reports whether the selection
// changed; unknown countries are ignored.
func (s *Selection) Toggle(country string, selected bool) bool {
	cur, known := s.selected[country]
	if !known || cur == selected {
		return false
	}
	s.selected[country] = selected
	return true
}

// IsSelected reports whether country is selected.
func (s *Selection) IsSelected(country string) bool {
	return s.selected[country]
}

// IsVisible reports whether rec's country is selected.
func (s *Selection) IsVisible(rec dataset.Record) bool {
	return s.selected[rec.Country]
}

// Apply returns the records whose country is selected, keeping order.
func (s *Selection) Apply(recs []dataset.Record) []dataset.Record {
	var out []dataset.Record
	for _, r := range recs {
		if s.IsVisible(r) {
			out = append(out, r)
		}
	}
	return out
}

// SelectAll selects every country and reports whether anything changed.
func (s *Selection) SelectAll() bool {
	return s.setAll(true)
}

// SelectNone deselects every country and reports whether anything changed.
func (s *Selection) SelectNone() bool {
	return s.setAll(false)
}

func (s *Selection) setAll(v bool) bool {
	changed := false
	for _, c := range s.countries {
		if s.selected[c] != v {
			s.selected[c] = v
			changed = true
		}
	}
	return changed
}

// Countries returns the known countries in their original order.
func (s *Selection) Countries() []string {
	return append([]string(nil), s.countries...)
}

// Selected returns the selected countries in their original order.
func (s *Selection) Selected() []string {
	var out []string
	for _, c := range s.countries {
		if s.selected[c] {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of known countries.
func (s *Selection) Len() int {
	return len(s.countries)
}

// SelectedCount returns the number of selected countries.
func (s *Selection) SelectedCount() int {
	n := 0
	for _, v := range s.selected {
		if v {
			n++
		}
	}
	return n
}
