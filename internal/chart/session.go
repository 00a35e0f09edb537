package chart

import (
	"context"
	"slices"
	"time"

	"github.com/dbmrq/bubblechart/internal/config"
	"github.com/dbmrq/bubblechart/internal/dataset"
	"github.com/dbmrq/bubblechart/internal/filter"
	"github.com/dbmrq/bubblechart/internal/logging"
	"github.com/dbmrq/bubblechart/internal/numfmt"
	"github.com/dbmrq/bubblechart/internal/scale"
)

// Session is one viewing of a dataset: the scales, the country selection,
// the renderer and the tooltip, plus the year on display. Every command
// re-renders synchronously.
type Session struct {
	id       string
	dataset  *dataset.Dataset
	scales   scale.Set
	sel      *filter.Selection
	renderer *Renderer
	tooltip  *Tooltip
	format   *numfmt.Formatter
	logger   *logging.Logger

	year     int
	minYear  int
	maxYear  int
	hasRange bool
	started  bool
}

// SessionOption customises a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used for session events.
func WithLogger(l *logging.Logger) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) SessionOption {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession builds scales for ds and prepares an empty scene.
func NewSession(ds *dataset.Dataset, cfg *config.Config, opts ...SessionOption) *Session {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	scales := scale.Build(ds, cfg.Chart)
	format := numfmt.New(cfg.Language())

	s := &Session{
		id:       logging.NewSessionID(),
		dataset:  ds,
		scales:   scales,
		sel:      filter.New(ds.Countries()),
		renderer: NewRenderer(scales, OptionsFromConfig(cfg.Animation)),
		tooltip:  NewTooltip(float64(cfg.Tooltip.OffsetX), float64(cfg.Tooltip.OffsetY), format),
		format:   format,
		logger:   logging.Global(),
	}
	s.minYear, s.maxYear, s.hasRange = ds.YearRange()
	s.year = s.minYear
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithContext(logging.WithSessionID(context.Background(), s.id))

	if scales.Fallback {
		s.logger.Warn("dataset is empty, using fallback scale domains")
	}
	return s
}

// Start renders year, or the first year when year is out of range.
func (s *Session) Start(year int, now time.Time) Diff {
	s.started = true
	if !s.InRange(year) {
		year = s.minYear
	}
	s.logger.Info("session started",
		"year", year,
		"records", s.dataset.Len(),
		"countries", s.sel.Len())
	return s.render(year, now)
}

// OnYearChanged shows year. Years outside the dataset's range are clamped;
// a year inside the range without data renders an empty frame.
func (s *Session) OnYearChanged(year int, now time.Time) Diff {
	year = s.clamp(year)
	s.logger.Debug("year changed", "year", year)
	return s.render(year, now)
}

// OnFilterToggled selects or deselects country and re-renders the current year.
func (s *Session) OnFilterToggled(country string, selected bool, now time.Time) Diff {
	if !s.sel.Toggle(country, selected) {
		s.logger.Debug("filter toggle ignored", "country", country, "selected", selected)
	} else {
		s.logger.Debug("filter toggled", "country", country, "selected", selected)
	}
	return s.render(s.year, now)
}

// OnSelectAll selects every country and re-renders once.
func (s *Session) OnSelectAll(now time.Time) Diff {
	s.sel.SelectAll()
	return s.render(s.year, now)
}

// OnSelectNone deselects every country and re-renders once.
func (s *Session) OnSelectNone(now time.Time) Diff {
	s.sel.SelectNone()
	return s.render(s.year, now)
}

// PointerEnter shows the tooltip for the bubble key. It reports false when
// no live bubble has that key or the bubble is exiting.
func (s *Session) PointerEnter(key string, px, py float64, now time.Time) bool {
	if s.renderer.State(key, now) == Exiting {
		return false
	}
	rec, ok := s.renderer.Record(key, now)
	if !ok {
		return false
	}
	s.tooltip.Enter(rec, px, py)
	return true
}

// PointerMove moves the tooltip with the pointer.
func (s *Session) PointerMove(px, py float64) {
	s.tooltip.Move(px, py)
}

// PointerLeave hides the tooltip.
func (s *Session) PointerLeave() {
	s.tooltip.Leave()
}

// Visible returns the records of year that pass the filter.
func (s *Session) Visible(year int) []dataset.Record {
	return s.sel.Apply(s.dataset.ForYear(year))
}

// Frame returns the scene at now.
func (s *Session) Frame(now time.Time) Frame {
	return s.renderer.Frame(now)
}

// Advance settles finished transitions and hides the tooltip of a bubble
// that was removed.
func (s *Session) Advance(now time.Time) {
	removed := s.renderer.Advance(now)
	if s.tooltip.Visible() && slices.Contains(removed, s.tooltip.Key()) {
		s.tooltip.Leave()
	}
}

// Animating reports whether a transition is running at now.
func (s *Session) Animating(now time.Time) bool {
	return s.renderer.Animating(now)
}

// InRange reports whether year lies within the dataset's years.
func (s *Session) InRange(year int) bool {
	return s.hasRange && year >= s.minYear && year <= s.maxYear
}

// YearRange returns the slider bounds. ok is false for an empty dataset.
func (s *Session) YearRange() (lo, hi int, ok bool) {
	return s.minYear, s.maxYear, s.hasRange
}

// Year returns the year on display.
func (s *Session) Year() int {
	return s.year
}

// Started reports whether Start has been called.
func (s *Session) Started() bool {
	return s.started
}

// ID returns the session id attached to log lines.
func (s *Session) ID() string {
	return s.id
}

// Dataset returns the session's dataset.
func (s *Session) Dataset() *dataset.Dataset {
	return s.dataset
}

// Scales returns the session's scales.
func (s *Session) Scales() scale.Set {
	return s.scales
}

// Selection returns the country selection.
func (s *Session) Selection() *filter.Selection {
	return s.sel
}

// Tooltip returns the tooltip.
func (s *Session) Tooltip() *Tooltip {
	return s.tooltip
}

// Format returns the number formatter for the session's locale.
func (s *Session) Format() *numfmt.Formatter {
	return s.format
}

func (s *Session) clamp(year int) int {
	if !s.hasRange {
		return year
	}
	if year < s.minYear {
		return s.minYear
	}
	if year > s.maxYear {
		return s.maxYear
	}
	return year
}

func (s *Session) render(year int, now time.Time) Diff {
	s.year = year
	visible := s.Visible(year)
	diff := s.renderer.Render(year, visible, now)

	for _, rec := range visible {
		s.tooltip.Refresh(rec)
	}
	for _, key := range diff.Exited {
		if key == s.tooltip.Key() {
			s.tooltip.Leave()
		}
	}

	if len(diff.Revived) > 0 {
		s.logger.Debug("exiting bubbles revived", "year", year, "keys", diff.Revived)
	}
	s.logger.Debug("rendered",
		"year", year,
		"visible", len(visible),
		"entered", len(diff.Entered),
		"updated", len(diff.Updated),
		"exited", len(diff.Exited))
	return diff
}
