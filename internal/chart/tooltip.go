package chart

import (
	"github.com/dbmrq/bubblechart/internal/dataset"
	"github.com/dbmrq/bubblechart/internal/numfmt"
)

// Tooltip is the hover card for one bubble. Positions are in the same
// coordinate space as the pointer events that drive it.
type Tooltip struct {
	offsetX, offsetY float64
	format           *numfmt.Formatter

	visible bool
	key     string
	record  dataset.Record
	px, py  float64
}

// NewTooltip returns a hidden tooltip drawn at the pointer plus the offset.
func NewTooltip(offsetX, offsetY float64, format *numfmt.Formatter) *Tooltip {
	return &Tooltip{offsetX: offsetX, offsetY: offsetY, format: format}
}

// Enter shows the tooltip for rec at the pointer.
func (t *Tooltip) Enter(rec dataset.Record, px, py float64) {
	t.visible = true
	t.key = rec.Country
	t.record = rec
	t.px, t.py = px, py
}

// Move follows the pointer. It does nothing while hidden.
func (t *Tooltip) Move(px, py float64) {
	if !t.visible {
		return
	}
	t.px, t.py = px, py
}

// Leave hides the tooltip.
func (t *Tooltip) Leave() {
	t.visible = false
	t.key = ""
}

// Refresh replaces the record shown when it belongs to the hovered key.
func (t *Tooltip) Refresh(rec dataset.Record) {
	if t.visible && rec.Country == t.key {
		t.record = rec
	}
}

// Visible reports whether the tooltip is shown.
func (t *Tooltip) Visible() bool {
	return t.visible
}

// Key returns the hovered bubble key, or "" while hidden.
func (t *Tooltip) Key() string {
	return t.key
}

// Record returns the record being described.
func (t *Tooltip) Record() dataset.Record {
	return t.record
}

// Pointer returns the last pointer position.
func (t *Tooltip) Pointer() (x, y float64) {
	return t.px, t.py
}

// Position returns where the tooltip's top-left corner is drawn.
func (t *Tooltip) Position() (x, y float64) {
	return t.px + t.offsetX, t.py + t.offsetY
}

// Title returns the country name.
func (t *Tooltip) Title() string {
	return t.record.Country
}

// Lines returns the formatted figures below the title.
func (t *Tooltip) Lines() []string {
	return []string{
		"GNI: " + t.format.Dollars(t.record.GNIPerCapita),
		"Life Expectancy: " + t.format.Decimal(t.record.LifeExpectancy, 2),
		"Population: " + t.format.Integer(t.record.Population),
	}
}
