// Package chart reconciles per-year data into keyed, animated bubbles.
package chart

import (
	"sort"
	"time"

	"github.com/dbmrq/bubblechart/internal/config"
	"github.com/dbmrq/bubblechart/internal/dataset"
	"github.com/dbmrq/bubblechart/internal/scale"
)

// Options configures transition timing.
type Options struct {
	// UpdateDuration is used for enter and update transitions.
	UpdateDuration time.Duration
	// ExitDuration is used for the shrink before removal.
	ExitDuration time.Duration
	// Ease is the timing function for every transition.
	Ease EaseFunc
}

// OptionsFromConfig converts animation settings into renderer options.
func OptionsFromConfig(cfg config.AnimationConfig) Options {
	return Options{
		UpdateDuration: cfg.Update,
		ExitDuration:   cfg.Exit,
		Ease:           Ease(cfg.Easing),
	}
}

// Diff lists the keys affected by one Render call, in draw order.
type Diff struct {
	Year    int
	Entered []string
	Updated []string
	Exited  []string
	// Revived are keys that were exiting and became visible again. They
	// also appear in Entered.
	Revived []string
}

// Empty reports whether the render changed no bubble.
func (d Diff) Empty() bool {
	return len(d.Entered) == 0 && len(d.Updated) == 0 && len(d.Exited) == 0
}

// BubbleView is a bubble's interpolated attributes at one instant.
type BubbleView struct {
	Key    string
	X      float64
	Y      float64
	R      float64
	Color  string
	State  State
	Record dataset.Record
}

// Frame is a snapshot of the scene: the year label and bubbles in draw order.
type Frame struct {
	Year     int
	HasLabel bool
	Bubbles  []BubbleView
}

// Renderer owns the keyed set of bubbles and their transitions.
type Renderer struct {
	scales  scale.Set
	opts    Options
	bubbles map[string]*bubble
	seq     int64
	year    int
	labeled bool
}

// NewRenderer returns a Renderer drawing with scales.
func NewRenderer(scales scale.Set, opts Options) *Renderer {
	if opts.Ease == nil {
		opts.Ease = CubicInOut
	}
	return &Renderer{
		scales:  scales,
		opts:    opts,
		bubbles: make(map[string]*bubble),
	}
}

// Render reconciles the bubbles against visible, the records to show for
// year. New keys enter, existing keys move to their new target, and keys
// missing from visible exit. Every target is taken from its current
// interpolated value at now.
func (r *Renderer) Render(year int, visible []dataset.Record, now time.Time) Diff {
	r.Advance(now)

	r.year = year
	r.labeled = true
	diff := Diff{Year: year}

	targets := make(map[string]bool, len(visible))
	for _, rec := range visible {
		key := rec.Country
		if targets[key] {
			continue
		}
		targets[key] = true

		to := r.target(rec)
		b, ok := r.bubbles[key]
		switch {
		case !ok:
			r.seq++
			r.bubbles[key] = &bubble{
				key:    key,
				seq:    r.seq,
				color:  r.scales.Color.Apply(key),
				record: rec,
				state:  Entering,
				tr:     r.transition(attrs{X: to.X, Y: to.Y, R: 0}, to, now, r.opts.UpdateDuration),
			}
			diff.Entered = append(diff.Entered, key)
		case b.state == Exiting:
			b.record = rec
			b.state = Entering
			b.tr = r.transition(b.tr.at(now), to, now, r.opts.UpdateDuration)
			diff.Entered = append(diff.Entered, key)
			diff.Revived = append(diff.Revived, key)
		default:
			b.record = rec
			b.state = Steady
			b.tr = r.transition(b.tr.at(now), to, now, r.opts.UpdateDuration)
			diff.Updated = append(diff.Updated, key)
		}
	}

	for _, b := range r.ordered() {
		if targets[b.key] || b.state == Exiting {
			continue
		}
		from := b.tr.at(now)
		b.state = Exiting
		b.tr = r.transition(from, attrs{X: from.X, Y: from.Y, R: 0}, now, r.opts.ExitDuration)
		diff.Exited = append(diff.Exited, b.key)
	}

	diff.Entered = r.sortByDrawOrder(diff.Entered)
	diff.Updated = r.sortByDrawOrder(diff.Updated)
	diff.Revived = r.sortByDrawOrder(diff.Revived)
	return diff
}

// Advance settles transitions that have finished by now: entering bubbles
// become steady and exited bubbles are removed. It returns the removed keys.
func (r *Renderer) Advance(now time.Time) []string {
	var removed []string
	for _, b := range r.ordered() {
		switch b.stateAt(now) {
		case Absent:
			delete(r.bubbles, b.key)
			removed = append(removed, b.key)
		case Steady:
			b.state = Steady
		}
	}
	return removed
}

// Frame returns the scene at now without changing renderer state.
func (r *Renderer) Frame(now time.Time) Frame {
	f := Frame{Year: r.year, HasLabel: r.labeled}
	for _, b := range r.ordered() {
		st := b.stateAt(now)
		if st == Absent {
			continue
		}
		a := b.tr.at(now)
		f.Bubbles = append(f.Bubbles, BubbleView{
			Key:    b.key,
			X:      a.X,
			Y:      a.Y,
			R:      a.R,
			Color:  b.color,
			State:  st,
			Record: b.record,
		})
	}
	return f
}

// Animating reports whether any transition is still running at now.
func (r *Renderer) Animating(now time.Time) bool {
	for _, b := range r.bubbles {
		if !b.tr.done(now) {
			return true
		}
	}
	return false
}

// State returns the state of key at now.
func (r *Renderer) State(key string, now time.Time) State {
	b, ok := r.bubbles[key]
	if !ok {
		return Absent
	}
	return b.stateAt(now)
}

// Record returns the record bound to a live bubble.
func (r *Renderer) Record(key string, now time.Time) (dataset.Record, bool) {
	b, ok := r.bubbles[key]
	if !ok || b.stateAt(now) == Absent {
		return dataset.Record{}, false
	}
	return b.record, true
}

// Year returns the year shown by the label.
func (r *Renderer) Year() int {
	return r.year
}

// Len returns the number of bubbles held, including exiting ones.
func (r *Renderer) Len() int {
	return len(r.bubbles)
}

// Scales returns the scales the renderer draws with.
func (r *Renderer) Scales() scale.Set {
	return r.scales
}

func (r *Renderer) target(rec dataset.Record) attrs {
	return attrs{
		X: r.scales.X.Apply(rec.GNIPerCapita),
		Y: r.scales.Y.Apply(rec.LifeExpectancy),
		R: r.scales.R.Apply(rec.Population),
	}
}

func (r *Renderer) transition(from, to attrs, now time.Time, d time.Duration) transition {
	return transition{from: from, to: to, start: now, duration: d, ease: r.opts.Ease}
}

func (r *Renderer) ordered() []*bubble {
	out := make([]*bubble, 0, len(r.bubbles))
	for _, b := range r.bubbles {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

func (r *Renderer) sortByDrawOrder(keys []string) []string {
	sort.SliceStable(keys, func(i, j int) bool {
		return r.bubbles[keys[i]].seq < r.bubbles[keys[j]].seq
	})
	return keys
}
