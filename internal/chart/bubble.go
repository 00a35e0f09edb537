package chart

import (
	"time"

	"github.com/dbmrq/bubblechart/internal/dataset"
)

// State is the lifecycle state of a bubble.
type State int

const (
	// Absent means no bubble exists for the key.
	Absent State = iota
	// Entering means the bubble is growing from radius zero.
	Entering
	// Steady means the bubble is visible, possibly moving to a new target.
	Steady
	// Exiting means the bubble is shrinking to radius zero before removal.
	Exiting
)

func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Entering:
		return "entering"
	case Steady:
		return "steady"
	case Exiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// attrs are the animated attributes of a bubble, in plot-area pixels.
type attrs struct {
	X, Y, R float64
}

func lerp(a, b attrs, t float64) attrs {
	return attrs{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		R: a.R + (b.R-a.R)*t,
	}
}

// transition animates attrs from one value to another starting at start.
type transition struct {
	from, to attrs
	start    time.Time
	duration time.Duration
	ease     EaseFunc
}

func (tr transition) done(now time.Time) bool {
	return tr.duration <= 0 || !now.Before(tr.start.Add(tr.duration))
}

func (tr transition) at(now time.Time) attrs {
	if tr.done(now) {
		return tr.to
	}
	elapsed := now.Sub(tr.start)
	if elapsed <= 0 {
		return tr.from
	}
	t := float64(elapsed) / float64(tr.duration)
	return lerp(tr.from, tr.to, tr.ease(t))
}

// bubble is the renderer's handle for one country.
type bubble struct {
	key    string
	seq    int64
	color  string
	record dataset.Record
	state  State
	tr     transition
}

// stateAt returns the state the bubble is in at now, settling finished transitions.
func (b *bubble) stateAt(now time.Time) State {
	if !b.tr.done(now) {
		return b.state
	}
	switch b.state {
	case Entering:
		return Steady
	case Exiting:
		return Absent
	default:
		return b.state
	}
}
