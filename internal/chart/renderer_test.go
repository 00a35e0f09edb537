package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbmrq/bubblechart/internal/config"
	"github.com/dbmrq/bubblechart/internal/dataset"
	"github.com/dbmrq/bubblechart/internal/scale"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time {
	return t0.Add(d)
}

var (
	wakanda2000 = dataset.Record{Country: "Wakanda", Year: 2000, GNIPerCapita: 5000, LifeExpectancy: 60, Population: 1000000}
	wakanda2001 = dataset.Record{Country: "Wakanda", Year: 2001, GNIPerCapita: 6000, LifeExpectancy: 62, Population: 1100000}
	genovia2000 = dataset.Record{Country: "Genovia", Year: 2000, GNIPerCapita: 2000, LifeExpectancy: 70, Population: 30000}
	genovia2001 = dataset.Record{Country: "Genovia", Year: 2001, GNIPerCapita: 2500, LifeExpectancy: 71, Population: 31000}
)

func testDataset() *dataset.Dataset {
	return dataset.New([]dataset.Record{wakanda2000, genovia2000, wakanda2001, genovia2001})
}

func newTestRenderer(t *testing.T) (*Renderer, scale.Set) {
	t.Helper()
	scales := scale.Build(testDataset(), config.NewConfig().Chart)
	return NewRenderer(scales, OptionsFromConfig(config.NewConfig().Animation)), scales
}

func findBubble(t *testing.T, f Frame, key string) BubbleView {
	t.Helper()
	for _, b := range f.Bubbles {
		if b.Key == key {
			return b
		}
	}
	t.Fatalf("bubble %q not in frame", key)
	return BubbleView{}
}

func TestRenderEnter(t *testing.T) {
	r, s := newTestRenderer(t)

	diff := r.Render(2000, []dataset.Record{wakanda2000}, t0)
	assert.Equal(t, []string{"Wakanda"}, diff.Entered)
	assert.Empty(t, diff.Updated)
	assert.Empty(t, diff.Exited)

	start := findBubble(t, r.Frame(t0), "Wakanda")
	assert.Equal(t, Entering, start.State)
	assert.InDelta(t, s.X.Apply(5000), start.X, 1e-9, "enters at its target position")
	assert.InDelta(t, s.Y.Apply(60), start.Y, 1e-9)
	assert.Equal(t, 0.0, start.R)
	assert.Equal(t, config.Tableau10[0], start.Color)

	mid := findBubble(t, r.Frame(at(500*time.Millisecond)), "Wakanda")
	assert.InDelta(t, s.R.Apply(1000000)/2, mid.R, 1e-9)

	end := findBubble(t, r.Frame(at(time.Second)), "Wakanda")
	assert.Equal(t, Steady, end.State)
	assert.InDelta(t, s.R.Apply(1000000), end.R, 1e-9)
}

func TestRenderRoundTrip(t *testing.T) {
	r, s := newTestRenderer(t)

	r.Render(2000, []dataset.Record{wakanda2000}, t0)
	diff := r.Render(2001, []dataset.Record{wakanda2001}, at(time.Second))

	assert.Equal(t, []string{"Wakanda"}, diff.Updated)
	assert.Empty(t, diff.Entered, "same key is not recreated")
	assert.Empty(t, diff.Exited)

	b := findBubble(t, r.Frame(at(2*time.Second)), "Wakanda")
	assert.InDelta(t, s.X.Apply(6000), b.X, 1e-9)
	assert.InDelta(t, s.Y.Apply(62), b.Y, 1e-9)
	assert.InDelta(t, s.R.Apply(1100000), b.R, 1e-9)
	assert.Equal(t, wakanda2001, b.Record)
	assert.Equal(t, 2001, r.Frame(at(2*time.Second)).Year)
}

func TestRenderUpdateStartsFromCurrentValue(t *testing.T) {
	r, s := newTestRenderer(t)

	r.Render(2000, []dataset.Record{wakanda2000}, t0)
	// Interrupt the enter halfway.
	r.Render(2001, []dataset.Record{wakanda2001}, at(500*time.Millisecond))

	b := findBubble(t, r.Frame(at(500*time.Millisecond)), "Wakanda")
	assert.InDelta(t, s.R.Apply(1000000)/2, b.R, 1e-9)
	assert.InDelta(t, s.X.Apply(5000), b.X, 1e-9)
	assert.Equal(t, Steady, b.State)

	mid := findBubble(t, r.Frame(at(time.Second)), "Wakanda")
	assert.InDelta(t, (s.X.Apply(5000)+s.X.Apply(6000))/2, mid.X, 1e-9)
}

func TestRenderExit(t *testing.T) {
	r, s := newTestRenderer(t)

	r.Render(2000, []dataset.Record{wakanda2000, genovia2000}, t0)
	diff := r.Render(2000, []dataset.Record{genovia2000}, at(time.Second))

	assert.Equal(t, []string{"Wakanda"}, diff.Exited)
	assert.Equal(t, []string{"Genovia"}, diff.Updated)

	mid := findBubble(t, r.Frame(at(1250*time.Millisecond)), "Wakanda")
	assert.Equal(t, Exiting, mid.State)
	assert.InDelta(t, s.R.Apply(1000000)/2, mid.R, 1e-9)
	assert.InDelta(t, s.X.Apply(5000), mid.X, 1e-9, "exit keeps position")

	assert.Equal(t, Absent, r.State("Wakanda", at(1500*time.Millisecond)))
	assert.Len(t, r.Frame(at(1500*time.Millisecond)).Bubbles, 1)

	removed := r.Advance(at(1500 * time.Millisecond))
	assert.Equal(t, []string{"Wakanda"}, removed)
	assert.Equal(t, 1, r.Len())
}

func TestRenderExitIsNotRestarted(t *testing.T) {
	r, _ := newTestRenderer(t)

	r.Render(2000, []dataset.Record{wakanda2000}, t0)
	r.Render(2000, nil, at(time.Second))
	diff := r.Render(2000, nil, at(1200*time.Millisecond))

	assert.Empty(t, diff.Exited, "already exiting")
	assert.Equal(t, Absent, r.State("Wakanda", at(1500*time.Millisecond)))
}

func TestRenderReviveWhileExiting(t *testing.T) {
	r, s := newTestRenderer(t)

	r.Render(2000, []dataset.Record{wakanda2000}, t0)
	r.Render(2000, nil, at(time.Second))

	// Halfway through the exit the country is selected again.
	now := at(1250 * time.Millisecond)
	diff := r.Render(2000, []dataset.Record{wakanda2000}, now)

	assert.Equal(t, []string{"Wakanda"}, diff.Revived)
	assert.Equal(t, []string{"Wakanda"}, diff.Entered)
	assert.Empty(t, diff.Exited)

	b := findBubble(t, r.Frame(now), "Wakanda")
	assert.Equal(t, Entering, b.State)
	assert.InDelta(t, s.R.Apply(1000000)/2, b.R, 1e-9, "grows from its current radius")

	// The old exit deadline passes without removing the bubble.
	assert.Equal(t, Entering, r.State("Wakanda", at(1500*time.Millisecond)))
	r.Advance(at(1500 * time.Millisecond))
	assert.Equal(t, 1, r.Len())

	done := findBubble(t, r.Frame(at(2250*time.Millisecond)), "Wakanda")
	assert.Equal(t, Steady, done.State)
	assert.InDelta(t, s.R.Apply(1000000), done.R, 1e-9)
}

func TestRenderMissingYear(t *testing.T) {
	r, _ := newTestRenderer(t)

	r.Render(2000, []dataset.Record{wakanda2000, genovia2000}, t0)
	diff := r.Render(1999, nil, at(time.Second))

	assert.ElementsMatch(t, []string{"Wakanda", "Genovia"}, diff.Exited)
	f := r.Frame(at(2 * time.Second))
	assert.Empty(t, f.Bubbles)
	assert.Equal(t, 1999, f.Year)
	assert.True(t, f.HasLabel)
}

func TestRenderEmptyBeforeAnyData(t *testing.T) {
	r, _ := newTestRenderer(t)

	f := r.Frame(t0)
	assert.False(t, f.HasLabel)

	diff := r.Render(1950, nil, t0)
	assert.True(t, diff.Empty())
	assert.Equal(t, 1950, r.Frame(t0).Year)
}

func TestRenderDrawOrder(t *testing.T) {
	r, _ := newTestRenderer(t)

	r.Render(2000, []dataset.Record{wakanda2000, genovia2000}, t0)
	// Order of the input does not reorder existing bubbles.
	r.Render(2001, []dataset.Record{genovia2001, wakanda2001}, at(time.Second))

	f := r.Frame(at(2 * time.Second))
	require.Len(t, f.Bubbles, 2)
	assert.Equal(t, "Wakanda", f.Bubbles[0].Key)
	assert.Equal(t, "Genovia", f.Bubbles[1].Key)
}

func TestRenderIgnoresDuplicateKeys(t *testing.T) {
	r, s := newTestRenderer(t)

	dup := wakanda2000
	dup.GNIPerCapita = 1
	diff := r.Render(2000, []dataset.Record{wakanda2000, dup}, t0)

	assert.Equal(t, []string{"Wakanda"}, diff.Entered)
	b := findBubble(t, r.Frame(at(time.Second)), "Wakanda")
	assert.InDelta(t, s.X.Apply(5000), b.X, 1e-9)
}

func TestAnimating(t *testing.T) {
	r, _ := newTestRenderer(t)
	assert.False(t, r.Animating(t0))

	r.Render(2000, []dataset.Record{wakanda2000}, t0)
	assert.True(t, r.Animating(at(999*time.Millisecond)))
	assert.False(t, r.Animating(at(time.Second)))

	r.Render(2000, nil, at(time.Second))
	assert.True(t, r.Animating(at(1400*time.Millisecond)))
	assert.False(t, r.Animating(at(1500*time.Millisecond)))
}

func TestKeyedContinuityAcrossYears(t *testing.T) {
	r, _ := newTestRenderer(t)
	ds := testDataset()

	r.Render(2000, ds.ForYear(2000), t0)
	for i, year := range []int{2001, 2000, 2001} {
		diff := r.Render(year, ds.ForYear(year), at(time.Duration(i+1)*300*time.Millisecond))
		assert.Empty(t, diff.Entered, "year %d", year)
		assert.Empty(t, diff.Exited, "year %d", year)
		assert.ElementsMatch(t, []string{"Wakanda", "Genovia"}, diff.Updated)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "absent", Absent.String())
	assert.Equal(t, "entering", Entering.String())
	assert.Equal(t, "steady", Steady.String())
	assert.Equal(t, "exiting", Exiting.String())
	assert.Equal(t, "unknown", State(42).String())
}
