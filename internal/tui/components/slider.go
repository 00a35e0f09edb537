package components

import (
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/bubblechart/internal/tui/styles"
)

// SliderChangedMsg is sent when the slider moves to a new year.
type SliderChangedMsg struct {
	Year int
}

// PlayToggledMsg is sent when autoplay starts or stops.
type PlayToggledMsg struct {
	Playing bool
}

// Slider selects a year between a minimum and a maximum. The track left of
// the handle is drawn in SliderFilled and the rest in SliderTrack.
type Slider struct {
	min, max int
	value    int
	hasRange bool

	width   int
	focused bool
	playing bool
	loop    bool
}

// NewSlider creates a slider without a range. It ignores input until SetRange.
func NewSlider() *Slider {
	return &Slider{width: 60}
}

// SetRange sets the bounds and clamps the current value into them.
func (s *Slider) SetRange(lo, hi int) {
	if hi < lo {
		lo, hi = hi, lo
	}
	s.min, s.max = lo, hi
	s.hasRange = true
	s.value = s.clamp(s.value)
}

// Range returns the bounds. ok is false before SetRange.
func (s *Slider) Range() (lo, hi int, ok bool) {
	return s.min, s.max, s.hasRange
}

// Value returns the selected year.
func (s *Slider) Value() int {
	return s.value
}

// SetValue moves the handle to v, clamped to the range. It reports whether
// the value changed.
func (s *Slider) SetValue(v int) bool {
	if !s.hasRange {
		return false
	}
	v = s.clamp(v)
	if v == s.value {
		return false
	}
	s.value = v
	return true
}

// Step moves the handle by delta years.
func (s *Slider) Step(delta int) bool {
	return s.SetValue(s.value + delta)
}

// First moves the handle to the minimum.
func (s *Slider) First() bool {
	return s.SetValue(s.min)
}

// Last moves the handle to the maximum.
func (s *Slider) Last() bool {
	return s.SetValue(s.max)
}

// SetWidth sets the total width of the slider line.
func (s *Slider) SetWidth(width int) {
	s.width = width
}

// SetFocused sets whether the slider receives keys.
func (s *Slider) SetFocused(focused bool) {
	s.focused = focused
}

// Focused returns whether the slider receives keys.
func (s *Slider) Focused() bool {
	return s.focused
}

// Playing reports whether autoplay is running.
func (s *Slider) Playing() bool {
	return s.playing
}

// SetPlaying starts or stops autoplay.
func (s *Slider) SetPlaying(playing bool) {
	s.playing = playing && s.hasRange
}

// SetLoop controls whether autoplay wraps from the last year to the first.
func (s *Slider) SetLoop(loop bool) {
	s.loop = loop
}

// TogglePlay starts or stops autoplay. Starting on the last year rewinds to
// the first; the returned bool reports whether the value changed.
func (s *Slider) TogglePlay() (changed bool) {
	if !s.hasRange {
		return false
	}
	if s.playing {
		s.playing = false
		return false
	}
	s.playing = true
	if s.value >= s.max && s.max > s.min {
		return s.First()
	}
	return false
}

// Advance moves one year forward while playing. At the last year it wraps
// when looping and otherwise stops playback.
func (s *Slider) Advance() bool {
	if !s.playing {
		return false
	}
	if s.value < s.max {
		return s.Step(1)
	}
	if s.loop && s.max > s.min {
		return s.First()
	}
	s.playing = false
	return false
}

// Update handles year keys while focused.
func (s *Slider) Update(msg tea.Msg) tea.Cmd {
	if !s.focused || !s.hasRange {
		return nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	var changed bool
	switch key.String() {
	case "left", "h":
		changed = s.Step(-1)
	case "right", "l":
		changed = s.Step(1)
	case "home":
		changed = s.First()
	case "end":
		changed = s.Last()
	case " ":
		changed = s.TogglePlay()
		playing := s.playing
		toggled := func() tea.Msg { return PlayToggledMsg{Playing: playing} }
		if changed {
			return tea.Batch(toggled, s.changedCmd())
		}
		return toggled
	default:
		return nil
	}

	if !changed {
		return nil
	}
	// Manual moves stop autoplay.
	if s.playing {
		s.playing = false
		return tea.Batch(s.changedCmd(), func() tea.Msg { return PlayToggledMsg{Playing: false} })
	}
	return s.changedCmd()
}

// ValueAt maps a column within the slider line to a year. ok is false when
// x is outside the track.
func (s *Slider) ValueAt(x int) (int, bool) {
	if !s.hasRange {
		return 0, false
	}
	start, width := s.track()
	if x < start || x >= start+width {
		return 0, false
	}
	if width <= 1 || s.max == s.min {
		return s.min, true
	}
	frac := float64(x-start) / float64(width-1)
	return s.min + int(math.Round(frac*float64(s.max-s.min))), true
}

// View renders "min ━━━━●──── max  ▶ year".
func (s *Slider) View() string {
	if !s.hasRange {
		return styles.MutedTextStyle.Render("no years")
	}

	_, width := s.track()
	pos := s.handlePos(width)
	filled := styles.SliderFilledStyle.Render(strings.Repeat("━", pos))
	rest := styles.SliderTrackStyle.Render(strings.Repeat("─", max(width-pos-1, 0)))

	handleStyle := styles.SliderHandleStyle
	if s.focused {
		handleStyle = styles.SliderHandleFocusedStyle
	}

	return styles.SliderBoundStyle.Render(strconv.Itoa(s.min)) + " " +
		filled + handleStyle.Render("●") + rest + " " +
		styles.SliderBoundStyle.Render(strconv.Itoa(s.max)) +
		styles.YearLabelStyle.Render(s.label())
}

func (s *Slider) label() string {
	icon := "⏸"
	if s.playing {
		icon = "▶"
	}
	return icon + " " + strconv.Itoa(s.value)
}

// track returns the first column and the width of the track.
func (s *Slider) track() (start, width int) {
	lo, hi := len(strconv.Itoa(s.min)), len(strconv.Itoa(s.max))
	// label is "▶ yyyy" plus one column of padding on each side
	labelWidth := len([]rune(s.label())) + 2
	start = lo + 1
	width = s.width - start - 1 - hi - labelWidth
	return start, max(width, 1)
}

func (s *Slider) handlePos(width int) int {
	if s.max == s.min || width <= 1 {
		return 0
	}
	frac := float64(s.value-s.min) / float64(s.max-s.min)
	return int(math.Round(frac * float64(width-1)))
}

func (s *Slider) clamp(v int) int {
	if v < s.min {
		return s.min
	}
	if v > s.max {
		return s.max
	}
	return v
}

func (s *Slider) changedCmd() tea.Cmd {
	year := s.value
	return func() tea.Msg {
		return SliderChangedMsg{Year: year}
	}
}
