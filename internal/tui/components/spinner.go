package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/bubblechart/internal/tui/styles"
)

// Spinner displays an animated spinner with status text and elapsed time.
type Spinner struct {
	spinner    spinner.Model
	statusText string
	startTime  time.Time
	width      int
	showTime   bool
}

// NewSpinner creates a new Spinner component with default styling.
func NewSpinner() *Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Secondary)
	return &Spinner{
		spinner:  s,
		showTime: true,
	}
}

// SetStatusText sets the status text to display next to the spinner.
func (s *Spinner) SetStatusText(text string) {
	s.statusText = text
}

// StatusText returns the status text.
func (s *Spinner) StatusText() string {
	return s.statusText
}

// SetShowTime controls whether elapsed time is shown.
func (s *Spinner) SetShowTime(show bool) {
	s.showTime = show
}

// SetWidth sets the width of the spinner component.
func (s *Spinner) SetWidth(width int) {
	s.width = width
}

// Start marks the start time for elapsed time tracking.
func (s *Spinner) Start(now time.Time) {
	s.startTime = now
}

// Elapsed returns the time since Start, or zero before Start.
func (s *Spinner) Elapsed(now time.Time) time.Duration {
	if s.startTime.IsZero() {
		return 0
	}
	return now.Sub(s.startTime)
}

// Init returns the initial command for the spinner animation.
func (s *Spinner) Init() tea.Cmd {
	return s.spinner.Tick
}

// Update handles spinner tick messages.
func (s *Spinner) Update(msg tea.Msg) (*Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the spinner with status text and elapsed time at now.
func (s *Spinner) View(now time.Time) string {
	status := lipgloss.NewStyle().Foreground(styles.Foreground).Render(s.statusText)
	line := fmt.Sprintf("%s %s", s.spinner.View(), status)

	if s.showTime && !s.startTime.IsZero() {
		timeStyle := lipgloss.NewStyle().Foreground(styles.MutedLight)
		line = fmt.Sprintf("%s %s", line, timeStyle.Render("("+formatElapsed(s.Elapsed(now))+")"))
	}

	if s.width > 0 {
		return lipgloss.NewStyle().
			Width(s.width).
			Padding(0, 1).
			Render(line)
	}
	return line
}

func formatElapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
}
