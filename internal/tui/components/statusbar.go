package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/bubblechart/internal/tui/styles"
)

// Focus names the area of the screen that receives keys.
type Focus string

const (
	FocusChart  Focus = "chart"
	FocusFilter Focus = "filter"
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Year          int
	HasYear       bool
	Visible       int // bubbles on screen for the year
	Selected      int // checked countries
	Countries     int
	Skipped       int // CSV rows dropped while loading
	Playing       bool
	Focus         Focus
	Message       string
	Warning       bool // render Message as a warning
	ShowShortcuts bool
	Shortcuts     []ShortcutDef // overrides the focus defaults
}

// StatusBar is a component that displays chart state and keyboard shortcuts.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		data: StatusBarData{
			Focus:         FocusChart,
			ShowShortcuts: true,
		},
	}
}

// Data returns the current status bar data.
func (s *StatusBar) Data() StatusBarData {
	return s.data
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// SetYear sets the year on display.
func (s *StatusBar) SetYear(year int) {
	s.data.Year = year
	s.data.HasYear = true
}

// SetCounts sets the visible bubble and selected country counts.
func (s *StatusBar) SetCounts(visible, selected, countries int) {
	s.data.Visible = visible
	s.data.Selected = selected
	s.data.Countries = countries
}

// SetSkipped sets the number of CSV rows dropped while loading.
func (s *StatusBar) SetSkipped(n int) {
	s.data.Skipped = n
}

// SetPlaying sets whether autoplay is running.
func (s *StatusBar) SetPlaying(playing bool) {
	s.data.Playing = playing
}

// SetFocus sets the focused area, which selects the default shortcuts.
func (s *StatusBar) SetFocus(f Focus) {
	s.data.Focus = f
}

// SetMessage sets an optional status message.
func (s *StatusBar) SetMessage(message string) {
	s.data.Message = message
	s.data.Warning = false
}

// SetWarning sets a status message rendered as a warning.
func (s *StatusBar) SetWarning(message string) {
	s.data.Message = message
	s.data.Warning = true
}

// SetShowShortcuts sets whether to show keyboard shortcuts.
func (s *StatusBar) SetShowShortcuts(show bool) {
	s.data.ShowShortcuts = show
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")

	year := "-"
	if s.data.HasYear {
		year = strconv.Itoa(s.data.Year)
	}

	parts := []string{
		s.field("Year: ", styles.StatusValueStyle.Bold(true).Render(year)),
		s.field("Bubbles: ", styles.StatusValueStyle.Render(strconv.Itoa(s.data.Visible))),
		s.field("Countries: ", styles.StatusValueStyle.Render(fmt.Sprintf("%d/%d", s.data.Selected, s.data.Countries))),
	}
	if s.data.Skipped > 0 {
		parts = append(parts, s.field("Skipped rows: ", styles.WarningTextStyle.Render(strconv.Itoa(s.data.Skipped))))
	}
	parts = append(parts, s.renderPlayState())

	if s.data.Message != "" {
		msgStyle := lipgloss.NewStyle().
			Foreground(styles.MutedLight).
			Italic(true)
		if s.data.Warning {
			msgStyle = styles.WarningTextStyle
		}
		parts = append(parts, msgStyle.Render(s.data.Message))
	}

	leftContent := strings.Join(parts, sep)

	rightContent := ""
	if s.data.ShowShortcuts {
		rightContent = s.renderShortcuts()
	}

	containerStyle := styles.StatusBarStyle
	if s.width > 0 {
		containerStyle = containerStyle.Width(s.width).MaxHeight(1)

		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(rightContent)
		padding := s.width - leftWidth - rightWidth - 2 // container padding
		if padding > 0 {
			return containerStyle.Render(leftContent + strings.Repeat(" ", padding) + rightContent)
		}
		// Shortcuts are dropped before the status fields.
		return containerStyle.Render(leftContent)
	}

	return containerStyle.Render(leftContent + "  " + rightContent)
}

func (s *StatusBar) field(label, value string) string {
	return styles.StatusLabelStyle.Render(label) + value
}

func (s *StatusBar) renderPlayState() string {
	if s.data.Playing {
		return styles.SuccessTextStyle.Render("▶ Playing")
	}
	return styles.MutedTextStyle.Render("⏸ Paused")
}

func (s *StatusBar) renderShortcuts() string {
	if len(s.data.Shortcuts) > 0 {
		return NewShortcutBar(s.data.Shortcuts...).View()
	}

	shortcuts := ChartShortcuts
	if s.data.Focus == FocusFilter {
		shortcuts = FilterShortcuts
	}
	return NewShortcutBar(shortcuts...).View()
}
