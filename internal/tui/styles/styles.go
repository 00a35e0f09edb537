// Package styles provides Lip Gloss styles for the bubblechart TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	Primary     = lipgloss.Color("#7C3AED") // Purple
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray

	// SliderFilled is the track colour left of the slider handle.
	SliderFilled = lipgloss.Color("#91c3bf")
	// SliderTrack is the track colour right of the handle.
	SliderTrack = lipgloss.Color("#d1d1d1")
)

// Header styles.
var (
	// HeaderStyle is the main header container.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Padding(0, 1)

	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// HeaderValueStyle is for header values.
	HeaderValueStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)

	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)
)

// Slider styles.
var (
	SliderFilledStyle = lipgloss.NewStyle().
				Foreground(SliderFilled)

	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(SliderTrack)

	SliderHandleStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)

	SliderHandleFocusedStyle = lipgloss.NewStyle().
					Foreground(Secondary).
					Bold(true)

	// SliderBoundStyle is for the min and max years at either end.
	SliderBoundStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// YearLabelStyle is for the selected year next to the slider.
	YearLabelStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true).
			Padding(0, 1)
)

// Box styles.
var (
	// BoxStyle is a standard box with border.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)
)

// Tooltip colours. The tooltip is painted cell by cell over the chart, so
// only the colours are shared.
var (
	TooltipForeground = lipgloss.AdaptiveColor{Light: "#111111", Dark: "#F9FAFB"}
	TooltipBackground = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1F2937"}
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// SuccessTextStyle is for success messages.
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)

	// WarningTextStyle is for warning messages.
	WarningTextStyle = lipgloss.NewStyle().
				Foreground(Warning)
)

// Status bar styles.
var (
	// StatusBarStyle is the main status bar container.
	StatusBarStyle = lipgloss.NewStyle().
			Background(Background).
			Padding(0, 1)

	// StatusLabelStyle is for status bar labels.
	StatusLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// StatusValueStyle is for status bar values.
	StatusValueStyle = lipgloss.NewStyle().
				Foreground(Foreground)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Checkbox styles.
var (
	// CheckboxCheckedStyle is for checked checkboxes.
	CheckboxCheckedStyle = lipgloss.NewStyle().
				Foreground(Success)

	// CheckboxUncheckedStyle is for unchecked checkboxes.
	CheckboxUncheckedStyle = lipgloss.NewStyle().
				Foreground(Muted)

	// CheckboxLabelStyle is for checkbox labels.
	CheckboxLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// CheckboxFocusedStyle is for the label of the checkbox under the cursor.
	CheckboxFocusedStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)
)
