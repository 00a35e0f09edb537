package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/bubblechart/internal/tui/styles"
)

// ShortcutDef defines a single keyboard shortcut.
type ShortcutDef struct {
	Key  string
	Desc string
}

// ShortcutBar displays a row of keyboard hints.
type ShortcutBar struct {
	shortcuts []ShortcutDef
	width     int
	centered  bool
}

// NewShortcutBar creates a new ShortcutBar with the given shortcuts.
func NewShortcutBar(shortcuts ...ShortcutDef) *ShortcutBar {
	return &ShortcutBar{
		shortcuts: shortcuts,
	}
}

// SetShortcuts replaces all shortcuts.
func (s *ShortcutBar) SetShortcuts(shortcuts ...ShortcutDef) {
	s.shortcuts = shortcuts
}

// SetWidth sets the bar width for alignment.
func (s *ShortcutBar) SetWidth(width int) {
	s.width = width
}

// SetCentered controls whether the bar content is centered.
func (s *ShortcutBar) SetCentered(centered bool) {
	s.centered = centered
}

// View renders the shortcut bar.
func (s *ShortcutBar) View() string {
	if len(s.shortcuts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(s.shortcuts))
	for _, sc := range s.shortcuts {
		parts = append(parts, styles.KeyStyle.Render(sc.Key)+styles.HelpStyle.Render(":"+sc.Desc))
	}

	sep := lipgloss.NewStyle().Foreground(styles.Muted).Render(" │ ")
	content := strings.Join(parts, sep)

	if s.centered && s.width > 0 {
		return lipgloss.NewStyle().
			Width(s.width).
			Align(lipgloss.Center).
			Render(content)
	}

	return content
}

// Predefined shortcut sets.
var (
	// ChartShortcuts are shown while the chart has focus.
	ChartShortcuts = []ShortcutDef{
		{"←→", "year"},
		{"Space", "play"},
		{"Tab", "filter"},
		{"?", "help"},
		{"q", "quit"},
	}

	// FilterShortcuts are shown while the country filter has focus.
	FilterShortcuts = []ShortcutDef{
		{"↑↓", "move"},
		{"Enter", "toggle"},
		{"a", "all"},
		{"n", "none"},
		{"Tab", "chart"},
	}

	// LoadingShortcuts are shown while the dataset loads.
	LoadingShortcuts = []ShortcutDef{
		{"q", "quit"},
	}

	// FailedShortcuts are shown on the error screen.
	FailedShortcuts = []ShortcutDef{
		{"q", "quit"},
	}
)
