package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/bubblechart/internal/tui/styles"
)

// Shortcut represents a keyboard shortcut.
type Shortcut struct {
	Key  string
	Desc string
}

// ShortcutGroup represents a group of related shortcuts.
type ShortcutGroup struct {
	Title     string
	Shortcuts []Shortcut
}

// DefaultHelpGroups lists the chart's key bindings.
var DefaultHelpGroups = []ShortcutGroup{
	{
		Title: "Year",
		Shortcuts: []Shortcut{
			{"←/→", "Previous/next year"},
			{"Home", "First year"},
			{"End", "Last year"},
			{"Space", "Play/pause"},
		},
	},
	{
		Title: "Countries",
		Shortcuts: []Shortcut{
			{"Tab", "Focus chart/filter"},
			{"↑/↓", "Move cursor"},
			{"Enter", "Toggle country"},
			{"a", "Select all"},
			{"n", "Select none"},
		},
	},
	{
		Title: "General",
		Shortcuts: []Shortcut{
			{"Mouse", "Hover a bubble for details"},
			{"?", "Toggle help"},
			{"q", "Quit"},
			{"Esc", "Close help"},
		},
	},
}

// HelpOverlay displays keyboard shortcuts.
type HelpOverlay struct {
	visible bool
	width   int
	height  int
	groups  []ShortcutGroup
}

// NewHelpOverlay creates a hidden HelpOverlay with the default groups.
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		width:  48,
		height: 24,
		groups: DefaultHelpGroups,
	}
}

// SetGroups sets custom shortcut groups.
func (h *HelpOverlay) SetGroups(groups []ShortcutGroup) {
	h.groups = groups
}

// SetSize sets the overlay dimensions.
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// Show makes the overlay visible.
func (h *HelpOverlay) Show() {
	h.visible = true
}

// Hide hides the overlay.
func (h *HelpOverlay) Hide() {
	h.visible = false
}

// Toggle toggles visibility.
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
}

// IsVisible returns whether the overlay is visible.
func (h *HelpOverlay) IsVisible() bool {
	return h.visible
}

// Update closes the overlay on esc, ? or q.
func (h *HelpOverlay) Update(msg tea.Msg) tea.Cmd {
	if !h.visible {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?", "q":
			h.Hide()
			return func() tea.Msg {
				return HelpClosedMsg{}
			}
		}
	}
	return nil
}

// View renders the help overlay.
func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Primary).
		Bold(true).
		Padding(0, 1).
		Width(max(h.width-6, 0))
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for i, group := range h.groups {
		b.WriteString(h.renderGroup(group))
		if i < len(h.groups)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	footerStyle := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Italic(true)
	b.WriteString(footerStyle.Render("Press ? or Esc to close"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.Primary).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

func (h *HelpOverlay) renderGroup(group ShortcutGroup) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Secondary).
		Bold(true)
	b.WriteString(titleStyle.Render(group.Title))
	b.WriteString("\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Bold(true).
		Width(8)
	descStyle := lipgloss.NewStyle().
		Foreground(styles.MutedLight)

	for _, shortcut := range group.Shortcuts {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(shortcut.Key))
		b.WriteString(" ")
		b.WriteString(descStyle.Render(shortcut.Desc))
		b.WriteString("\n")
	}

	return b.String()
}

// HelpClosedMsg is sent when the help overlay is closed.
type HelpClosedMsg struct{}
