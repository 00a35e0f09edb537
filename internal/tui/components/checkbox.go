// Package components provides reusable TUI components for bubblechart.
package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/bubblechart/internal/tui/styles"
)

// Checkbox is a toggle checkbox with an optional colour swatch before its label.
type Checkbox struct {
	label   string
	checked bool
	focused bool
	id      string
	swatch  lipgloss.TerminalColor
}

// NewCheckbox creates a new Checkbox component.
func NewCheckbox(id, label string) *Checkbox {
	return &Checkbox{
		label: label,
		id:    id,
	}
}

// ID returns the component's unique identifier.
func (c *Checkbox) ID() string {
	return c.id
}

// Label returns the checkbox label.
func (c *Checkbox) Label() string {
	return c.label
}

// Focus focuses the checkbox.
func (c *Checkbox) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur removes focus from the checkbox.
func (c *Checkbox) Blur() {
	c.focused = false
}

// Focused returns whether the checkbox is focused.
func (c *Checkbox) Focused() bool {
	return c.focused
}

// Toggle toggles the checkbox state.
func (c *Checkbox) Toggle() {
	c.checked = !c.checked
}

// SetChecked sets the checkbox state.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}

// Checked returns whether the checkbox is checked.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// SetSwatch sets the colour of the marker drawn before the label.
// A nil colour removes the marker.
func (c *Checkbox) SetSwatch(color lipgloss.TerminalColor) {
	c.swatch = color
}

// Update toggles a focused checkbox on enter or space.
func (c *Checkbox) Update(msg tea.Msg) (*Checkbox, tea.Cmd) {
	if !c.focused {
		return c, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			c.Toggle()
			return c, func() tea.Msg {
				return CheckboxToggledMsg{ID: c.id, Checked: c.checked}
			}
		}
	}

	return c, nil
}

// View renders the checkbox as "[✓] ● label".
func (c *Checkbox) View() string {
	marker := ""
	if c.swatch != nil {
		marker = lipgloss.NewStyle().Foreground(c.swatch).Render("●") + " "
	}

	labelStyle := styles.CheckboxLabelStyle
	if c.focused {
		labelStyle = styles.CheckboxFocusedStyle
	}

	return c.box() + " " + marker + labelStyle.Render(c.label)
}

func (c *Checkbox) box() string {
	if c.checked {
		return styles.CheckboxCheckedStyle.Render("[✓]")
	}
	return styles.CheckboxUncheckedStyle.Render("[ ]")
}

// CheckboxToggledMsg is sent when a focused checkbox is toggled.
type CheckboxToggledMsg struct {
	ID      string
	Checked bool
}
