package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestNewCheckbox(t *testing.T) {
	cb := NewCheckbox("Wakanda", "Wakanda")
	if cb == nil {
		t.Fatal("NewCheckbox returned nil")
	}
	if cb.ID() != "Wakanda" {
		t.Errorf("Expected ID 'Wakanda', got '%s'", cb.ID())
	}
	if cb.Label() != "Wakanda" {
		t.Errorf("Expected label 'Wakanda', got '%s'", cb.Label())
	}
	if cb.Checked() {
		t.Error("Checkbox should not be checked initially")
	}
}

func TestCheckboxToggle(t *testing.T) {
	cb := NewCheckbox("id", "label")

	cb.Toggle()
	if !cb.Checked() {
		t.Error("Checkbox should be checked after Toggle()")
	}

	cb.Toggle()
	if cb.Checked() {
		t.Error("Checkbox should be unchecked after second Toggle()")
	}
}

func TestCheckboxFocus(t *testing.T) {
	cb := NewCheckbox("id", "label")
	if cb.Focused() {
		t.Error("Checkbox should not be focused initially")
	}

	cb.Focus()
	if !cb.Focused() {
		t.Error("Checkbox should be focused after Focus()")
	}

	cb.Blur()
	if cb.Focused() {
		t.Error("Checkbox should not be focused after Blur()")
	}
}

func TestCheckboxUpdate(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}},
		{"space", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := NewCheckbox("Genovia", "Genovia")
			cb.Focus()

			cb, cmd := cb.Update(tt.msg)
			if !cb.Checked() {
				t.Fatal("Checkbox should be checked")
			}
			if cmd == nil {
				t.Fatal("Update should return a command")
			}
			msg, ok := cmd().(CheckboxToggledMsg)
			if !ok {
				t.Fatalf("Expected CheckboxToggledMsg, got %T", cmd())
			}
			if msg.ID != "Genovia" || !msg.Checked {
				t.Errorf("Unexpected message %+v", msg)
			}
		})
	}
}

func TestCheckboxUpdateWithoutFocus(t *testing.T) {
	cb := NewCheckbox("id", "label")

	_, cmd := cb.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cb.Checked() {
		t.Error("Checkbox should not toggle without focus")
	}
	if cmd != nil {
		t.Error("No command should be returned without focus")
	}
}

func TestCheckboxView(t *testing.T) {
	cb := NewCheckbox("id", "Freedonia")

	view := cb.View()
	if !strings.Contains(view, "Freedonia") {
		t.Error("View should contain the label")
	}
	if !strings.Contains(view, "[ ]") {
		t.Error("Unchecked checkbox should show [ ]")
	}
	if strings.Contains(view, "●") {
		t.Error("No swatch should be drawn by default")
	}

	cb.SetChecked(true)
	cb.SetSwatch(lipgloss.Color("#4e79a7"))
	view = cb.View()
	if !strings.Contains(view, "[✓]") {
		t.Error("Checked checkbox should show [✓]")
	}
	if !strings.Contains(view, "●") {
		t.Error("Swatch should be drawn once set")
	}
}
