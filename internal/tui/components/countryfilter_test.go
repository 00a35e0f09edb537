package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var testCountries = []string{"Wakanda", "Genovia", "Freedonia", "Latveria", "Zamunda"}

func newTestFilter() *CountryFilter {
	f := NewCountryFilter(testCountries)
	f.SetFocused(true)
	return f
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewCountryFilter(t *testing.T) {
	f := NewCountryFilter([]string{"Wakanda", "Genovia", "Wakanda"})

	if f.Len() != 2 {
		t.Errorf("duplicates should be dropped, got %d items", f.Len())
	}
	if !f.Checked("Wakanda") || !f.Checked("Genovia") {
		t.Error("every country should start checked")
	}
	if f.Checked("Atlantis") {
		t.Error("unknown country should not be checked")
	}
	if f.Current() != "Wakanda" {
		t.Errorf("cursor should start on the first country, got %q", f.Current())
	}
}

func TestCountryFilterNavigation(t *testing.T) {
	f := newTestFilter()

	f.Update(tea.KeyMsg{Type: tea.KeyDown})
	f.Update(keyRune('j'))
	if f.Current() != "Freedonia" {
		t.Errorf("expected Freedonia, got %q", f.Current())
	}

	f.Update(tea.KeyMsg{Type: tea.KeyUp})
	if f.Current() != "Genovia" {
		t.Errorf("expected Genovia, got %q", f.Current())
	}

	f.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if f.Cursor() != 4 {
		t.Errorf("end should move to the last item, got %d", f.Cursor())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyDown})
	if f.Cursor() != 4 {
		t.Errorf("cursor should stop at the last item, got %d", f.Cursor())
	}

	f.Update(tea.KeyMsg{Type: tea.KeyHome})
	if f.Cursor() != 0 {
		t.Errorf("home should move to the first item, got %d", f.Cursor())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyUp})
	if f.Cursor() != 0 {
		t.Errorf("cursor should stop at the first item, got %d", f.Cursor())
	}
}

func TestCountryFilterToggle(t *testing.T) {
	f := newTestFilter()
	f.MoveDown()

	cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should return a command")
	}
	msg, ok := cmd().(FilterToggledMsg)
	if !ok {
		t.Fatalf("expected FilterToggledMsg, got %T", cmd())
	}
	if msg.Country != "Genovia" || msg.Selected {
		t.Errorf("unexpected message %+v", msg)
	}
	if f.Checked("Genovia") {
		t.Error("Genovia should be unchecked")
	}

	msg = f.Update(keyRune(' '))().(FilterToggledMsg)
	if !msg.Selected || !f.Checked("Genovia") {
		t.Error("space should check Genovia again")
	}
}

func TestCountryFilterSelectAllNone(t *testing.T) {
	f := newTestFilter()

	cmd := f.Update(keyRune('n'))
	if _, ok := cmd().(SelectNoneMsg); !ok {
		t.Error("n should emit SelectNoneMsg")
	}
	for _, c := range testCountries {
		if f.Checked(c) {
			t.Errorf("%s should be unchecked", c)
		}
	}

	cmd = f.Update(keyRune('a'))
	if _, ok := cmd().(SelectAllMsg); !ok {
		t.Error("a should emit SelectAllMsg")
	}
	for _, c := range testCountries {
		if !f.Checked(c) {
			t.Errorf("%s should be checked", c)
		}
	}
}

func TestCountryFilterIgnoresKeysWhenBlurred(t *testing.T) {
	f := NewCountryFilter(testCountries)

	if cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("blurred filter should not react to keys")
	}
	if !f.Checked("Wakanda") {
		t.Error("blurred filter should not toggle")
	}
}

func TestCountryFilterSync(t *testing.T) {
	f := newTestFilter()
	f.Sync(func(c string) bool { return c == "Zamunda" })

	if !f.Checked("Zamunda") || f.Checked("Wakanda") {
		t.Error("Sync should mirror the selection")
	}

	f.SetChecked("Wakanda", true)
	if !f.Checked("Wakanda") {
		t.Error("SetChecked should check Wakanda")
	}
}

func TestCountryFilterScrolls(t *testing.T) {
	f := newTestFilter()
	f.SetSize(30, 3) // title plus two rows

	view := f.View()
	if !strings.Contains(view, "Wakanda") || strings.Contains(view, "Freedonia") {
		t.Errorf("only the first two countries should be visible, got %q", view)
	}

	f.GoToBottom()
	view = f.View()
	if !strings.Contains(view, "Zamunda") {
		t.Errorf("the cursor row should be scrolled into view, got %q", view)
	}
	if strings.Contains(view, "Wakanda") {
		t.Errorf("the first row should have scrolled out, got %q", view)
	}
}

func TestCountryFilterView(t *testing.T) {
	f := newTestFilter()
	f.SetSwatches(func(c string) string {
		if c == "Wakanda" {
			return "#4e79a7"
		}
		return ""
	})
	f.SetChecked("Genovia", false)

	view := f.View()
	for _, want := range []string{"Countries", "(4/5)", "[✓]", "[ ]", "●"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q, got %q", want, view)
		}
	}

	empty := NewCountryFilter(nil)
	if !strings.Contains(empty.View(), "No countries") {
		t.Error("empty filter should say so")
	}
	if empty.Current() != "" {
		t.Error("empty filter has no current country")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Genovia", 10, "Genovia"},
		{"Genovia", 4, "Gen…"},
		{"Genovia", 1, "G"},
		{"Genovia", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
