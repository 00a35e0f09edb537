package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/bubblechart/internal/tui/styles"
)

// FilterToggledMsg is sent when a country checkbox changes.
type FilterToggledMsg struct {
	Country  string
	Selected bool
}

// SelectAllMsg is sent when every country is selected at once.
type SelectAllMsg struct{}

// SelectNoneMsg is sent when every country is deselected at once.
type SelectNoneMsg struct{}

// CountryFilter is a scrollable list of country checkboxes, one per
// distinct country, in dataset order.
type CountryFilter struct {
	items    []*Checkbox
	index    map[string]int
	cursor   int
	focused  bool
	viewport viewport.Model
	width    int
	height   int
}

// NewCountryFilter creates a filter with every country checked.
func NewCountryFilter(countries []string) *CountryFilter {
	f := &CountryFilter{
		index:    make(map[string]int, len(countries)),
		viewport: viewport.New(24, 9),
		width:    24,
		height:   10,
	}
	for _, c := range countries {
		if _, dup := f.index[c]; dup {
			continue
		}
		cb := NewCheckbox(c, c)
		cb.SetChecked(true)
		f.index[c] = len(f.items)
		f.items = append(f.items, cb)
	}
	f.syncCursor()
	return f
}

// SetSwatches colours each checkbox with its country's bubble colour.
func (f *CountryFilter) SetSwatches(color func(country string) string) {
	for _, cb := range f.items {
		if hex := color(cb.ID()); hex != "" {
			cb.SetSwatch(lipgloss.Color(hex))
		}
	}
}

// SetSize sets the list dimensions, including the title line.
func (f *CountryFilter) SetSize(width, height int) {
	f.width = width
	f.height = height
	f.viewport.Width = width
	f.viewport.Height = max(height-1, 1)
	f.updateScroll()
}

// SetFocused sets whether the list receives keys.
func (f *CountryFilter) SetFocused(focused bool) {
	f.focused = focused
	f.syncCursor()
}

// Focused returns whether the list receives keys.
func (f *CountryFilter) Focused() bool {
	return f.focused
}

// Len returns the number of countries.
func (f *CountryFilter) Len() int {
	return len(f.items)
}

// Cursor returns the index of the highlighted country.
func (f *CountryFilter) Cursor() int {
	return f.cursor
}

// Current returns the highlighted country, or "" for an empty list.
func (f *CountryFilter) Current() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.cursor].ID()
}

// Checked reports whether country is checked.
func (f *CountryFilter) Checked(country string) bool {
	i, ok := f.index[country]
	return ok && f.items[i].Checked()
}

// SetChecked updates one checkbox without emitting a message.
func (f *CountryFilter) SetChecked(country string, checked bool) {
	if i, ok := f.index[country]; ok {
		f.items[i].SetChecked(checked)
	}
}

// Sync sets every checkbox from isSelected.
func (f *CountryFilter) Sync(isSelected func(country string) bool) {
	for _, cb := range f.items {
		cb.SetChecked(isSelected(cb.ID()))
	}
}

// MoveUp moves the cursor up.
func (f *CountryFilter) MoveUp() {
	if f.cursor > 0 {
		f.cursor--
		f.syncCursor()
	}
}

// MoveDown moves the cursor down.
func (f *CountryFilter) MoveDown() {
	if f.cursor < len(f.items)-1 {
		f.cursor++
		f.syncCursor()
	}
}

// GoToTop moves the cursor to the first country.
func (f *CountryFilter) GoToTop() {
	f.cursor = 0
	f.syncCursor()
}

// GoToBottom moves the cursor to the last country.
func (f *CountryFilter) GoToBottom() {
	if len(f.items) > 0 {
		f.cursor = len(f.items) - 1
		f.syncCursor()
	}
}

// Update handles navigation and toggling while focused.
func (f *CountryFilter) Update(msg tea.Msg) tea.Cmd {
	if !f.focused || len(f.items) == 0 {
		return nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "k":
		f.MoveUp()
	case "down", "j":
		f.MoveDown()
	case "home", "g":
		f.GoToTop()
	case "end", "G":
		f.GoToBottom()
	case "enter", " ":
		var cmd tea.Cmd
		f.items[f.cursor], cmd = f.items[f.cursor].Update(key)
		return toggledToFilter(cmd)
	case "a":
		for _, cb := range f.items {
			cb.SetChecked(true)
		}
		return func() tea.Msg { return SelectAllMsg{} }
	case "n":
		for _, cb := range f.items {
			cb.SetChecked(false)
		}
		return func() tea.Msg { return SelectNoneMsg{} }
	}
	return nil
}

// View renders the title and the visible part of the list.
func (f *CountryFilter) View() string {
	checked := 0
	for _, cb := range f.items {
		if cb.Checked() {
			checked++
		}
	}

	titleStyle := styles.HeaderLabelStyle
	if f.focused {
		titleStyle = styles.CheckboxFocusedStyle
	}
	title := titleStyle.Render("Countries ") +
		styles.MutedTextStyle.Render("("+strconv.Itoa(checked)+"/"+strconv.Itoa(len(f.items))+")")

	if len(f.items) == 0 {
		return title + "\n" + styles.MutedTextStyle.Italic(true).Render("No countries")
	}

	f.viewport.SetContent(f.content())
	return title + "\n" + f.viewport.View()
}

func (f *CountryFilter) content() string {
	lines := make([]string, len(f.items))
	for i, cb := range f.items {
		line := cb.View()
		if lipgloss.Width(line) > f.width && f.width > 1 {
			line = cb.box() + " " + truncate(cb.Label(), f.width-4)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// syncCursor focuses the checkbox under the cursor and scrolls to it.
func (f *CountryFilter) syncCursor() {
	for i, cb := range f.items {
		if i == f.cursor && f.focused {
			cb.Focus()
		} else {
			cb.Blur()
		}
	}
	f.updateScroll()
}

func (f *CountryFilter) updateScroll() {
	f.viewport.SetContent(f.content())
	top := f.viewport.YOffset
	h := f.viewport.Height
	if f.cursor < top {
		top = f.cursor
	}
	if f.cursor >= top+h {
		top = f.cursor - h + 1
	}
	f.viewport.SetYOffset(max(top, 0))
}

// toggledToFilter turns a checkbox toggle into a filter message.
func toggledToFilter(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		if t, ok := cmd().(CheckboxToggledMsg); ok {
			return FilterToggledMsg{Country: t.ID, Selected: t.Checked}
		}
		return nil
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:max(n, 0)])
	}
	return string(r[:n-1]) + "…"
}
