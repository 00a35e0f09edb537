package components

import (
	"strings"
	"unicode/utf8"
)

// TooltipBox frames a title and detail lines in a rounded box, one string
// per row, padded to equal width.
func TooltipBox(title string, lines []string) []string {
	w := utf8.RuneCountInString(title)
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}

	pad := func(s string) string {
		return "│ " + s + strings.Repeat(" ", w-utf8.RuneCountInString(s)) + " │"
	}

	box := make([]string, 0, len(lines)+3)
	box = append(box, "╭"+strings.Repeat("─", w+2)+"╮")
	box = append(box, pad(title))
	for _, l := range lines {
		box = append(box, pad(l))
	}
	box = append(box, "╰"+strings.Repeat("─", w+2)+"╯")
	return box
}
