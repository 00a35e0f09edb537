package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// String renders the picture with one line per row. Runs of cells sharing
// colours are styled together.
func (p Picture) String() string {
	var b strings.Builder
	for i, row := range p.Cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeRow(&b, row)
	}
	return b.String()
}

// Plain renders the picture without colour.
func (p Picture) Plain() string {
	var b strings.Builder
	for i, row := range p.Cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteRune(cell.Rune)
		}
	}
	return b.String()
}

func writeRow(b *strings.Builder, row []Cell) {
	var run []rune
	var fg, bg lipgloss.TerminalColor

	flush := func() {
		if len(run) == 0 {
			return
		}
		if fg == nil && bg == nil {
			b.WriteString(string(run))
		} else {
			style := lipgloss.NewStyle()
			if fg != nil {
				style = style.Foreground(fg)
			}
			if bg != nil {
				style = style.Background(bg)
			}
			b.WriteString(style.Render(string(run)))
		}
		run = run[:0]
	}

	for _, cell := range row {
		if cell.FG != fg || cell.BG != bg {
			flush()
			fg, bg = cell.FG, cell.BG
		}
		run = append(run, cell.Rune)
	}
	flush()
}
