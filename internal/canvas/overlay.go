package canvas

import (
	"github.com/charmbracelet/lipgloss"
)

// Overlay returns a copy of p with lines painted as a block whose top-left
// corner is at (col, row). A block that would run past the right or bottom
// edge is flipped to the other side of the anchor, then clamped to the
// picture.
func (p Picture) Overlay(col, row int, lines []string, fg, bg lipgloss.TerminalColor) Picture {
	rows := len(p.Cells)
	if rows == 0 || len(lines) == 0 {
		return p
	}
	cols := len(p.Cells[0])

	w := 0
	block := make([][]rune, len(lines))
	for i, l := range lines {
		block[i] = []rune(l)
		w = max(w, len(block[i]))
	}
	h := len(block)

	if col+w > cols {
		col = col - w - 1
	}
	if row+h > rows {
		row = row - h - 1
	}
	col = clamp(col, 0, max(cols-w, 0))
	row = clamp(row, 0, max(rows-h, 0))

	out := Picture{Cells: make([][]Cell, rows)}
	for r := range p.Cells {
		out.Cells[r] = append([]Cell(nil), p.Cells[r]...)
	}
	for i, line := range block {
		r := row + i
		if r >= rows {
			break
		}
		for j := 0; j < w; j++ {
			c := col + j
			if c >= cols {
				break
			}
			ch := ' '
			if j < len(line) {
				ch = line[j]
			}
			out.Cells[r][c] = Cell{Rune: ch, FG: fg, BG: bg, Kind: KindOverlay}
		}
	}
	return out
}
