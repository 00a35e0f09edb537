package canvas

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/bubblechart/internal/chart"
)

// Picture is a composed grid of cells, ready to print.
type Picture struct {
	Cells [][]Cell
}

// At returns the cell at (col, row).
func (p Picture) At(col, row int) Cell {
	return p.Cells[row][col]
}

// subpixel is one half of a cell.
type subpixel struct {
	set   bool
	color lipgloss.TerminalColor
	kind  Kind
}

// Draw composes frame over the static chart: the year numeral above the
// gridlines, then bubbles in draw order.
func (c *Canvas) Draw(frame chart.Frame) Picture {
	cells := make([][]Cell, c.rows)
	for r := range cells {
		cells[r] = append([]Cell(nil), c.chrome[r]...)
	}

	sub := make([][]subpixel, c.rows*2)
	for r := range sub {
		sub[r] = make([]subpixel, c.cols)
	}

	if frame.HasLabel {
		c.paintNumeral(sub, strconv.Itoa(frame.Year))
	}
	for _, b := range frame.Bubbles {
		c.paintDisc(sub, b)
	}

	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top, bot := sub[row*2][col], sub[row*2+1][col]
			if !top.set && !bot.set {
				continue
			}
			cells[row][col] = halfBlock(top, bot)
		}
	}
	return Picture{Cells: cells}
}

func halfBlock(top, bot subpixel) Cell {
	kind := top.kind
	if bot.kind > kind {
		kind = bot.kind
	}
	switch {
	case top.set && bot.set && top.color == bot.color:
		return Cell{Rune: '█', FG: top.color, Kind: kind}
	case top.set && bot.set:
		return Cell{Rune: '▀', FG: top.color, BG: bot.color, Kind: kind}
	case top.set:
		return Cell{Rune: '▀', FG: top.color, Kind: kind}
	default:
		return Cell{Rune: '▄', FG: bot.color, Kind: kind}
	}
}

// paintNumeral draws s in the block font, centred in the plot area and
// about two fifths of its height.
func (c *Canvas) paintNumeral(sub [][]subpixel, s string) {
	left, right, top, bottom := c.plotBounds()
	plotW := right - left
	plotH := (bottom - top) * 2
	if plotW <= 0 || plotH <= 0 {
		return
	}

	px := max(plotH*2/5/glyphH, 1)
	for px > 1 {
		if w, _ := numeralSize(s, px); w <= plotW {
			break
		}
		px--
	}
	w, h := numeralSize(s, px)
	x0 := left + (plotW-w)/2
	y0 := top*2 + (plotH-h)/2

	for i, ch := range []rune(s) {
		glyph, ok := glyphs[ch]
		if !ok {
			continue
		}
		gx := x0 + i*(glyphW+1)*px
		for gy, line := range glyph {
			for gxi, bit := range line {
				if bit != '#' {
					continue
				}
				for dy := 0; dy < px; dy++ {
					for dx := 0; dx < px; dx++ {
						c.setSub(sub, gx+gxi*px+dx, y0+gy*px+dy, c.theme.Year, KindYear)
					}
				}
			}
		}
	}
}

// paintDisc fills the half-cells whose centres fall inside the bubble. A
// bubble smaller than a half-cell still marks the half-cell under its centre.
func (c *Canvas) paintDisc(sub [][]subpixel, b chart.BubbleView) {
	if b.R <= 0 {
		return
	}
	cx, cy := c.PlotToPixel(b.X, b.Y)
	color := lipgloss.Color(b.Color)
	colW, subH := c.pxPerCol(), c.pxPerSub()

	c0 := int(math.Floor((cx - b.R) / colW))
	c1 := int(math.Floor((cx + b.R) / colW))
	s0 := int(math.Floor((cy - b.R) / subH))
	s1 := int(math.Floor((cy + b.R) / subH))
	r2 := b.R * b.R

	for s := s0; s <= s1; s++ {
		py := (float64(s) + 0.5) * subH
		for col := c0; col <= c1; col++ {
			px := (float64(col) + 0.5) * colW
			if (px-cx)*(px-cx)+(py-cy)*(py-cy) <= r2 {
				c.setSub(sub, col, s, color, KindBubble)
			}
		}
	}
	c.setSub(sub, int(math.Floor(cx/colW)), int(math.Floor(cy/subH)), color, KindBubble)
}

func (c *Canvas) setSub(sub [][]subpixel, col, s int, color lipgloss.TerminalColor, kind Kind) {
	if col < 0 || col >= c.cols || s < 0 || s >= len(sub) {
		return
	}
	sub[s][col] = subpixel{set: true, color: color, kind: kind}
}
