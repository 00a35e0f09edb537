package canvas

import (
	"unicode/utf8"

	"github.com/dbmrq/bubblechart/internal/scale"
)

// drawChrome renders the parts of the chart that never change during a
// session: gridlines, axes, tick labels and axis titles.
func (c *Canvas) drawChrome() [][]Cell {
	g := newCells(c.cols, c.rows)
	left, right, top, bottom := c.plotBounds()
	ticks := c.chart.Ticks

	xTicks := c.scales.X.Ticks(ticks)
	yTicks := c.scales.Y.Ticks(ticks)

	// Dashed gridlines.
	for _, t := range xTicks {
		px, _ := c.PlotToPixel(c.scales.X.Apply(t), 0)
		col := c.colOf(px)
		for row := top; row < bottom; row++ {
			g[row][col] = Cell{Rune: '┊', FG: c.theme.Grid, Kind: KindGrid}
		}
	}
	for _, t := range yTicks {
		_, py := c.PlotToPixel(0, c.scales.Y.Apply(t))
		row := c.rowOf(py)
		if row >= bottom {
			continue
		}
		for col := left + 1; col <= right; col++ {
			r := '┈'
			if g[row][col].Kind == KindGrid {
				r = '┼'
			}
			g[row][col] = Cell{Rune: r, FG: c.theme.Grid, Kind: KindGrid}
		}
	}

	// Axes.
	for col := left; col <= right; col++ {
		g[bottom][col] = Cell{Rune: '─', FG: c.theme.Axis, Kind: KindAxis}
	}
	for row := top; row < bottom; row++ {
		g[row][left] = Cell{Rune: '│', FG: c.theme.Axis, Kind: KindAxis}
	}
	g[bottom][left] = Cell{Rune: '└', FG: c.theme.Axis, Kind: KindAxis}

	// X tick marks and labels below the axis.
	xPrec := scale.TickPrecision(c.scales.X.TickStep(ticks))
	nextFree := 0
	for _, t := range xTicks {
		px, _ := c.PlotToPixel(c.scales.X.Apply(t), 0)
		col := c.colOf(px)
		if col != left {
			g[bottom][col] = Cell{Rune: '┬', FG: c.theme.Axis, Kind: KindAxis}
		}
		if bottom+1 >= c.rows {
			continue
		}
		label := c.format.Fixed(t, xPrec)
		n := utf8.RuneCountInString(label)
		start := col - n/2
		if start < nextFree || start+n > c.cols {
			continue
		}
		c.put(g, bottom+1, start, label, Cell{FG: c.theme.Label, Kind: KindLabel})
		nextFree = start + n + 1
	}

	// Y tick marks and labels left of the axis.
	yPrec := scale.TickPrecision(c.scales.Y.TickStep(ticks))
	lastRow := -1
	for _, t := range yTicks {
		_, py := c.PlotToPixel(0, c.scales.Y.Apply(t))
		row := c.rowOf(py)
		if row > bottom || row == lastRow {
			continue
		}
		lastRow = row
		if row < bottom {
			g[row][left] = Cell{Rune: '┤', FG: c.theme.Axis, Kind: KindAxis}
		}
		label := c.format.Fixed(t, yPrec)
		start := left - 1 - utf8.RuneCountInString(label)
		if start < 0 {
			continue
		}
		c.put(g, row, start, label, Cell{FG: c.theme.Label, Kind: KindLabel})
	}

	// Axis titles. The x title sits 50px below the axis; the y title is
	// written across the top margin, above the axis.
	titleRow := c.rowOf(float64(c.chart.Height-c.chart.Margin.Bottom) + 50)
	if titleRow <= bottom+1 {
		titleRow = bottom + 2
	}
	if titleRow < c.rows {
		centre := (left + right) / 2
		start := max(centre-utf8.RuneCountInString(XTitle)/2, 0)
		c.put(g, titleRow, start, XTitle, Cell{FG: c.theme.Title, Kind: KindTitle})
	}
	yRow := max(top-1, 0)
	c.put(g, yRow, left, YTitle, Cell{FG: c.theme.Title, Kind: KindTitle})

	return g
}

// put writes s starting at (row, col) with the colour and kind of tmpl,
// clipping at the canvas edge.
func (c *Canvas) put(g [][]Cell, row, col int, s string, tmpl Cell) {
	if row < 0 || row >= c.rows {
		return
	}
	for _, r := range s {
		if col >= c.cols {
			return
		}
		if col >= 0 {
			cell := tmpl
			cell.Rune = r
			g[row][col] = cell
		}
		col++
	}
}

func newCells(cols, rows int) [][]Cell {
	g := make([][]Cell, rows)
	for r := range g {
		g[r] = make([]Cell, cols)
		for c := range g[r] {
			g[r][c] = blank
		}
	}
	return g
}
