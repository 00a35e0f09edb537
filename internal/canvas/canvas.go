// Package canvas rasterises chart frames onto a grid of terminal cells.
//
// The chart keeps its pixel coordinate space (by default 1000x600 with the
// plot area inset by the configured margins). Each terminal cell covers a
// rectangle of that space and is split into an upper and a lower half, so
// bubbles are drawn at twice the vertical resolution of the text.
package canvas

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/dbmrq/bubblechart/internal/config"
	"github.com/dbmrq/bubblechart/internal/numfmt"
	"github.com/dbmrq/bubblechart/internal/scale"
)

// Kind classifies what a cell shows.
type Kind int

// Cell kinds, from background to foreground.
const (
	KindEmpty Kind = iota
	KindGrid
	KindAxis
	KindLabel
	KindTitle
	KindYear
	KindBubble
	KindOverlay
)

// Cell is one terminal cell.
type Cell struct {
	Rune rune
	FG   lipgloss.TerminalColor
	BG   lipgloss.TerminalColor
	Kind Kind
}

var blank = Cell{Rune: ' '}

// Theme colours the static parts of the chart.
type Theme struct {
	Grid  lipgloss.TerminalColor
	Axis  lipgloss.TerminalColor
	Label lipgloss.TerminalColor
	Title lipgloss.TerminalColor
	Year  lipgloss.TerminalColor
}

// DefaultTheme uses light dashed gridlines and a faint year numeral.
func DefaultTheme() Theme {
	return Theme{
		Grid:  lipgloss.AdaptiveColor{Light: "#d1d1d1", Dark: "#3f4652"},
		Axis:  lipgloss.AdaptiveColor{Light: "#333333", Dark: "#9CA3AF"},
		Label: lipgloss.AdaptiveColor{Light: "#555555", Dark: "#9CA3AF"},
		Title: lipgloss.AdaptiveColor{Light: "#111111", Dark: "#F9FAFB"},
		Year:  lipgloss.AdaptiveColor{Light: "#dcdcdc", Dark: "#2b303a"},
	}
}

// Axis titles.
const (
	XTitle = "Income per capita (GNI)"
	YTitle = "Life expectancy"
)

// Option customises a Canvas.
type Option func(*Canvas)

// WithTheme sets the colours of the static chart parts.
func WithTheme(t Theme) Option {
	return func(c *Canvas) {
		c.theme = t
	}
}

// WithFormatter sets the formatter used for tick labels.
func WithFormatter(f *numfmt.Formatter) Option {
	return func(c *Canvas) {
		c.format = f
	}
}

// Canvas maps a chart onto cols x rows terminal cells. The axes, gridlines
// and labels are drawn once when the canvas is created.
type Canvas struct {
	cols, rows int
	chart      config.ChartConfig
	scales     scale.Set
	theme      Theme
	format     *numfmt.Formatter

	chrome [][]Cell
}

// New returns a canvas of cols x rows cells. Sizes below one cell are raised to one.
func New(cols, rows int, chart config.ChartConfig, scales scale.Set, opts ...Option) *Canvas {
	c := &Canvas{
		cols:   max(cols, 1),
		rows:   max(rows, 1),
		chart:  chart,
		scales: scales,
		theme:  DefaultTheme(),
		format: numfmt.New(language.English),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.chrome = c.drawChrome()
	return c
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

func (c *Canvas) pxPerCol() float64 {
	return float64(c.chart.Width) / float64(c.cols)
}

func (c *Canvas) pxPerRow() float64 {
	return float64(c.chart.Height) / float64(c.rows)
}

func (c *Canvas) pxPerSub() float64 {
	return c.pxPerRow() / 2
}

// PixelToCell returns the cell containing chart pixel (px, py), clamped to the canvas.
func (c *Canvas) PixelToCell(px, py float64) (col, row int) {
	col = clamp(int(math.Floor(px/c.pxPerCol())), 0, c.cols-1)
	row = clamp(int(math.Floor(py/c.pxPerRow())), 0, c.rows-1)
	return col, row
}

// CellToPixel returns the chart pixel at the centre of a cell.
func (c *Canvas) CellToPixel(col, row int) (px, py float64) {
	return (float64(col) + 0.5) * c.pxPerCol(), (float64(row) + 0.5) * c.pxPerRow()
}

// PlotToPixel converts plot-area coordinates, as produced by the scales, to chart pixels.
func (c *Canvas) PlotToPixel(x, y float64) (px, py float64) {
	return x + float64(c.chart.Margin.Left), y + float64(c.chart.Margin.Top)
}

// PixelToPlot converts chart pixels to plot-area coordinates.
func (c *Canvas) PixelToPlot(px, py float64) (x, y float64) {
	return px - float64(c.chart.Margin.Left), py - float64(c.chart.Margin.Top)
}

func (c *Canvas) colOf(px float64) int {
	col, _ := c.PixelToCell(px, 0)
	return col
}

func (c *Canvas) rowOf(py float64) int {
	_, row := c.PixelToCell(0, py)
	return row
}

// plotBounds returns the cell rectangle of the plot area. bottom is the axis row.
func (c *Canvas) plotBounds() (left, right, top, bottom int) {
	m := c.chart.Margin
	left = c.colOf(float64(m.Left))
	right = c.colOf(float64(c.chart.Width - m.Right))
	top = c.rowOf(float64(m.Top))
	bottom = c.rowOf(float64(c.chart.Height - m.Bottom))
	return left, right, top, bottom
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
