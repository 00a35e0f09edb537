package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/bubblechart/internal/canvas"
	"github.com/dbmrq/bubblechart/internal/chart"
	"github.com/dbmrq/bubblechart/internal/config"
	"github.com/dbmrq/bubblechart/internal/tui/styles"
)

// ChartView draws a session's frames on a canvas and turns mouse events
// over the canvas into pointer enter, move and leave.
type ChartView struct {
	session *chart.Session
	chart   config.ChartConfig
	canvas  *canvas.Canvas

	cols, rows int
	x, y       int // screen position of the top-left cell
	gapX, gapY int // least cells between the pointer and the tooltip
	hover      string
}

// NewChartView creates a chart view of cols x rows cells.
func NewChartView(s *chart.Session, cfg config.ChartConfig, cols, rows int) *ChartView {
	v := &ChartView{
		session: s,
		chart:   cfg,
		gapX:    config.DefaultTooltipCellX,
		gapY:    config.DefaultTooltipCellY,
	}
	v.SetSize(cols, rows)
	return v
}

// SetSize rebuilds the canvas for a new size.
func (v *ChartView) SetSize(cols, rows int) {
	v.cols, v.rows = max(cols, 1), max(rows, 1)
	v.canvas = canvas.New(v.cols, v.rows, v.chart, v.session.Scales(),
		canvas.WithFormatter(v.session.Format()))
}

// SetTooltipGap sets the least distance in cells between the pointer and
// the tooltip box. The pixel offset of the tooltip still applies when it is
// larger.
func (v *ChartView) SetTooltipGap(cols, rows int) {
	v.gapX, v.gapY = max(cols, 0), max(rows, 0)
}

// Size returns the canvas size in cells.
func (v *ChartView) Size() (cols, rows int) {
	return v.cols, v.rows
}

// SetOrigin sets where the canvas starts on screen, for mouse translation.
func (v *ChartView) SetOrigin(x, y int) {
	v.x, v.y = x, y
}

// Hover returns the key of the bubble under the pointer, or "".
func (v *ChartView) Hover() string {
	return v.hover
}

// Contains reports whether the screen position lies on the canvas.
func (v *ChartView) Contains(x, y int) bool {
	col, row := x-v.x, y-v.y
	return col >= 0 && col < v.cols && row >= 0 && row < v.rows
}

// HandleMouse updates the tooltip for a mouse event. It reports whether
// the tooltip changed.
func (v *ChartView) HandleMouse(msg tea.MouseMsg, now time.Time) bool {
	if !v.Contains(msg.X, msg.Y) {
		return v.leave()
	}

	col, row := msg.X-v.x, msg.Y-v.y
	key, ok := v.canvas.HitTest(v.session.Frame(now), col, row)
	if !ok {
		return v.leave()
	}

	px, py := v.canvas.CellToPixel(col, row)
	if key == v.hover {
		v.session.PointerMove(px, py)
		return true
	}

	v.leave()
	if v.session.PointerEnter(key, px, py, now) {
		v.hover = key
	}
	return true
}

// Sync forgets the hovered bubble once the session has hidden its tooltip.
func (v *ChartView) Sync() {
	if !v.session.Tooltip().Visible() {
		v.hover = ""
	}
}

func (v *ChartView) leave() bool {
	if v.hover == "" {
		return false
	}
	v.session.PointerLeave()
	v.hover = ""
	return true
}

// View renders the frame at now with the tooltip on top.
func (v *ChartView) View(now time.Time) string {
	pic := v.canvas.Draw(v.session.Frame(now))

	tt := v.session.Tooltip()
	if tt.Visible() {
		col, row := v.tooltipCell(tt)
		pic = pic.Overlay(col, row, TooltipBox(tt.Title(), tt.Lines()),
			styles.TooltipForeground, styles.TooltipBackground)
	}
	return pic.String()
}

// tooltipCell returns the top-left cell of the tooltip box.
func (v *ChartView) tooltipCell(tt *chart.Tooltip) (col, row int) {
	col, row = v.canvas.PixelToCell(tt.Position())
	pc, pr := v.canvas.PixelToCell(tt.Pointer())
	return max(col, pc+v.gapX), max(row, pr+v.gapY)
}
