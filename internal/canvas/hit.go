package canvas

import (
	"math"

	"github.com/dbmrq/bubblechart/internal/chart"
)

// HitTest returns the key of the topmost bubble drawn in the cell at (col, row).
func (c *Canvas) HitTest(frame chart.Frame, col, row int) (string, bool) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return "", false
	}
	for i := len(frame.Bubbles) - 1; i >= 0; i-- {
		if c.covers(frame.Bubbles[i], col, row) {
			return frame.Bubbles[i].Key, true
		}
	}
	return "", false
}

// covers mirrors paintDisc for a single cell.
func (c *Canvas) covers(b chart.BubbleView, col, row int) bool {
	if b.R <= 0 {
		return false
	}
	cx, cy := c.PlotToPixel(b.X, b.Y)
	colW, subH := c.pxPerCol(), c.pxPerSub()

	if int(math.Floor(cx/colW)) == col && int(math.Floor(cy/subH))/2 == row {
		return true
	}
	px := (float64(col) + 0.5) * colW
	for s := row * 2; s <= row*2+1; s++ {
		py := (float64(s) + 0.5) * subH
		if (px-cx)*(px-cx)+(py-cy)*(py-cy) <= b.R*b.R {
			return true
		}
	}
	return false
}
