// Package export writes a still image of one year of the chart.
package export

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/dbmrq/bubblechart/internal/canvas"
	"github.com/dbmrq/bubblechart/internal/chart"
	"github.com/dbmrq/bubblechart/internal/config"
	"github.com/dbmrq/bubblechart/internal/dataset"
	charterrors "github.com/dbmrq/bubblechart/internal/errors"
	"github.com/dbmrq/bubblechart/internal/logging"
	"github.com/dbmrq/bubblechart/internal/numfmt"
	"github.com/dbmrq/bubblechart/internal/scale"
)

// PixelsToPoints converts CSS pixels (96 per inch) to points (72 per inch).
const PixelsToPoints = 0.75

// SupportedFormats lists the file extensions Snapshot can write.
var SupportedFormats = []string{".svg", ".png", ".pdf", ".jpg", ".jpeg", ".tif", ".tiff", ".eps"}

var (
	gridColor = color.RGBA{R: 0xd1, G: 0xd1, B: 0xd1, A: 0xff}
	yearColor = color.NRGBA{R: 0xdc, G: 0xdc, B: 0xdc, A: 0x4d}
)

// Options configures a snapshot.
type Options struct {
	// Width and Height of the image. Zero uses the chart size.
	Width  vg.Length
	Height vg.Length
	// Ticks is the suggested tick count per axis.
	Ticks int
}

// OptionsFromConfig sizes the snapshot like the interactive chart.
func OptionsFromConfig(cfg config.ChartConfig) Options {
	return Options{
		Width:  vg.Length(float64(cfg.Width) * PixelsToPoints),
		Height: vg.Length(float64(cfg.Height) * PixelsToPoints),
		Ticks:  cfg.Ticks,
	}
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = vg.Length(config.DefaultWidth * PixelsToPoints)
	}
	if o.Height <= 0 {
		o.Height = vg.Length(config.DefaultHeight * PixelsToPoints)
	}
	if o.Ticks <= 0 {
		o.Ticks = config.DefaultTicks
	}
	return o
}

// FormatOf returns the lower-case extension of path if it is supported.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(SupportedFormats, ext) {
		return "", charterrors.UnsupportedExportFormat(path, SupportedFormats)
	}
	return ext, nil
}

// Build lays out the settled state of year: every visible record drawn at
// its final position and radius over the session's fixed axes.
func Build(s *chart.Session, year int, opts Options) (*plot.Plot, error) {
	opts = opts.withDefaults()
	scales := s.Scales()
	format := s.Format()

	p := plot.New()
	p.Title.Text = strconv.Itoa(year)
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = canvas.XTitle
	p.Y.Label.Text = canvas.YTitle

	p.X.Min, p.X.Max = scales.X.Domain()
	p.Y.Min, p.Y.Max = scales.Y.Domain()
	p.X.Tick.Marker = ticker(opts.Ticks, format)
	p.Y.Tick.Marker = ticker(opts.Ticks, format)

	ls, err := layers(s, year, opts)
	if err != nil {
		return nil, err
	}
	p.Add(ls...)

	return p, nil
}

// Snapshot renders year and saves it to path. The format follows the extension.
func Snapshot(s *chart.Session, year int, path string, opts Options) error {
	if _, err := FormatOf(path); err != nil {
		return err
	}
	p, err := Build(s, year, opts)
	if err != nil {
		return charterrors.ExportFailed(path, err)
	}
	opts = opts.withDefaults()
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return charterrors.ExportFailed(path, err)
	}
	logging.Info("snapshot written", "path", path, "year", year, "bubbles", len(s.Visible(year)))
	return nil
}

// Write renders year to w in format, an extension such as ".svg".
func Write(w io.Writer, s *chart.Session, year int, format string, opts Options) error {
	format = strings.ToLower(format)
	if !strings.HasPrefix(format, ".") {
		format = "." + format
	}
	if !slices.Contains(SupportedFormats, format) {
		return charterrors.UnsupportedExportFormat(format, SupportedFormats)
	}
	p, err := Build(s, year, opts)
	if err != nil {
		return charterrors.ExportFailed("-", err)
	}
	opts = opts.withDefaults()
	wt, err := p.WriterTo(opts.Width, opts.Height, strings.TrimPrefix(format, "."))
	if err != nil {
		return charterrors.ExportFailed("-", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return charterrors.ExportFailed("-", err)
	}
	return nil
}

// layers returns the plotters of a snapshot from back to front: gridlines,
// the year numeral, then one scatter per visible record.
func layers(s *chart.Session, year int, opts Options) ([]plot.Plotter, error) {
	scales := s.Scales()

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Vertical.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Horizontal.Color = gridColor
	grid.Horizontal.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}

	watermark, err := yearLabel(scales, year, opts.Height)
	if err != nil {
		return nil, err
	}

	out := []plot.Plotter{grid, watermark}
	for _, rec := range s.Visible(year) {
		bubble, err := bubbleFor(rec, scales)
		if err != nil {
			return nil, err
		}
		out = append(out, bubble)
	}
	return out, nil
}

func bubbleFor(rec dataset.Record, scales scale.Set) (*plotter.Scatter, error) {
	sc, err := plotter.NewScatter(plotter.XYs{{X: rec.GNIPerCapita, Y: rec.LifeExpectancy}})
	if err != nil {
		return nil, fmt.Errorf("bubble %s: %w", rec.Country, err)
	}
	fill, err := colorful.Hex(scales.Color.Apply(rec.Country))
	if err != nil {
		return nil, fmt.Errorf("bubble %s: %w", rec.Country, err)
	}
	sc.GlyphStyle.Color = fill
	sc.GlyphStyle.Radius = vg.Points(scales.R.Apply(rec.Population) * PixelsToPoints)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	return sc, nil
}

// yearLabel is the large translucent numeral centred behind the bubbles.
func yearLabel(scales scale.Set, year int, height vg.Length) (*plotter.Labels, error) {
	x0, x1 := scales.X.Domain()
	y0, y1 := scales.Y.Domain()
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: (x0 + x1) / 2, Y: (y0 + y1) / 2}},
		Labels: []string{strconv.Itoa(year)},
	})
	if err != nil {
		return nil, fmt.Errorf("year label: %w", err)
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Font.Size = height * 0.3
		l.TextStyle[i].Color = yearColor
		l.TextStyle[i].XAlign = draw.XCenter
		l.TextStyle[i].YAlign = draw.YCenter
	}
	return l, nil
}

func ticker(count int, format *numfmt.Formatter) plot.Ticker {
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		prec := scale.TickPrecision(scale.TickStep(min, max, count))
		values := scale.Ticks(min, max, count)
		ticks := make([]plot.Tick, len(values))
		for i, v := range values {
			ticks[i] = plot.Tick{Value: v, Label: format.Fixed(v, prec)}
		}
		return ticks
	})
}
