package cmd

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/dbmrq/bubblechart/internal/chart"
	"github.com/dbmrq/bubblechart/internal/dataset"
	charterrors "github.com/dbmrq/bubblechart/internal/errors"
	"github.com/dbmrq/bubblechart/internal/export"
	"github.com/dbmrq/bubblechart/internal/logging"
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the chart for one year to an image",
	Long: `Write the settled chart for one year to an SVG, PNG or PDF file.

The image uses the same axes, bubble sizes and colours as the interactive
chart. The format follows the file extension. Use --out - to write SVG to
standard output.

Examples:
  bubblechart export --year 2000 --out frame.svg
  bubblechart export --year 2000 --out frame.png --country Brazil --country India
  bubblechart export --out - > first-year.svg`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addExportFlags(exportCmd)
}

func addExportFlags(c *cobra.Command) {
	c.Flags().Int("year", 0, "Year to draw (default: the earliest year)")
	c.Flags().StringP("out", "o", "", "Output file, or - for SVG on stdout (default: bubblechart_<year>.svg)")
	c.Flags().StringArray("country", nil, "Only draw this country (repeatable)")
}

// runExport loads the dataset and writes one frame.
func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := stderrLogger(cmd)
	if err != nil {
		return err
	}
	defer logging.SetGlobal(nil)

	ds, report, err := dataset.Load(cmd.Context(), cfg.Data.Path)
	if err != nil {
		return err
	}
	report.Log(logger)

	now := time.Now()
	session := chart.NewSession(ds, cfg, chart.WithLogger(logger))
	year, _ := cmd.Flags().GetInt("year")
	session.Start(year, now)

	countries, _ := cmd.Flags().GetStringArray("country")
	if err := selectCountries(session, ds, countries, now); err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = fmt.Sprintf("bubblechart_%d.svg", session.Year())
	}
	opts := export.OptionsFromConfig(cfg.Chart)

	if out == "-" {
		return export.Write(cmd.OutOrStdout(), session, session.Year(), ".svg", opts)
	}
	if err := export.Snapshot(session, session.Year(), out, opts); err != nil {
		return err
	}
	cmd.Printf("Wrote %s (%d, %d bubbles)\n", out, session.Year(), len(session.Visible(session.Year())))
	return nil
}

// selectCountries narrows the selection to countries. An empty list keeps
// every country selected.
func selectCountries(s *chart.Session, ds *dataset.Dataset, countries []string, now time.Time) error {
	if len(countries) == 0 {
		return nil
	}
	known := ds.Countries()
	s.OnSelectNone(now)
	for _, c := range countries {
		c = norm.NFC.String(c)
		if !slices.Contains(known, c) {
			return charterrors.New(charterrors.ErrNotFound, fmt.Sprintf("unknown country %q", c)).
				WithDetails("known", strings.Join(known, ", "))
		}
		s.OnFilterToggled(c, true, now)
	}
	return nil
}
