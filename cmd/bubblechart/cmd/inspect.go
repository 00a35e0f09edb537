package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbmrq/bubblechart/internal/dataset"
)

// inspectCmd represents the inspect command.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize the dataset",
	Long: `Load the dataset and print its years, countries and skipped rows.

Rows with a missing column or a value that is not a number are skipped
by the chart. inspect lists each of them with its line number.

Examples:
  bubblechart inspect
  bubblechart inspect --data gapminder.csv`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ds, report, err := dataset.Load(cmd.Context(), cfg.Data.Path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Source:    %s\n", report.Source)
	fmt.Fprintf(out, "Rows:      %d (%d loaded, %d skipped)\n", report.Rows, report.Loaded, report.SkippedCount())

	if lo, hi, ok := ds.YearRange(); ok {
		fmt.Fprintf(out, "Years:     %d–%d (%d with data)\n", lo, hi, len(ds.Years()))
	} else {
		fmt.Fprintln(out, "Years:     none")
	}

	countries := ds.Countries()
	fmt.Fprintf(out, "Countries: %d\n", len(countries))
	if len(countries) > 0 {
		fmt.Fprintf(out, "  %s\n", strings.Join(countries, ", "))
	}

	if report.SkippedCount() > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Skipped rows:")
		for _, row := range report.Skipped {
			fmt.Fprintf(out, "  %s\n", row)
		}
	}
	return nil
}
