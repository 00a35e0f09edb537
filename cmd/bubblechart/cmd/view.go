package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dbmrq/bubblechart/internal/logging"
	"github.com/dbmrq/bubblechart/internal/tui"
)

// viewCmd represents the view command.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive bubble chart",
	Long: `Open the interactive bubble chart in the terminal.

Keys:
  ←/→ Home/End   change the year
  Space          play or pause the years
  Tab            switch between the chart and the country list
  ↑/↓ Enter      move and toggle countries (a: all, n: none)
  ?              show all shortcuts
  q              quit

Examples:
  bubblechart view                          # Use ./bubble_data.csv
  bubblechart view --data gapminder.csv     # Use another dataset
  bubblechart view --year 1990              # Start at 1990`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	addViewFlags(viewCmd)
}

func addViewFlags(c *cobra.Command) {
	c.Flags().Int("year", 0, "Year shown first (default: the earliest year)")
}

// runView is the main entry point for the view command.
func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	level, err := logLevel(cmd)
	if err != nil {
		return err
	}
	year, _ := cmd.Flags().GetInt("year")

	sessionID := logging.NewSessionID()
	logConfig := logging.DefaultConfig()
	logConfig.Level = level
	logConfig.Console = false // the TUI owns the terminal
	if err := logging.InitGlobal(logConfig); err != nil {
		// Non-fatal: the chart still works without a log file.
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	} else {
		defer func() { _ = logging.CloseGlobal() }()
		logging.Info("bubblechart starting",
			"version", Version,
			"session_id", sessionID,
			"data", cfg.Data.Path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(tui.Options{
		Context:   ctx,
		Config:    cfg,
		Year:      year,
		Logger:    logging.Global(),
		SessionID: sessionID,
	})
}
