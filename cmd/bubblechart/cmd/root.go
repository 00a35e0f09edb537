// Package cmd provides the CLI commands for bubblechart.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbmrq/bubblechart/internal/config"
	charterrors "github.com/dbmrq/bubblechart/internal/errors"
	"github.com/dbmrq/bubblechart/internal/logging"
)

// Version information, set from main before Execute.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bubblechart",
	Short: "Animated bubble chart of GNI, life expectancy and population",
	Long: `bubblechart draws an animated bubble chart in the terminal.

Each bubble is a country in the selected year: GNI per capita on the x axis,
life expectancy on the y axis, and population as the bubble area. Move the
year slider or toggle countries and the bubbles enter, move and exit with
eased transitions. Hover a bubble to see its values.

The CSV needs the columns country, year, gni_per_capita, life_expectancy
and population.`,
	// With no subcommand bubblechart opens the chart, same as "bubblechart view".
	RunE:          runView,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	addGlobalFlags(rootCmd)
	addViewFlags(rootCmd)
}

// addGlobalFlags registers the flags shared by every command.
func addGlobalFlags(c *cobra.Command) {
	c.PersistentFlags().String("config", "", "Path to the config file (default .bubblechart/config.yaml)")
	c.PersistentFlags().String("data", "", "Path to the CSV dataset (overrides data.path)")
	c.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("bubblechart {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, charterrors.FormatAny(err))
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}

// loadConfig reads the optional config file and applies the --data flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadOptional(path)
	if err != nil {
		return nil, err
	}
	if data, _ := cmd.Flags().GetString("data"); data != "" {
		cfg.Data.Path = data
	}
	return cfg, nil
}

// logLevel parses the --log-level flag.
func logLevel(cmd *cobra.Command) (logging.Level, error) {
	s, _ := cmd.Flags().GetString("log-level")
	return logging.ParseLevel(s)
}

// stderrLogger installs a global logger on the command's error stream, for
// commands that print to the terminal instead of drawing a full screen.
// Callers restore the no-op logger with logging.SetGlobal(nil).
func stderrLogger(cmd *cobra.Command) (*logging.Logger, error) {
	level, err := logLevel(cmd)
	if err != nil {
		return nil, err
	}
	l := logging.NewWithWriter(cmd.ErrOrStderr(), &logging.Config{Level: level})
	logging.SetGlobal(l)
	return l, nil
}
