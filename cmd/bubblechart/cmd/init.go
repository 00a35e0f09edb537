package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbmrq/bubblechart/internal/config"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write .bubblechart/config.yaml with the default settings.

The file sets the dataset path, chart size and margins, the colour palette,
transition durations, the tooltip offset, autoplay and the number locale.
Every setting can also be overridden with a BUBBLECHART_* environment
variable.

Use --force to overwrite an existing file.

Examples:
  bubblechart init          # Create .bubblechart/config.yaml
  bubblechart init --force  # Replace it with the defaults`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	addInitFlags(initCmd)
}

func addInitFlags(c *cobra.Command) {
	c.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

// runInit is the main entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.NewConfig()
	if data, _ := cmd.Flags().GetString("data"); data != "" {
		cfg.Data.Path = data
	}
	if err := config.Save(cfg, path); err != nil {
		return err
	}

	cmd.Printf("Created %s\n", path)
	cmd.Println("Edit it to change the dataset, colours or animation.")
	cmd.Println("Run 'bubblechart' to open the chart.")
	return nil
}
