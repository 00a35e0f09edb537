package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/bubblechart/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show detailed version information for bubblechart.

Displays the current version, commit hash, build date,
and Go/platform information.

Examples:
  bubblechart version          # Show detailed version info
  bubblechart version --json   # Print the same fields as JSON`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	addVersionFlags(versionCmd)
}

func addVersionFlags(c *cobra.Command) {
	c.Flags().Bool("json", false, "Print version information as JSON")
}

// runVersion handles the version command.
func runVersion(cmd *cobra.Command, args []string) error {
	info := version.NewInfo(Version, Commit, Date)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out, err := info.JSON()
		if err != nil {
			return err
		}
		cmd.Println(out)
		return nil
	}

	cmd.Println(info.FullString())
	return nil
}
