package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arenalens/arenalens/core"
	"github.com/arenalens/arenalens/internal/contract"
)

// exportCmd writes the current leaderboard view in the re-import format.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current leaderboard view for re-import.",
	Long: `Write the filtered, sorted leaderboard view as a CSV file that
parses back into the same models.

The file carries the fixed nine-column header with "-" marking absent
ranks, so a round trip through the parser preserves every model and its
overall rank. Search, sort, arena and limit flags shape the exported view
exactly as they shape the rankings table.

Examples:
  # Export the default view
  arenalens export --output-file leaderboard.csv

  # Export only coding-sorted claude models
  arenalens export --search claude --sort coding --output-file claude.csv

  # Export as Parquet instead
  arenalens export --output parquet --output-file leaderboard.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot export leaderboard", err)
		}
	},
}
