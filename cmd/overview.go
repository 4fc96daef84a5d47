package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arenalens/arenalens/core"
	"github.com/arenalens/arenalens/internal/contract"
)

// overviewCmd renders the headline leaderboard view.
var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show headline stats and the top of the leaderboard.",
	Long: `Load every leaderboard file and show the headline view.

Displays:
- How many models are ranked and how many category columns were detected
- The top 10 models by overall rank across all categories
- The leading model in each headline category

Examples:
  # Read CSV files from the current directory
  arenalens overview

  # Read from a published leaderboard mirror
  arenalens overview --data-url https://example.com/leaderboards

  # Write the overview as JSON for downstream tooling
  arenalens overview --output json --output-file overview.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteOverview(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build overview", err)
		}
	},
}
