package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arenalens/arenalens/core"
	"github.com/arenalens/arenalens/internal/contract"
)

// rankingsCmd renders the filtered, sorted leaderboard.
var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Show the leaderboard with search, sort and arena filters.",
	Long: `Render the primary leaderboard as a filtered, sorted table.

The canonical data never changes; every flag produces a fresh view:
- --search keeps models whose name contains the term (case-insensitive)
- --sort orders by any category, with unranked models last
- --arena restricts to models present in one arena, or shows that
  arena's own leaderboard with scores, votes and confidence intervals
- --limit caps the number of rows

Examples:
  # Top 25 models by overall rank
  arenalens rankings

  # Every claude model, ordered by coding rank
  arenalens rankings --search claude --sort coding

  # The WebDev arena leaderboard
  arenalens rankings --arena webdev --limit 50

  # Export the current view to CSV
  arenalens rankings --sort math --output csv --output-file math.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRankings(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build rankings", err)
		}
	},
}
