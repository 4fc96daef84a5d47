package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arenalens/arenalens/core"
	"github.com/arenalens/arenalens/internal/contract"
)

// arenasCmd renders the top entries of every arena.
var arenasCmd = &cobra.Command{
	Use:   "arenas",
	Short: "Show the top 10 of every arena side by side.",
	Long: `Render the top 10 entries of each arena leaderboard.

Arenas are fetched concurrently and independently: an arena whose file is
missing or unreadable shows up empty without affecting the others.

Examples:
  # Top 10 per arena from local files
  arenalens arenas

  # Same view as a single CSV with an arena column
  arenalens arenas --output csv --output-file tops.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteArenas(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build arena tops", err)
		}
	},
}
