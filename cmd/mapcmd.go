package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arenalens/arenalens/core"
	"github.com/arenalens/arenalens/internal/contract"
)

// mapCmd renders the per-country aggregates.
var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Show model counts by country of origin.",
	Long: `Attribute models to countries using the curated name-prefix and
organization tables, then count distinct models per country.

Models whose name matches no known prefix are dropped from the primary
attribution; arena entries fall back to their stated organization before
landing in "unknown".

Examples:
  # Country counts from all leaderboards
  arenalens map

  # JSON for a map widget
  arenalens map --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMap(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build country view", err)
		}
	},
}
