package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arenalens/arenalens/core"
	"github.com/arenalens/arenalens/internal/contract"
)

// analyticsCmd computes and renders the full analytics report.
var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show derived statistics across categories and arenas.",
	Long: `Compute the full analytics report from the loaded leaderboards.

Includes:
- Spearman correlation of each category against the overall ranking
- Bracketed 0-100 performance averages for spotlighted categories
- Score standard deviation and concentration ratio per arena
- Mean top-20 rank spread and open vs proprietary score averages
- Organization versatility and top-10 market share
- Overlapping confidence intervals, emerging models, arena leaders

Every statistic is recomputed from the raw data on each run; tweak the
controls without reloading anything.

Examples:
  # Full report with default controls
  arenalens analytics

  # Wider versatility cutoff and CR5 concentration
  arenalens analytics --versatility-top-n 5 --cr-top-n 5

  # Track different organizations in the market-share view
  arenalens analytics --market-orgs Google,Meta,Mistral

  # Machine-readable report
  arenalens analytics --output json --output-file report.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalytics(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build analytics", err)
		}
	},
}
