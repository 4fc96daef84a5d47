package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arenalens/arenalens/core"
	"github.com/arenalens/arenalens/internal/contract"
)

// orgsCmd renders the per-organization aggregates.
var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "Show each organization's footprint across arenas.",
	Long: `Aggregate arena entries by organization.

For each organization this shows its resolved country, how many distinct
models it fields, how many arenas it appears in, and its entry count and
mean score across all arenas.

Examples:
  # All organizations
  arenalens orgs

  # Focus on a few organizations
  arenalens orgs --org-filter Google,OpenAI,Anthropic

  # CSV for a spreadsheet
  arenalens orgs --output csv --output-file orgs.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteOrgs(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build organization view", err)
		}
	},
}
