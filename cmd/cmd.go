// Package cmd defines the command-line interface for arenalens.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arenalens/arenalens/internal/contract"
	"github.com/arenalens/arenalens/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(arenasCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(orgsCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the theme subcommands to the parent theme command
	themeCmd.AddCommand(themeSetCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("data-dir", "d", contract.DefaultDataDir, "Directory holding the leaderboard CSV files")
	rootCmd.PersistentFlags().String("data-url", "", "Base URL serving the leaderboard CSV files (overrides --data-dir)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored rank badges in output (yes/no)")
	rootCmd.PersistentFlags().StringP("search", "s", "", "Filter models by case-insensitive name match")
	rootCmd.PersistentFlags().String("sort", string(schema.CategoryOverall), "Sort category: overall, expert, hardPrompts, coding, math, creativeWriting, instructionFollowing, longerQuery")
	rootCmd.PersistentFlags().StringP("arena", "a", "all", "Restrict to one arena: all, text, vision, t2i, t2v, image_edit, webdev, search")
	rootCmd.PersistentFlags().Int("versatility-top-n", schema.DefaultVersatilityTopN, "Top-N cutoff for the versatility index")
	rootCmd.PersistentFlags().Int("cr-top-n", schema.DefaultCRTopN, "Top-K numerator for the concentration ratio")
	rootCmd.PersistentFlags().StringSlice("org-filter", nil, "Organizations to keep in the footprint view (default: all)")
	rootCmd.PersistentFlags().StringSlice("market-orgs", schema.DefaultMarketShareOrgs, "Organizations tracked by the market-share view")
	rootCmd.PersistentFlags().String("prefs-path", "", "Path to the preference database (default: user config dir)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
