package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arenalens/arenalens/internal/contract"
	"github.com/arenalens/arenalens/internal/prefstore"
	"github.com/arenalens/arenalens/schema"
)

// themeCmd shows the persisted theme preference.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the persisted theme preference.",
	Long: `Show the color theme stored in the preference database.

The preference survives across runs and machines sharing the same config
directory. When no preference was ever stored, the light theme is
reported.

Examples:
  # Show the current theme
  arenalens theme

  # Switch to the dark theme
  arenalens theme set dark`,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		store, err := prefstore.Open(cfg.PrefsPath)
		if err != nil {
			contract.LogFatal("Cannot open preference store", err)
		}
		defer func() { _ = store.Close() }()

		theme, err := store.Theme()
		if err != nil {
			contract.LogFatal("Cannot read theme preference", err)
		}
		cmd.Printf("%s\n", theme)
	},
}

// themeSetCmd persists a new theme preference.
var themeSetCmd = &cobra.Command{
	Use:     "set [light|dark]",
	Short:   "Persist the theme preference.",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := prefstore.Open(cfg.PrefsPath)
		if err != nil {
			contract.LogFatal("Cannot open preference store", err)
		}
		defer func() { _ = store.Close() }()

		theme := schema.Theme(args[0])
		if err := store.SetTheme(theme); err != nil {
			contract.LogFatal("Cannot persist theme preference", err)
		}
		cmd.Printf("Theme set to %s\n", theme)
	},
}
