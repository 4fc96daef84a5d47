// Package contract has configuration and shared helpers for the CLI surface.
package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arenalens/arenalens/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 300
	DefaultPrecision   = 1
	DefaultDataDir     = "."
)

// Config holds the runtime configuration for a command run.
// This struct remains the "final, validated" config.
type Config struct {
	DataDir    string            // Directory holding the CSV sources
	DataURL    string            // Optional base URL; overrides DataDir when set
	ResultLimit int              // Maximum rows shown in ranked views
	Output     schema.OutputMode // Output format
	OutputFile string            // Output destination; empty = stdout
	Precision  int               // Decimal places for floats in output
	Width      int               // Terminal width override (0 = auto-detect)
	UseColors  bool              // Enable colored rank badges in table output

	Search string          // Case-insensitive model name filter for rankings
	SortBy schema.Category // Sort category for the rankings view
	Arena  schema.Arena    // Restrict the rankings view to one arena; empty = primary view

	Controls        schema.Controls // Adjustable analytics parameters
	MarketShareOrgs []string        // Organizations tracked by the market-share view

	PrefsPath string // SQLite file backing the theme preference
}

// ConfigRawInput holds the raw, unvalidated configuration merged from file,
// env and flags. Viper unmarshals into this struct.
type ConfigRawInput struct {
	DataDir         string   `mapstructure:"data-dir"`
	DataURL         string   `mapstructure:"data-url"`
	ResultLimit     int      `mapstructure:"limit"`
	Output          string   `mapstructure:"output"`
	OutputFile      string   `mapstructure:"output-file"`
	Precision       int      `mapstructure:"precision"`
	Width           int      `mapstructure:"width"`
	ColorStr        string   `mapstructure:"color"`
	Search          string   `mapstructure:"search"`
	SortBy          string   `mapstructure:"sort"`
	Arena           string   `mapstructure:"arena"`
	VersatilityTopN int      `mapstructure:"versatility-top-n"`
	CRTopN          int      `mapstructure:"cr-top-n"`
	OrgFilter       []string `mapstructure:"org-filter"`
	MarketShareOrgs []string `mapstructure:"market-orgs"`
	PrefsPath       string   `mapstructure:"prefs-path"`
}

// ProcessAndValidate populates cfg from the raw input, applying defaults and
// rejecting out-of-range values.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.DataDir = input.DataDir
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	cfg.DataURL = strings.TrimSuffix(input.DataURL, "/")

	cfg.ResultLimit = input.ResultLimit
	if cfg.ResultLimit < 1 {
		cfg.ResultLimit = DefaultResultLimit
	}
	if cfg.ResultLimit > MaxResultLimit {
		return fmt.Errorf("limit %d exceeds maximum of %d", cfg.ResultLimit, MaxResultLimit)
	}

	cfg.Output = schema.OutputMode(input.Output)
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode %q: must be text, csv, json, or parquet", input.Output)
	}

	cfg.OutputFile = input.OutputFile
	cfg.Precision = input.Precision
	if cfg.Precision < 0 {
		cfg.Precision = DefaultPrecision
	}
	cfg.Width = input.Width
	cfg.UseColors = !strings.EqualFold(input.ColorStr, "no")

	cfg.Search = input.Search
	if err := processSortBy(cfg, input.SortBy); err != nil {
		return err
	}
	if err := processArena(cfg, input.Arena); err != nil {
		return err
	}

	cfg.Controls = schema.Controls{
		VersatilityTopN: input.VersatilityTopN,
		CRTopN:          input.CRTopN,
		OrgFilter:       input.OrgFilter,
	}.Normalize()

	cfg.MarketShareOrgs = input.MarketShareOrgs
	if len(cfg.MarketShareOrgs) == 0 {
		cfg.MarketShareOrgs = schema.DefaultMarketShareOrgs
	}

	cfg.PrefsPath = input.PrefsPath
	if cfg.PrefsPath == "" {
		cfg.PrefsPath = DefaultPrefsPath()
	}
	return nil
}

// processSortBy validates the rankings sort category.
func processSortBy(cfg *Config, raw string) error {
	if raw == "" {
		cfg.SortBy = schema.CategoryOverall
		return nil
	}
	for _, cat := range schema.AllCategories {
		if string(cat) == raw {
			cfg.SortBy = cat
			return nil
		}
	}
	return fmt.Errorf("invalid sort category %q", raw)
}

// processArena validates the arena restriction. "all" and "" both mean the
// primary view.
func processArena(cfg *Config, raw string) error {
	if raw == "" || raw == "all" {
		cfg.Arena = ""
		return nil
	}
	for _, arena := range schema.AllArenas {
		if string(arena) == raw {
			cfg.Arena = arena
			return nil
		}
	}
	return fmt.Errorf("invalid arena %q", raw)
}

// DefaultPrefsPath places the preference database under the user config
// directory, falling back to the working directory when unavailable.
func DefaultPrefsPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".arenalens.db"
	}
	return filepath.Join(base, "arenalens", "prefs.db")
}
