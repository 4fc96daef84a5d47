package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/arenalens/arenalens/internal/contract"
	"github.com/arenalens/arenalens/internal/parquet"
	"github.com/arenalens/arenalens/schema"
)

// arenaCSVHeader is the column order of arena CSV output, with the arena id
// prepended when several arenas share one file.
var arenaCSVHeader = []string{"rank", "model", "score", "ci_95", "votes", "organization", "license"}

// WriteArenaTable outputs one arena's leaderboard, dispatching based on the
// output format configured.
func WriteArenaTable(arena schema.Arena, entries []schema.ArenaEntry, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, arenaJSONEntries(entries))
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, arenaCSVHeader, func(cw *csv.Writer) error {
				return writeArenaCSVRows(cw, "", entries, fmtFloat)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeArenaParquet(map[schema.Arena][]schema.ArenaEntry{arena: entries}, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "%s Arena\n\n", schema.ArenaLabel(arena)); err != nil {
				return err
			}
			return writeArenaTable(w, entries, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// WriteArenaTops outputs the top entries of every arena, dispatching based on
// the output format configured.
func WriteArenaTops(tops map[schema.Arena][]schema.ArenaEntry, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			output := make(map[string][]jsonEntry, len(tops))
			for arena, entries := range tops {
				output[string(arena)] = arenaJSONEntries(entries)
			}
			return writeJSON(w, output)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := append([]string{"arena"}, arenaCSVHeader...)
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, arena := range schema.AllArenas {
					if err := writeArenaCSVRows(cw, string(arena), tops[arena], fmtFloat); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeArenaParquet(tops, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			for _, arena := range schema.AllArenas {
				if _, err := fmt.Fprintf(w, "%s Arena\n\n", schema.ArenaLabel(arena)); err != nil {
					return err
				}
				if len(tops[arena]) == 0 {
					if _, err := fmt.Fprintf(w, "  (no data)\n\n"); err != nil {
						return err
					}
					continue
				}
				if err := writeArenaTable(w, tops[arena], cfg, fmtFloat); err != nil {
					return err
				}
				if _, err := fmt.Fprintf(w, "\n"); err != nil {
					return err
				}
			}
			return nil
		}, "Wrote table")
	}
}

// writeArenaTable generates and writes one arena's human-readable table.
func writeArenaTable(w io.Writer, entries []schema.ArenaEntry, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Model", "Score", "CI 95", "Votes", "Organization", "License"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxName := getMaxTableNameWidth(cfg, 6)
	var data [][]string
	for _, e := range entries {
		data = append(data, []string{
			contract.ColorRank(e.Rank, cfg.UseColors),
			contract.TruncateName(e.Model, maxName),
			formatScore(e, fmtFloat),
			formatCI(e, fmtFloat),
			formatVotes(e),
			e.Organization,
			e.License,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d entries\n", len(entries))
	return err
}

// writeArenaCSVRows writes arena entries as CSV records, prefixed with the
// arena id when one is given.
func writeArenaCSVRows(cw *csv.Writer, arena string, entries []schema.ArenaEntry, fmtFloat func(float64) string) error {
	for _, e := range entries {
		rec := []string{
			strconv.Itoa(e.Rank),
			e.Model,
			formatScore(e, fmtFloat),
			formatCI(e, fmtFloat),
			formatVotes(e),
			e.Organization,
			e.License,
		}
		if arena != "" {
			rec = append([]string{arena}, rec...)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// jsonEntry is the JSON-safe shape of an arena entry: absent scores and
// intervals become null instead of NaN.
type jsonEntry struct {
	Rank         int      `json:"rank"`
	Model        string   `json:"model"`
	Score        *float64 `json:"score"`
	CI95         *float64 `json:"ci_95"`
	Votes        *int     `json:"votes"`
	Organization string   `json:"organization"`
	License      string   `json:"license"`
}

// newJSONEntry converts one arena entry to its JSON-safe shape.
func newJSONEntry(e schema.ArenaEntry) jsonEntry {
	entry := jsonEntry{
		Rank:         e.Rank,
		Model:        e.Model,
		Organization: e.Organization,
		License:      e.License,
	}
	if e.HasScore() {
		score := e.Score
		entry.Score = &score
	}
	if e.HasCI() {
		ci := e.CI95
		entry.CI95 = &ci
	}
	if e.VotesKnown {
		votes := e.Votes
		entry.Votes = &votes
	}
	return entry
}

// arenaJSONEntries converts entries to their JSON-safe shapes.
func arenaJSONEntries(entries []schema.ArenaEntry) []jsonEntry {
	output := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		output = append(output, newJSONEntry(e))
	}
	return output
}

// writeArenaParquet writes arena entries as a Parquet file.
func writeArenaParquet(arenas map[schema.Arena][]schema.ArenaEntry, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	if err := parquet.WriteArenaEntriesParquet(parquet.ArenaRows(arenas), cfg.OutputFile); err != nil {
		return fmt.Errorf("error writing Parquet output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// formatScore renders an entry's score, using "-" for the absent marker.
func formatScore(e schema.ArenaEntry, fmtFloat func(float64) string) string {
	if !e.HasScore() {
		return "-"
	}
	return fmtFloat(e.Score)
}

// formatCI renders an entry's confidence half-width, using "-" when absent.
func formatCI(e schema.ArenaEntry, fmtFloat func(float64) string) string {
	if !e.HasCI() {
		return "-"
	}
	return "±" + fmtFloat(e.CI95)
}

// formatVotes renders an entry's vote count, using "-" when absent.
func formatVotes(e schema.ArenaEntry) string {
	if !e.VotesKnown {
		return "-"
	}
	return strconv.Itoa(e.Votes)
}
