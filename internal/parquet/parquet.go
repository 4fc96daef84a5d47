// Package parquet provides data structures and functions for exporting
// leaderboard data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/arenalens/arenalens/schema"
)

// ModelRow represents a single primary leaderboard row. Unranked categories
// are encoded as null rather than a sentinel rank.
type ModelRow struct {
	// Model is the unique model name
	Model string `parquet:"model,snappy"`

	// Overall is the overall rank; always present for built models
	Overall int32 `parquet:"overall,snappy"`

	// The remaining category ranks are nullable; a missing value means the
	// model is unranked in that category
	Expert               *int32 `parquet:"expert,optional,snappy"`
	HardPrompts          *int32 `parquet:"hard_prompts,optional,snappy"`
	Coding               *int32 `parquet:"coding,optional,snappy"`
	Math                 *int32 `parquet:"math,optional,snappy"`
	CreativeWriting      *int32 `parquet:"creative_writing,optional,snappy"`
	InstructionFollowing *int32 `parquet:"instruction_following,optional,snappy"`
	LongerQuery          *int32 `parquet:"longer_query,optional,snappy"`
}

// ArenaRow represents a single arena leaderboard entry tagged with its arena.
type ArenaRow struct {
	// Arena is the arena identifier
	Arena string `parquet:"arena,snappy"`

	// Rank is the 1-based position within the arena
	Rank int32 `parquet:"rank,snappy"`

	// Model is the model name
	Model string `parquet:"model,snappy"`

	// Score is the arena score (nullable)
	Score *float64 `parquet:"score,optional,snappy"`

	// CI95 is the 95% confidence half-width (nullable)
	CI95 *float64 `parquet:"ci_95,optional,snappy"`

	// Votes is the vote count backing the score (nullable)
	Votes *int32 `parquet:"votes,optional,snappy"`

	// Organization is the organization as stated by the source
	Organization string `parquet:"organization,snappy"`

	// License is the license string as stated by the source
	License string `parquet:"license,snappy"`
}

// ModelRows converts primary leaderboard models to Parquet rows.
func ModelRows(models []schema.Model) []ModelRow {
	rows := make([]ModelRow, 0, len(models))
	for _, m := range models {
		rows = append(rows, ModelRow{
			Model:                m.Name,
			Overall:              int32(m.Overall()),
			Expert:               optionalRank(m, schema.CategoryExpert),
			HardPrompts:          optionalRank(m, schema.CategoryHardPrompts),
			Coding:               optionalRank(m, schema.CategoryCoding),
			Math:                 optionalRank(m, schema.CategoryMath),
			CreativeWriting:      optionalRank(m, schema.CategoryCreativeWriting),
			InstructionFollowing: optionalRank(m, schema.CategoryInstructionFollowing),
			LongerQuery:          optionalRank(m, schema.CategoryLongerQuery),
		})
	}
	return rows
}

// ArenaRows converts arena entries to Parquet rows in display order.
func ArenaRows(arenas map[schema.Arena][]schema.ArenaEntry) []ArenaRow {
	var rows []ArenaRow
	for _, arena := range schema.AllArenas {
		for _, e := range arenas[arena] {
			row := ArenaRow{
				Arena:        string(arena),
				Rank:         int32(e.Rank),
				Model:        e.Model,
				Organization: e.Organization,
				License:      e.License,
			}
			if e.HasScore() {
				score := e.Score
				row.Score = &score
			}
			if e.HasCI() {
				ci := e.CI95
				row.CI95 = &ci
			}
			if e.VotesKnown {
				votes := int32(e.Votes)
				row.Votes = &votes
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// optionalRank maps an absent rank to a null Parquet value.
func optionalRank(m schema.Model, cat schema.Category) *int32 {
	if !m.HasRank(cat) {
		return nil
	}
	rank := int32(m.Rank(cat))
	return &rank
}

// WriteModelsParquet writes a slice of ModelRow structs to a Parquet file.
func WriteModelsParquet(data []ModelRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ModelRow struct tags
	writer := parquet.NewGenericWriter[ModelRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteArenaEntriesParquet writes a slice of ArenaRow structs to a Parquet file.
func WriteArenaEntriesParquet(data []ArenaRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ArenaRow struct tags
	writer := parquet.NewGenericWriter[ArenaRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
