package parquet

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenalens/arenalens/schema"
)

func TestModelRows(t *testing.T) {
	models := []schema.Model{
		{Name: "gpt-4", Ranks: map[schema.Category]int{
			schema.CategoryOverall: 1,
			schema.CategoryCoding:  2,
		}},
	}

	rows := ModelRows(models)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "gpt-4", row.Model)
	assert.Equal(t, int32(1), row.Overall)
	require.NotNil(t, row.Coding)
	assert.Equal(t, int32(2), *row.Coding)
	assert.Nil(t, row.Math) // unranked categories stay null
	assert.Nil(t, row.Expert)
}

func TestArenaRows(t *testing.T) {
	arenas := map[schema.Arena][]schema.ArenaEntry{
		schema.TextArena: {
			{Rank: 1, Model: "gpt-4o", Score: 1337.5, CI95: 4.2, Votes: 100, VotesKnown: true, Organization: "OpenAI", License: "Proprietary"},
		},
		schema.VisionArena: {
			{Rank: 1, Model: "sparse", Score: math.NaN(), CI95: math.NaN()},
		},
	}

	rows := ArenaRows(arenas)
	require.Len(t, rows, 2)

	// Text precedes Vision in display order.
	first := rows[0]
	assert.Equal(t, string(schema.TextArena), first.Arena)
	require.NotNil(t, first.Score)
	assert.InDelta(t, 1337.5, *first.Score, 0.001)
	require.NotNil(t, first.CI95)
	require.NotNil(t, first.Votes)
	assert.Equal(t, int32(100), *first.Votes)

	second := rows[1]
	assert.Equal(t, string(schema.VisionArena), second.Arena)
	assert.Nil(t, second.Score)
	assert.Nil(t, second.CI95)
	assert.Nil(t, second.Votes)
}

func TestWriteModelsParquet(t *testing.T) {
	rows := ModelRows([]schema.Model{
		{Name: "gpt-4", Ranks: map[schema.Category]int{schema.CategoryOverall: 1}},
		{Name: "claude-3", Ranks: map[schema.Category]int{schema.CategoryOverall: 2}},
	})

	path := filepath.Join(t.TempDir(), "models.parquet")
	require.NoError(t, WriteModelsParquet(rows, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWriteModelsParquetInvalidPath(t *testing.T) {
	err := WriteModelsParquet(nil, filepath.Join(t.TempDir(), "missing", "out.parquet"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestWriteArenaEntriesParquet(t *testing.T) {
	rows := ArenaRows(map[schema.Arena][]schema.ArenaEntry{
		schema.TextArena: {{Rank: 1, Model: "gpt-4o", Score: 1300, CI95: 3}},
	})

	path := filepath.Join(t.TempDir(), "arenas.parquet")
	require.NoError(t, WriteArenaEntriesParquet(rows, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
