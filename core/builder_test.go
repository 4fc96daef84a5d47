package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arenalens/arenalens/internal/csvtab"
	"github.com/arenalens/arenalens/schema"
)

const primarySample = `model,overall,coding,math
gpt-4,1,2,3
claude-3,2,-,1
,3,4,5
no-overall,-,1,1
zero-overall,0,1,1
`

func TestBuildModels(t *testing.T) {
	models := BuildModels(csvtab.Parse(primarySample))

	// The nameless, rankless and zero-ranked rows are dropped.
	assert.Len(t, models, 2)

	assert.Equal(t, "gpt-4", models[0].Name)
	assert.Equal(t, 1, models[0].Overall())
	assert.Equal(t, 2, models[0].Rank(schema.CategoryCoding))

	assert.Equal(t, "claude-3", models[1].Name)
	assert.False(t, models[1].HasRank(schema.CategoryCoding))
	assert.Equal(t, 1, models[1].Rank(schema.CategoryMath))
}

func TestBuildModelsEmptyTable(t *testing.T) {
	assert.Empty(t, BuildModels(csvtab.Parse("")))
	assert.Empty(t, BuildModels(csvtab.Parse("model,overall\n")))
}

func TestCountCategories(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "subset of categories",
			text:     primarySample,
			expected: 3,
		},
		{
			name:     "no known columns",
			text:     "foo,bar\n1,2\n",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountCategories(csvtab.Parse(tt.text)))
		})
	}
}

const arenaSample = `Rank,Rank_Spread_Upper,Rank_Spread_Lower,Model,Score,CI_95,Votes,Organization,License
1,2,1,gpt-4o,1337.5,4.2,50123,OpenAI,Proprietary
0,-,-,prerelease,1200,-,-,Lab,MIT
-,1,1,no-rank,1100,2,10,Lab,MIT
2,3,1,,1000,2,10,Lab,MIT
`

func TestBuildArena(t *testing.T) {
	entries := BuildArena(csvtab.Parse(arenaSample))

	// The unparsable-rank and nameless rows are dropped; rank 0 survives.
	assert.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, "gpt-4o", first.Model)
	assert.True(t, first.SpreadKnown)
	assert.InDelta(t, 1337.5, first.Score, 0.001)
	assert.InDelta(t, 4.2, first.CI95, 0.001)
	assert.True(t, first.VotesKnown)
	assert.Equal(t, 50123, first.Votes)
	assert.Equal(t, "OpenAI", first.Organization)

	second := entries[1]
	assert.Equal(t, 0, second.Rank)
	assert.False(t, second.SpreadKnown)
	assert.True(t, second.HasScore())
	assert.False(t, second.HasCI())
	assert.False(t, second.VotesKnown)
}
