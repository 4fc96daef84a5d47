package algo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arenalens/arenalens/schema"
)

// scoredEntry builds an arena entry with a rank and score.
func scoredEntry(model string, rank int, score float64) schema.ArenaEntry {
	return schema.ArenaEntry{
		Rank:  rank,
		Model: model,
		Score: score,
		CI95:  math.NaN(),
	}
}

func TestAverageRank(t *testing.T) {
	models := []schema.Model{
		rankedModel("a", 1, 1),
		rankedModel("b", 2, 2),
		rankedModel("c", 3, 3),
		rankedModel("d", 4, 4),
		rankedModel("e", 5, 5),
	}

	tests := []struct {
		name       string
		minOverall int
		maxOverall int
		expected   float64
	}{
		{
			// Normalized scores are (6-r)*20 for ranks 1..5, mean 60.
			name:       "top bracket",
			minOverall: 1,
			maxOverall: 10,
			expected:   60.0,
		},
		{
			name:       "partial bracket",
			minOverall: 4,
			maxOverall: 10,
			expected:   30.0,
		},
		{
			name:       "empty bracket",
			minOverall: 11,
			maxOverall: 50,
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AverageRank(models, schema.CategoryCoding, tt.minOverall, tt.maxOverall)
			assert.InDelta(t, tt.expected, result, 0.001)
		})
	}
}

func TestAverageRankEmptyCategory(t *testing.T) {
	models := []schema.Model{rankedModel("a", 1, 0)}
	assert.Zero(t, AverageRank(models, schema.CategoryCoding, 1, 10))
}

func TestConcentrationRatio(t *testing.T) {
	// Ranks 1..10 with scores 10 down to 1; total mass 55.
	var entries []schema.ArenaEntry
	for i := 1; i <= 10; i++ {
		entries = append(entries, scoredEntry("m", i, float64(11-i)))
	}

	tests := []struct {
		name     string
		k        int
		expected float64
	}{
		{name: "top 3 share", k: 3, expected: 49.1},
		{name: "top 1 share", k: 1, expected: 18.2},
		{name: "k covers everything", k: 10, expected: 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ConcentrationRatio(entries, tt.k), 0.001)
		})
	}
}

func TestConcentrationRatioEdgeCases(t *testing.T) {
	assert.Zero(t, ConcentrationRatio(nil, 3))

	// Absent scores count as zero mass.
	entries := []schema.ArenaEntry{
		scoredEntry("a", 1, math.NaN()),
		scoredEntry("b", 2, math.NaN()),
	}
	assert.Zero(t, ConcentrationRatio(entries, 1))
}

func TestScoreStdDev(t *testing.T) {
	// Population std dev of 2,4,4,4,5,5,7,9 is exactly 2.
	scores := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	var entries []schema.ArenaEntry
	for i, s := range scores {
		entries = append(entries, scoredEntry("m", i+1, s))
	}
	assert.InDelta(t, 2.0, ScoreStdDev(entries), 0.001)
}

func TestScoreStdDevExcludesAbsent(t *testing.T) {
	entries := []schema.ArenaEntry{
		scoredEntry("a", 1, 5),
		scoredEntry("b", 2, math.NaN()),
		scoredEntry("c", 3, 5),
	}
	assert.Zero(t, ScoreStdDev(entries))
	assert.Zero(t, ScoreStdDev(nil))
}

func TestMeanRankSpread(t *testing.T) {
	entries := []schema.ArenaEntry{
		{Rank: 1, Model: "a", Score: math.NaN(), CI95: math.NaN(), SpreadUpper: 3, SpreadLower: 1, SpreadKnown: true},
		{Rank: 2, Model: "b", Score: math.NaN(), CI95: math.NaN(), SpreadUpper: 6, SpreadLower: 2, SpreadKnown: true},
		{Rank: 3, Model: "c", Score: math.NaN(), CI95: math.NaN()}, // no spread
	}
	// Widths 2 and 4, mean 3. The spread-less entry is skipped.
	assert.InDelta(t, 3.0, MeanRankSpread(entries, 20), 0.001)
	assert.Zero(t, MeanRankSpread(nil, 20))
}

func TestCategoryStats(t *testing.T) {
	models := []schema.Model{
		rankedModel("a", 1, 2),
		rankedModel("b", 2, 8),
		rankedModel("c", 3, 0), // unranked in coding
	}
	summary := CategoryStats(models, schema.CategoryCoding)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 2, summary.Best)
	assert.Equal(t, 8, summary.Worst)
	assert.InDelta(t, 5.0, summary.Mean, 0.001)
}

func TestRankDistribution(t *testing.T) {
	models := []schema.Model{
		rankedModel("a", 1, 0),
		rankedModel("b", 10, 0),
		rankedModel("c", 11, 0),
		rankedModel("d", 100, 0),
		rankedModel("e", 150, 0),
		rankedModel("f", 500, 0),
	}
	brackets := RankDistribution(models)
	counts := make(map[string]int)
	for _, b := range brackets {
		counts[b.Label] = b.Count
	}
	assert.Equal(t, 2, counts["Top 10"])
	assert.Equal(t, 1, counts["11-50"])
	assert.Equal(t, 1, counts["51-100"])
	assert.Equal(t, 1, counts["101-200"])
	assert.Equal(t, 1, counts["201+"])
}

func TestTopByRank(t *testing.T) {
	entries := []schema.ArenaEntry{
		scoredEntry("c", 3, 1),
		scoredEntry("a", 1, 1),
		scoredEntry("b", 2, 1),
	}
	top := TopByRank(entries, 2)
	assert.Len(t, top, 2)
	assert.Equal(t, "a", top[0].Model)
	assert.Equal(t, "b", top[1].Model)

	// The source slice keeps its file order.
	assert.Equal(t, "c", entries[0].Model)

	assert.Len(t, TopByRank(entries, 10), 3)
	assert.Empty(t, TopByRank(nil, 5))
}
