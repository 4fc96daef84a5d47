package algo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arenalens/arenalens/schema"
)

// ciEntry builds an arena entry with a score and confidence half-width.
func ciEntry(model string, rank int, score, ci float64) schema.ArenaEntry {
	return schema.ArenaEntry{Rank: rank, Model: model, Score: score, CI95: ci}
}

func TestOverlapPairs(t *testing.T) {
	tests := []struct {
		name     string
		entries  []schema.ArenaEntry
		expected int
	}{
		{
			// [95,105] and [98,108] intersect.
			name: "intervals overlap",
			entries: []schema.ArenaEntry{
				ciEntry("a", 1, 100, 5),
				ciEntry("b", 2, 103, 5),
			},
			expected: 1,
		},
		{
			// [98,102] and [108,112] do not.
			name: "intervals disjoint",
			entries: []schema.ArenaEntry{
				ciEntry("a", 1, 100, 2),
				ciEntry("b", 2, 110, 2),
			},
			expected: 0,
		},
		{
			// Touching endpoints count as overlap.
			name: "intervals touch",
			entries: []schema.ArenaEntry{
				ciEntry("a", 1, 100, 5),
				ciEntry("b", 2, 110, 5),
			},
			expected: 1,
		},
		{
			name: "missing interval data is skipped",
			entries: []schema.ArenaEntry{
				ciEntry("a", 1, 100, math.NaN()),
				ciEntry("b", 2, math.NaN(), 5),
				ciEntry("c", 3, 100, 5),
			},
			expected: 0,
		},
		{
			name:     "empty arena",
			entries:  nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs := OverlapPairs(schema.TextArena, tt.entries)
			assert.Len(t, pairs, tt.expected)
			for _, pair := range pairs {
				assert.Equal(t, schema.TextArena, pair.Arena)
			}
		})
	}
}

func TestOverlapPairsTop10Only(t *testing.T) {
	// Rank 11 sits outside the comparison window even with a wide interval.
	var entries []schema.ArenaEntry
	for i := 1; i <= 10; i++ {
		entries = append(entries, ciEntry("m", i, float64(1000+100*i), 1))
	}
	entries = append(entries, ciEntry("outsider", 11, 1500, 1000))

	pairs := OverlapPairs(schema.TextArena, entries)
	for _, pair := range pairs {
		assert.NotEqual(t, "outsider", pair.ModelA)
		assert.NotEqual(t, "outsider", pair.ModelB)
	}
}
