package algo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arenalens/arenalens/schema"
)

// votedEntry builds an arena entry with a score and vote count.
func votedEntry(model string, rank int, score float64, votes int) schema.ArenaEntry {
	return schema.ArenaEntry{
		Rank:       rank,
		Model:      model,
		Score:      score,
		CI95:       math.NaN(),
		Votes:      votes,
		VotesKnown: true,
	}
}

func TestEmergingEntries(t *testing.T) {
	// Scores 1..10 paired with votes 10..1: the high scorers have the fewest
	// votes. With nearest-rank percentiles the score cutoff is 8 (p80) and the
	// vote cutoff is 3 (p30), qualifying exactly three entries.
	var entries []schema.ArenaEntry
	for i := 1; i <= 10; i++ {
		entries = append(entries, votedEntry("m", i, float64(i), 11-i))
	}
	arenas := map[schema.Arena][]schema.ArenaEntry{schema.TextArena: entries}

	emerging := EmergingEntries(arenas, DefaultEmergingCap)
	assert.Len(t, emerging, 3)
	for _, e := range emerging {
		assert.Equal(t, schema.TextArena, e.Arena)
		assert.GreaterOrEqual(t, e.Entry.Score, 8.0)
		assert.LessOrEqual(t, e.Entry.Votes, 3)
	}
}

func TestEmergingEntriesCap(t *testing.T) {
	var entries []schema.ArenaEntry
	for i := 1; i <= 10; i++ {
		entries = append(entries, votedEntry("m", i, float64(i), 11-i))
	}
	arenas := map[schema.Arena][]schema.ArenaEntry{schema.TextArena: entries}

	assert.Len(t, EmergingEntries(arenas, 2), 2)
}

func TestEmergingEntriesRequiresScoreAndVotes(t *testing.T) {
	entries := []schema.ArenaEntry{
		{Rank: 1, Model: "no-score", Score: math.NaN(), CI95: math.NaN(), Votes: 1, VotesKnown: true},
		{Rank: 2, Model: "no-votes", Score: 99, CI95: math.NaN()},
	}
	arenas := map[schema.Arena][]schema.ArenaEntry{schema.TextArena: entries}
	assert.Empty(t, EmergingEntries(arenas, DefaultEmergingCap))
}

func TestEmergingEntriesEmpty(t *testing.T) {
	assert.Empty(t, EmergingEntries(map[schema.Arena][]schema.ArenaEntry{}, DefaultEmergingCap))
}
