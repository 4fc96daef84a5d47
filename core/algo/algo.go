// Package algo has the pure analytics over leaderboard data.
//
// Every function here is total: structurally valid input never panics, and
// insufficient data yields a neutral value (0, an empty slice) instead of an
// error. Nothing is memoized, so every result is re-derivable from the inputs
// alone and cannot go stale across data reloads.
package algo

import (
	"math"
	"sort"

	"github.com/arenalens/arenalens/schema"
)

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds to 1 decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// TopByRank returns the top n entries of an arena ordered by ascending rank.
// The input slice keeps source file order and is never mutated.
func TopByRank(entries []schema.ArenaEntry, n int) []schema.ArenaEntry {
	sorted := make([]schema.ArenaEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank < sorted[j].Rank
	})
	if len(sorted) > n {
		return sorted[:n]
	}
	return sorted
}

// scoreOrZero treats an absent score as zero for score-mass sums.
func scoreOrZero(e schema.ArenaEntry) float64 {
	if e.HasScore() {
		return e.Score
	}
	return 0
}

// percentile returns the nearest-rank percentile of an ascending-sorted
// sequence, indexing at floor((n-1)*p). No interpolation. Empty input yields 0.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[int(math.Floor(float64(len(sorted)-1)*p))]
}
