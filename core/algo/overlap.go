package algo

import "github.com/arenalens/arenalens/schema"

// OverlapPairs finds every unordered pair among an arena's top 10 whose 95%
// confidence intervals [score-ci95, score+ci95] intersect. Such pairs are
// statistically indistinguishable: when the top-2 intervals overlap, no strict
// winner may be claimed for the arena. Entries without a score or half-width
// cannot form an interval and are skipped.
func OverlapPairs(arena schema.Arena, entries []schema.ArenaEntry) []schema.OverlapPair {
	top := TopByRank(entries, 10)
	var pairs []schema.OverlapPair
	for i := 0; i < len(top); i++ {
		for j := i + 1; j < len(top); j++ {
			if intervalsOverlap(top[i], top[j]) {
				pairs = append(pairs, schema.OverlapPair{
					Arena:  arena,
					ModelA: top[i].Model,
					ModelB: top[j].Model,
				})
			}
		}
	}
	return pairs
}

// intervalsOverlap reports whether two entries' confidence intervals
// intersect: not (a.hi < b.lo or b.hi < a.lo).
func intervalsOverlap(a, b schema.ArenaEntry) bool {
	if !a.HasScore() || !a.HasCI() || !b.HasScore() || !b.HasCI() {
		return false
	}
	aLo, aHi := a.Score-a.CI95, a.Score+a.CI95
	bLo, bHi := b.Score-b.CI95, b.Score+b.CI95
	return !(aHi < bLo || bHi < aLo)
}
