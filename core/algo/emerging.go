package algo

import "github.com/arenalens/arenalens/schema"

// DefaultEmergingCap bounds the number of reported emerging entries.
const DefaultEmergingCap = 20

// EmergingEntries flags "high quality, low visibility" entries across all
// arenas: score at or above the arena's 80th-percentile score AND votes at or
// below its 30th-percentile vote count. Percentiles use the nearest-rank rule
// over ascending-sorted values, without interpolation. Results keep source
// order (arena display order, then file order within the arena) and are capped
// at cap entries; cap <= 0 applies DefaultEmergingCap.
func EmergingEntries(arenas map[schema.Arena][]schema.ArenaEntry, cap int) []schema.Emerging {
	if cap <= 0 {
		cap = DefaultEmergingCap
	}
	var flagged []schema.Emerging
	for _, arena := range schema.AllArenas {
		entries := arenas[arena]
		if len(entries) == 0 {
			continue
		}
		s80 := percentile(sortedScores(entries), 0.8)
		v30 := percentile(sortedVotes(entries), 0.3)
		for _, e := range entries {
			if !e.HasScore() || !e.VotesKnown {
				continue
			}
			if e.Score >= s80 && float64(e.Votes) <= v30 {
				flagged = append(flagged, schema.Emerging{Arena: arena, Entry: e})
			}
		}
	}
	if len(flagged) > cap {
		flagged = flagged[:cap]
	}
	return flagged
}
