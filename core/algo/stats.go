package algo

import (
	"math"
	"sort"

	"github.com/arenalens/arenalens/schema"
)

// CategoryMax returns the maximum rank observed for a category across all
// models, or 0 if nobody is ranked in it.
func CategoryMax(models []schema.Model, cat schema.Category) int {
	maxRank := 0
	for _, m := range models {
		if r := m.Rank(cat); r > maxRank {
			maxRank = r
		}
	}
	return maxRank
}

// AverageRank computes a bracket-comparable 0-100 performance score for one
// category over the models whose overall rank falls in [minOverall,
// maxOverall]. Each raw rank normalizes via (maxCat+1-rank)/maxCat*100, where
// maxCat is the category's maximum rank across ALL models, not just the
// bracket; that keeps brackets comparable even though category cardinalities
// differ. The mean is rounded to 1 decimal. No qualifying models, or an empty
// category, yield 0.
func AverageRank(models []schema.Model, cat schema.Category, minOverall, maxOverall int) float64 {
	maxCat := CategoryMax(models, cat)
	if maxCat <= 0 {
		return 0
	}
	var sum float64
	var n int
	for _, m := range models {
		overall := m.Overall()
		if overall < minOverall || overall > maxOverall || !m.HasRank(cat) {
			continue
		}
		sum += float64(maxCat+1-m.Rank(cat)) / float64(maxCat) * 100
		n++
	}
	if n == 0 {
		return 0
	}
	return round1(sum / float64(n))
}

// ConcentrationRatio reports what share of an arena's top-10 score mass the
// top-k entries hold, as a percentage rounded to 1 decimal. Absent scores
// count as zero mass; a zero top-10 mass yields 0.
func ConcentrationRatio(entries []schema.ArenaEntry, k int) float64 {
	top10 := TopByRank(entries, 10)
	topK := TopByRank(entries, k)
	var s10, sk float64
	for _, e := range top10 {
		s10 += scoreOrZero(e)
	}
	for _, e := range topK {
		sk += scoreOrZero(e)
	}
	if s10 == 0 {
		return 0
	}
	return round1(sk / s10 * 100)
}

// ScoreStdDev returns the population standard deviation (divide by N) of the
// numeric scores in an arena, rounded to 1 decimal. Entries without a score
// are excluded; an empty set yields 0.
func ScoreStdDev(entries []schema.ArenaEntry) float64 {
	var xs []float64
	for _, e := range entries {
		if e.HasScore() {
			xs = append(xs, e.Score)
		}
	}
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	var variance float64
	for _, v := range xs {
		variance += (v - m) * (v - m)
	}
	variance /= float64(len(xs))
	return round1(math.Sqrt(variance))
}

// MeanRankSpread returns the mean rank-spread width (upper minus lower) over
// the top n entries of an arena, rounded to 1 decimal. Entries missing either
// bound are skipped; no usable entries yield 0.
func MeanRankSpread(entries []schema.ArenaEntry, n int) float64 {
	var sum float64
	var count int
	for _, e := range TopByRank(entries, n) {
		if !e.SpreadKnown {
			continue
		}
		sum += float64(e.SpreadUpper - e.SpreadLower)
		count++
	}
	if count == 0 {
		return 0
	}
	return round1(sum / float64(count))
}

// CategoryStats summarizes the raw rank distribution of one category: mean
// (1 decimal), best, worst and the number of ranked models.
func CategoryStats(models []schema.Model, cat schema.Category) schema.CategorySummary {
	summary := schema.CategorySummary{Category: cat}
	var sum float64
	for _, m := range models {
		r := m.Rank(cat)
		if r <= 0 {
			continue
		}
		if summary.Count == 0 || r < summary.Best {
			summary.Best = r
		}
		if r > summary.Worst {
			summary.Worst = r
		}
		sum += float64(r)
		summary.Count++
	}
	if summary.Count > 0 {
		summary.Mean = round1(sum / float64(summary.Count))
	}
	return summary
}

// RankDistribution buckets models into the fixed overall-rank brackets.
func RankDistribution(models []schema.Model) []schema.RankBracket {
	brackets := schema.RankBrackets()
	for _, m := range models {
		overall := m.Overall()
		for i := range brackets {
			if overall >= brackets[i].Min && overall <= brackets[i].Max {
				brackets[i].Count++
				break
			}
		}
	}
	return brackets
}

// sortedScores returns the arena's numeric scores in ascending order.
func sortedScores(entries []schema.ArenaEntry) []float64 {
	var xs []float64
	for _, e := range entries {
		if e.HasScore() {
			xs = append(xs, e.Score)
		}
	}
	sort.Float64s(xs)
	return xs
}

// sortedVotes returns the arena's known vote counts in ascending order.
func sortedVotes(entries []schema.ArenaEntry) []float64 {
	var xs []float64
	for _, e := range entries {
		if e.VotesKnown {
			xs = append(xs, float64(e.Votes))
		}
	}
	sort.Float64s(xs)
	return xs
}
