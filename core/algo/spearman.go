package algo

import (
	"math"
	"sort"

	"github.com/arenalens/arenalens/schema"
)

// Spearman computes the Spearman rank correlation between two categories over
// the models ranked in both. Fewer than 3 paired observations yield 0. Raw
// values are converted to fractional ranks with average tie handling, then
// Pearson-correlated. The result is rounded to 2 decimal places.
func Spearman(models []schema.Model, catA, catB schema.Category) float64 {
	var ax, bx []float64
	for _, m := range models {
		if m.HasRank(catA) && m.HasRank(catB) {
			ax = append(ax, float64(m.Rank(catA)))
			bx = append(bx, float64(m.Rank(catB)))
		}
	}
	if len(ax) < 3 {
		return 0
	}
	return round2(pearson(fractionalRanks(ax), fractionalRanks(bx)))
}

// fractionalRanks converts raw values to 1-based fractional ranks. Tied values
// receive the average of the rank positions they would jointly occupy.
func fractionalRanks(values []float64) []float64 {
	type indexed struct {
		v float64
		i int
	}
	idxs := make([]indexed, len(values))
	for i, v := range values {
		idxs[i] = indexed{v: v, i: i}
	}
	sort.SliceStable(idxs, func(a, b int) bool { return idxs[a].v < idxs[b].v })

	ranks := make([]float64, len(values))
	for i := 0; i < len(idxs); {
		j := i
		for j+1 < len(idxs) && idxs[j+1].v == idxs[i].v {
			j++
		}
		avg := float64(i+j+2) / 2 // average of 1-based positions i+1..j+1
		for k := i; k <= j; k++ {
			ranks[idxs[k].i] = avg
		}
		i = j + 1
	}
	return ranks
}

// pearson computes the Pearson correlation of two equal-length sequences,
// returning 0 when either sequence has no variance.
func pearson(ax, bx []float64) float64 {
	ma := mean(ax)
	mb := mean(bx)
	var num, denA, denB float64
	for i := range ax {
		da := ax[i] - ma
		db := bx[i] - mb
		num += da * db
		denA += da * da
		denB += db * db
	}
	den := math.Sqrt(denA) * math.Sqrt(denB)
	if den == 0 {
		return 0
	}
	return num / den
}

// mean returns the arithmetic mean, 0 for an empty sequence.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
