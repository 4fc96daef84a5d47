package core

import (
	"sort"

	"github.com/arenalens/arenalens/core/algo"
	"github.com/arenalens/arenalens/schema"
)

// performanceCategories are the categories spotlighted by the bracketed
// performance view.
var performanceCategories = []schema.Category{
	schema.CategoryCoding,
	schema.CategoryMath,
	schema.CategoryCreativeWriting,
}

// BuildAnalyticsReport derives every analytics series from a snapshot under
// the given controls. The report is a pure function of its inputs: changing a
// control means calling this again, never reloading data.
func BuildAnalyticsReport(snap *schema.Snapshot, controls schema.Controls, marketOrgs []string) *schema.AnalyticsReport {
	controls = controls.Normalize()
	report := &schema.AnalyticsReport{
		CRTopN:          controls.CRTopN,
		VersatilityTopN: controls.VersatilityTopN,
	}

	report.Correlations = correlationSeries(snap.Models)
	report.Performance = performanceSeries(snap.Models)
	report.Difficulty = arenaSeries("Score Std Dev", snap.Arenas, algo.ScoreStdDev)
	report.Concentration = arenaSeries("Concentration Ratio", snap.Arenas, func(entries []schema.ArenaEntry) float64 {
		return algo.ConcentrationRatio(entries, controls.CRTopN)
	})
	report.MeanSpreads = arenaSeries("Mean Rank Spread (Top 20)", snap.Arenas, func(entries []schema.ArenaEntry) float64 {
		return algo.MeanRankSpread(entries, 20)
	})
	report.LicenseOpen, report.LicenseProprietary = licenseSeries(snap.Arenas)
	report.Versatility = versatilitySeries(snap.Arenas, controls.VersatilityTopN)
	report.MarketShare = marketShareSeries(snap.Arenas, marketOrgs)

	for _, arena := range schema.AllArenas {
		report.Overlaps = append(report.Overlaps, algo.OverlapPairs(arena, snap.Arenas[arena])...)
	}
	report.Emerging = algo.EmergingEntries(snap.Arenas, algo.DefaultEmergingCap)
	report.Leaders = algo.ArenaLeaders(snap.Arenas)
	report.Champions = algo.ChampionCounts(snap.Arenas)

	for _, cat := range schema.AllCategories {
		report.Categories = append(report.Categories, algo.CategoryStats(snap.Models, cat))
	}
	report.Distribution = algo.RankDistribution(snap.Models)
	report.OrgPoints = algo.OrgPoints(snap.Arenas, controls.OrgFilter)
	return report
}

// correlationSeries computes the Spearman correlation of each non-overall
// category against overall.
func correlationSeries(models []schema.Model) schema.ChartSeries {
	series := schema.ChartSeries{Name: "Correlation with Overall"}
	for _, cat := range schema.AllCategories {
		if cat == schema.CategoryOverall {
			continue
		}
		series.Labels = append(series.Labels, schema.CategoryLabel(cat))
		series.Values = append(series.Values, algo.Spearman(models, schema.CategoryOverall, cat))
	}
	return series
}

// performanceSeries computes bracketed 0-100 averages for the spotlighted
// categories across the fixed overall-rank brackets.
func performanceSeries(models []schema.Model) []schema.ChartSeries {
	brackets := schema.RankBrackets()
	series := make([]schema.ChartSeries, 0, len(performanceCategories))
	for _, cat := range performanceCategories {
		s := schema.ChartSeries{Name: schema.CategoryLabel(cat)}
		for _, b := range brackets {
			s.Labels = append(s.Labels, b.Label)
			s.Values = append(s.Values, algo.AverageRank(models, cat, b.Min, b.Max))
		}
		series = append(series, s)
	}
	return series
}

// arenaSeries evaluates one statistic per arena in display order.
func arenaSeries(name string, arenas map[schema.Arena][]schema.ArenaEntry, fn func([]schema.ArenaEntry) float64) schema.ChartSeries {
	series := schema.ChartSeries{Name: name}
	for _, arena := range schema.AllArenas {
		series.Labels = append(series.Labels, schema.ArenaLabel(arena))
		series.Values = append(series.Values, fn(arenas[arena]))
	}
	return series
}

// licenseSeries splits each arena's mean score by license family.
func licenseSeries(arenas map[schema.Arena][]schema.ArenaEntry) (open, proprietary schema.ChartSeries) {
	open = schema.ChartSeries{Name: "Open"}
	proprietary = schema.ChartSeries{Name: "Proprietary"}
	for _, arena := range schema.AllArenas {
		averages := algo.LicenseSplit(arenas[arena])
		open.Labels = append(open.Labels, schema.ArenaLabel(arena))
		open.Values = append(open.Values, averages.Open)
		proprietary.Labels = append(proprietary.Labels, schema.ArenaLabel(arena))
		proprietary.Values = append(proprietary.Values, averages.Proprietary)
	}
	return open, proprietary
}

// versatilitySeries flattens the per-organization versatility index into a
// series sorted by count descending, then name.
func versatilitySeries(arenas map[schema.Arena][]schema.ArenaEntry, topN int) schema.ChartSeries {
	counts := algo.VersatilityIndex(arenas, topN)
	type orgCount struct {
		org   string
		count int
	}
	flat := make([]orgCount, 0, len(counts))
	for org, count := range counts {
		flat = append(flat, orgCount{org: org, count: count})
	}
	sort.Slice(flat, func(i, j int) bool {
		if flat[i].count != flat[j].count {
			return flat[i].count > flat[j].count
		}
		return flat[i].org < flat[j].org
	})

	series := schema.ChartSeries{Name: "Arenas with Top-N Placement"}
	for _, oc := range flat {
		series.Labels = append(series.Labels, oc.org)
		series.Values = append(series.Values, float64(oc.count))
	}
	return series
}

// marketShareSeries computes one share-per-arena series per tracked
// organization.
func marketShareSeries(arenas map[schema.Arena][]schema.ArenaEntry, orgs []string) []schema.ChartSeries {
	shares := algo.MarketShare(arenas, orgs)
	labels := make([]string, 0, len(schema.AllArenas))
	for _, arena := range schema.AllArenas {
		labels = append(labels, schema.ArenaLabel(arena))
	}
	series := make([]schema.ChartSeries, 0, len(orgs))
	for _, org := range orgs {
		series = append(series, schema.ChartSeries{Name: org, Labels: labels, Values: shares[org]})
	}
	return series
}
