// Package core has the leaderboard builders, load orchestration and the
// entry points behind each CLI command.
package core

import (
	"context"
	"time"

	"github.com/arenalens/arenalens/core/agg"
	"github.com/arenalens/arenalens/core/algo"
	"github.com/arenalens/arenalens/internal/contract"
	"github.com/arenalens/arenalens/internal/outwriter"
	"github.com/arenalens/arenalens/schema"
)

// leaderCategories are the headline categories of the overview.
var leaderCategories = []schema.Category{
	schema.CategoryOverall,
	schema.CategoryCoding,
	schema.CategoryCreativeWriting,
	schema.CategoryMath,
}

// loadSnapshot runs one full load from the configured source.
func loadSnapshot(ctx context.Context, cfg *contract.Config) (*schema.Snapshot, error) {
	return NewLoader(NewSource(cfg)).Load(ctx)
}

// ExecuteOverview renders the headline view: totals, top 10 overall and the
// per-category leaders.
func ExecuteOverview(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	snap, err := loadSnapshot(ctx, cfg)
	if err != nil {
		return err
	}
	overview := buildOverview(snap)
	return outwriter.WriteOverview(overview, cfg, time.Since(start))
}

// buildOverview assembles the overview render model from a snapshot.
func buildOverview(snap *schema.Snapshot) *schema.Overview {
	overview := &schema.Overview{
		TotalModels:        len(snap.Models),
		CategoriesDetected: snap.CategoriesDetected,
		TopModels:          TopOverall(snap.Models, 10),
	}
	if best, ok := BestInCategory(snap.Models, schema.CategoryOverall); ok {
		overview.TopModel = best.Name
	}
	for _, cat := range leaderCategories {
		if best, ok := BestInCategory(snap.Models, cat); ok {
			overview.Leaders = append(overview.Leaders, schema.CategoryLeader{
				Category: cat,
				Name:     best.Name,
				Rank:     best.Rank(cat),
			})
		}
	}
	return overview
}

// ExecuteRankings renders the filtered, sorted primary leaderboard — or one
// arena's leaderboard when an arena restriction is set.
func ExecuteRankings(ctx context.Context, cfg *contract.Config) error {
	snap, err := loadSnapshot(ctx, cfg)
	if err != nil {
		return err
	}
	if cfg.Arena != "" {
		entries := filterArena(snap.Arenas[cfg.Arena], cfg.Search)
		ranked := algo.TopByRank(entries, cfg.ResultLimit)
		return outwriter.WriteArenaTable(cfg.Arena, ranked, cfg)
	}
	view := rankedPrimaryView(snap, cfg)
	return outwriter.WriteModelTable(view, cfg)
}

// rankedPrimaryView applies the configured search filter, arena membership
// restriction, sort category and result limit to the primary list, producing
// a fresh view.
func rankedPrimaryView(snap *schema.Snapshot, cfg *contract.Config) []schema.Model {
	var membership map[string]bool
	if cfg.Arena != "" {
		membership = ArenaMembership(snap.Arenas[cfg.Arena])
	}
	view := SortModels(FilterModels(snap.Models, cfg.Search, membership), cfg.SortBy)
	if len(view) > cfg.ResultLimit {
		view = view[:cfg.ResultLimit]
	}
	return view
}

// filterArena restricts arena entries to those whose model name contains the
// search term, preserving file order.
func filterArena(entries []schema.ArenaEntry, search string) []schema.ArenaEntry {
	if search == "" {
		return entries
	}
	membership := make([]schema.ArenaEntry, 0, len(entries))
	for _, e := range entries {
		if containsFold(e.Model, search) {
			membership = append(membership, e)
		}
	}
	return membership
}

// ExecuteArenas renders the top 10 of every arena.
func ExecuteArenas(ctx context.Context, cfg *contract.Config) error {
	snap, err := loadSnapshot(ctx, cfg)
	if err != nil {
		return err
	}
	tops := make(map[schema.Arena][]schema.ArenaEntry, len(snap.Arenas))
	for arena, entries := range snap.Arenas {
		tops[arena] = algo.TopByRank(entries, 10)
	}
	return outwriter.WriteArenaTops(tops, cfg)
}

// ExecuteAnalytics computes and renders the full analytics report.
func ExecuteAnalytics(ctx context.Context, cfg *contract.Config) error {
	snap, err := loadSnapshot(ctx, cfg)
	if err != nil {
		return err
	}
	report := BuildAnalyticsReport(snap, cfg.Controls, cfg.MarketShareOrgs)
	return outwriter.WriteAnalytics(report, cfg)
}

// ExecuteOrgs renders per-organization profiles and volume/performance
// points.
func ExecuteOrgs(ctx context.Context, cfg *contract.Config) error {
	snap, err := loadSnapshot(ctx, cfg)
	if err != nil {
		return err
	}
	profiles := agg.BuildOrgProfiles(snap.Arenas)
	points := algo.OrgPoints(snap.Arenas, cfg.Controls.OrgFilter)
	return outwriter.WriteOrgs(profiles, points, cfg)
}

// ExecuteMap renders the per-country geographic aggregates.
func ExecuteMap(ctx context.Context, cfg *contract.Config) error {
	snap, err := loadSnapshot(ctx, cfg)
	if err != nil {
		return err
	}
	points := agg.CountryCounts(snap.Models, snap.Arenas)
	return outwriter.WriteGeo(points, cfg)
}

// ExecuteExport writes the filtered, sorted primary view in the re-import
// format: the fixed nine-column header with "-" marking absent ranks.
func ExecuteExport(ctx context.Context, cfg *contract.Config) error {
	snap, err := loadSnapshot(ctx, cfg)
	if err != nil {
		return err
	}
	view := rankedPrimaryView(snap, cfg)
	return outwriter.ExportModels(view, cfg)
}
