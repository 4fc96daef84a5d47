// Package schema has models, constants and helpers for all parts of arenalens.
package schema

import (
	"math"
	"time"
)

// Model represents one row of the primary leaderboard. Ranks are 1-based and
// lower is better. The Ranks map holds one entry per populated category; a
// missing key (or zero value) means the model is unranked in that category.
// Overall is always populated for rows that survive the build step.
type Model struct {
	Name  string           // Unique model name within the primary leaderboard
	Ranks map[Category]int // Category to 1-based rank; absent = unranked
}

// Rank returns the model's rank in the given category, or 0 if unranked.
func (m Model) Rank(cat Category) int {
	return m.Ranks[cat]
}

// HasRank reports whether the model is ranked in the given category.
func (m Model) HasRank(cat Category) bool {
	return m.Ranks[cat] > 0
}

// Overall returns the model's overall rank. Always positive for built models.
func (m Model) Overall() int {
	return m.Ranks[CategoryOverall]
}

// ArenaEntry represents one row of a per-arena leaderboard. Unlike the primary
// list, a parsed rank of zero or below is accepted; only an unparsable rank or
// an empty model name drops the row.
type ArenaEntry struct {
	Rank         int     // 1-based position within the arena (required)
	SpreadUpper  int     // Upper bound of the rank uncertainty spread
	SpreadLower  int     // Lower bound of the rank uncertainty spread
	SpreadKnown  bool    // Whether both spread bounds were present
	Model        string  // Model name (required)
	Score        float64 // Arena score; NaN when absent
	CI95         float64 // 95% confidence half-width; NaN when absent
	Votes        int     // Vote count backing the score
	VotesKnown   bool    // Whether the vote count was present
	Organization string  // Organization as stated by the source, may be empty
	License      string  // License string as stated by the source, may be empty
}

// HasScore reports whether the entry carries a numeric score.
func (e ArenaEntry) HasScore() bool {
	return !math.IsNaN(e.Score)
}

// HasCI reports whether the entry carries a numeric confidence half-width.
func (e ArenaEntry) HasCI() bool {
	return !math.IsNaN(e.CI95)
}

// Snapshot is the immutable result of one data load. A reload produces a fresh
// Snapshot; consumers never patch one in place. Arena slices keep source file
// order, which is not necessarily rank order.
type Snapshot struct {
	Models             []Model                // Primary leaderboard, source order
	Arenas             map[Arena][]ArenaEntry // Per-arena leaderboards, source order
	CategoriesDetected int                    // How many expected category columns the primary header carried
	Generation         uint64                 // Monotonic load tag; stale loads are discarded by comparing tags
	LoadedAt           time.Time              // When the load settled
}

// OrgProfile aggregates one organization's footprint across all arenas.
type OrgProfile struct {
	Name    string          // Literal organization string from the source
	Country string          // Resolved country, or "unknown"
	Models  map[string]bool // Distinct model names observed across arenas
	Arenas  map[Arena]bool  // Arenas in which the organization appears
}

// GeoPoint is a per-country aggregate consumed by the map view.
type GeoPoint struct {
	Country string   // Country name from the curated tables
	Count   int      // Distinct models attributed to the country
	Orgs    []string // Sorted organizations observed for the country
}

// ChartSeries is a named label/value series consumed by chart widgets.
type ChartSeries struct {
	Name   string    `json:"name"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}
