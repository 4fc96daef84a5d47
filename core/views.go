package core

import (
	"sort"
	"strings"

	"github.com/arenalens/arenalens/schema"
)

// FilterModels returns a new slice holding the models whose name contains the
// search term (case-insensitive) and, when membership is non-nil, whose
// lower-cased name appears in it. The canonical list is never mutated.
func FilterModels(models []schema.Model, search string, membership map[string]bool) []schema.Model {
	term := strings.ToLower(search)
	filtered := make([]schema.Model, 0, len(models))
	for _, m := range models {
		key := strings.ToLower(m.Name)
		if term != "" && !strings.Contains(key, term) {
			continue
		}
		if membership != nil && !membership[key] {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered
}

// containsFold reports whether s contains substr, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ArenaMembership builds the lower-cased name set of an arena, used to
// restrict the primary view to models present in that arena.
func ArenaMembership(entries []schema.ArenaEntry) map[string]bool {
	membership := make(map[string]bool, len(entries))
	for _, e := range entries {
		membership[strings.ToLower(e.Model)] = true
	}
	return membership
}

// SortModels returns a copy sorted ascending by the given category's rank.
// Unranked models sort last.
func SortModels(models []schema.Model, cat schema.Category) []schema.Model {
	sorted := make([]schema.Model, len(models))
	copy(sorted, models)
	sort.SliceStable(sorted, func(i, j int) bool {
		return rankOrLast(sorted[i], cat) < rankOrLast(sorted[j], cat)
	})
	return sorted
}

// rankOrLast maps the unranked marker past every real rank.
func rankOrLast(m schema.Model, cat schema.Category) int {
	if r := m.Rank(cat); r > 0 {
		return r
	}
	return int(^uint(0) >> 1)
}

// TopOverall returns the n best models by overall rank.
func TopOverall(models []schema.Model, n int) []schema.Model {
	sorted := SortModels(models, schema.CategoryOverall)
	if len(sorted) > n {
		return sorted[:n]
	}
	return sorted
}

// BestInCategory returns the best-ranked model of a category, if anyone is
// ranked in it.
func BestInCategory(models []schema.Model, cat schema.Category) (schema.Model, bool) {
	var best schema.Model
	found := false
	for _, m := range models {
		if !m.HasRank(cat) {
			continue
		}
		if !found || m.Rank(cat) < best.Rank(cat) {
			best = m
			found = true
		}
	}
	return best, found
}
