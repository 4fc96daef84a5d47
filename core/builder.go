package core

import (
	"github.com/arenalens/arenalens/internal/csvtab"
	"github.com/arenalens/arenalens/schema"
)

// Arena file column names.
const (
	arenaColRank        = "Rank"
	arenaColSpreadUpper = "Rank_Spread_Upper"
	arenaColSpreadLower = "Rank_Spread_Lower"
	arenaColModel       = "Model"
	arenaColScore       = "Score"
	arenaColCI95        = "CI_95"
	arenaColVotes       = "Votes"
	arenaColOrg         = "Organization"
	arenaColLicense     = "License"
)

// primaryColModel is the name column of the primary file.
const primaryColModel = "model"

// BuildModels turns a parsed primary table into the Model list. A row
// survives only when its name is non-empty and its overall rank parses to a
// positive integer; every other category parses independently and may stay
// absent. Dropped rows are not reported — partial rows are routine in the
// upstream data and must not abort the load.
func BuildModels(t *csvtab.Table) []schema.Model {
	var models []schema.Model
	for i := 0; i < t.Len(); i++ {
		name := t.Field(i, primaryColModel)
		overall := csvtab.ParseRank(t.Field(i, schema.CategoryColumns[schema.CategoryOverall]))
		if name == "" || overall == 0 {
			continue
		}
		ranks := make(map[schema.Category]int, len(schema.AllCategories))
		ranks[schema.CategoryOverall] = overall
		for _, cat := range schema.AllCategories {
			if cat == schema.CategoryOverall {
				continue
			}
			if r := csvtab.ParseRank(t.Field(i, schema.CategoryColumns[cat])); r > 0 {
				ranks[cat] = r
			}
		}
		models = append(models, schema.Model{Name: name, Ranks: ranks})
	}
	return models
}

// CountCategories reports how many of the expected category columns the
// primary header actually carried. Informational only.
func CountCategories(t *csvtab.Table) int {
	count := 0
	for _, cat := range schema.AllCategories {
		if t.HasColumn(schema.CategoryColumns[cat]) {
			count++
		}
	}
	return count
}

// BuildArena turns a parsed arena table into its entry list, preserving file
// order. A row survives when its model name is non-empty and its rank parses
// to an integer; zero and negative ranks are accepted here, unlike the primary
// list's positive-overall requirement. The asymmetry is intentional: the
// arena rule enforces presence, not range.
func BuildArena(t *csvtab.Table) []schema.ArenaEntry {
	var entries []schema.ArenaEntry
	for i := 0; i < t.Len(); i++ {
		model := t.Field(i, arenaColModel)
		rank, ok := csvtab.ParseInt(t.Field(i, arenaColRank))
		if model == "" || !ok {
			continue
		}
		upper, upperOK := csvtab.ParseInt(t.Field(i, arenaColSpreadUpper))
		lower, lowerOK := csvtab.ParseInt(t.Field(i, arenaColSpreadLower))
		votes, votesOK := csvtab.ParseInt(t.Field(i, arenaColVotes))
		entries = append(entries, schema.ArenaEntry{
			Rank:         rank,
			SpreadUpper:  upper,
			SpreadLower:  lower,
			SpreadKnown:  upperOK && lowerOK,
			Model:        model,
			Score:        csvtab.ParseFloat(t.Field(i, arenaColScore)),
			CI95:         csvtab.ParseFloat(t.Field(i, arenaColCI95)),
			Votes:        votes,
			VotesKnown:   votesOK,
			Organization: t.Field(i, arenaColOrg),
			License:      t.Field(i, arenaColLicense),
		})
	}
	return entries
}
