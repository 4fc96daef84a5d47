package agg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenalens/arenalens/schema"
)

// entry builds an arena entry for aggregation tests.
func entry(model, org string) schema.ArenaEntry {
	return schema.ArenaEntry{Rank: 1, Model: model, Organization: org, Score: math.NaN(), CI95: math.NaN()}
}

func TestBuildOrgProfiles(t *testing.T) {
	arenas := map[schema.Arena][]schema.ArenaEntry{
		schema.TextArena: {
			entry("gpt-4o", "OpenAI"),
			entry("gpt-4o-mini", "OpenAI"),
			entry("mystery", ""), // unnamed orgs are skipped
		},
		schema.VisionArena: {
			entry("gpt-4o", "OpenAI"), // same model in a second arena
			entry("homegrown", "Startup Labs"),
		},
	}

	profiles := BuildOrgProfiles(arenas)
	require.Len(t, profiles, 2)

	openai := profiles["OpenAI"]
	require.NotNil(t, openai)
	assert.Equal(t, "USA", openai.Country)
	assert.Len(t, openai.Models, 2)
	assert.Len(t, openai.Arenas, 2)

	startup := profiles["Startup Labs"]
	require.NotNil(t, startup)
	assert.Equal(t, "unknown", startup.Country)
}

func TestSortedOrgNames(t *testing.T) {
	profiles := map[string]*schema.OrgProfile{
		"Zed":   {},
		"Alpha": {},
	}
	assert.Equal(t, []string{"Alpha", "Zed"}, SortedOrgNames(profiles))
}

func TestCountryCounts(t *testing.T) {
	models := []schema.Model{
		{Name: "gpt-4", Ranks: map[schema.Category]int{schema.CategoryOverall: 1}},
		{Name: "mystery-model", Ranks: map[schema.Category]int{schema.CategoryOverall: 2}},
	}
	arenas := map[schema.Arena][]schema.ArenaEntry{
		schema.TextArena: {
			entry("GPT-4", "OpenAI"),     // same model, different case: counted once
			entry("claude-3", "Anthropic"),
			entry("org-only", "Cohere"),  // prefix miss, org fallback
			entry("nobody", "Obscure Co"), // resolves to the unknown country
		},
	}

	points := CountryCounts(models, arenas)

	byCountry := make(map[string]schema.GeoPoint)
	for _, p := range points {
		byCountry[p.Country] = p
	}

	// gpt-4 deduped across sources plus claude-3.
	assert.Equal(t, 2, byCountry["USA"].Count)
	assert.Equal(t, 1, byCountry["Canada"].Count)
	assert.Equal(t, 1, byCountry["unknown"].Count)

	// Unresolvable primary models are not attributed anywhere.
	total := 0
	for _, p := range points {
		total += p.Count
	}
	assert.Equal(t, 4, total)

	// Points come back sorted by country.
	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i-1].Country, points[i].Country)
	}
}
