// Package agg has aggregation logic over the loaded leaderboard data.
//
// Everything here is derived on demand from a snapshot; nothing is persisted
// or cached across loads.
package agg

import (
	"sort"
	"strings"

	"github.com/arenalens/arenalens/internal/identity"
	"github.com/arenalens/arenalens/schema"
)

// BuildOrgProfiles aggregates every arena into per-organization profiles:
// resolved country, the distinct model names observed, and the arenas the
// organization appears in. Entries without an organization are grouped under
// their literal empty string's bucket only if the source stated one; unnamed
// entries are skipped since there is nothing to profile.
func BuildOrgProfiles(arenas map[schema.Arena][]schema.ArenaEntry) map[string]*schema.OrgProfile {
	profiles := make(map[string]*schema.OrgProfile)
	for arena, entries := range arenas {
		for _, e := range entries {
			if e.Organization == "" {
				continue
			}
			profile := profiles[e.Organization]
			if profile == nil {
				profile = &schema.OrgProfile{
					Name:    e.Organization,
					Country: identity.ResolveOrg(e.Organization).Country,
					Models:  make(map[string]bool),
					Arenas:  make(map[schema.Arena]bool),
				}
				profiles[e.Organization] = profile
			}
			profile.Models[e.Model] = true
			profile.Arenas[arena] = true
		}
	}
	return profiles
}

// SortedOrgNames returns profile keys in alphabetical order for stable output.
func SortedOrgNames(profiles map[string]*schema.OrgProfile) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// countryTally accumulates per-country counts while deduplicating models.
type countryTally struct {
	counts  map[string]int
	orgs    map[string]map[string]bool
	counted map[string]bool
}

// add counts one model toward a country at most once per distinct lower-cased
// name, across every source; the first resolution wins. The organization set
// grows regardless of which source contributed it.
func (t *countryTally) add(country, org, nameKey string) {
	if country == "" {
		return
	}
	if nameKey != "" {
		if t.counted[nameKey] {
			return
		}
		t.counted[nameKey] = true
	}
	t.counts[country]++
	if org == "" {
		org = "N/A"
	}
	if t.orgs[country] == nil {
		t.orgs[country] = make(map[string]bool)
	}
	t.orgs[country][org] = true
}

// CountryCounts builds the geographic aggregates behind the map view. Primary
// models are attributed through name-prefix resolution only; arena entries try
// the prefix first and fall back to their explicit organization field. A model
// appearing in several sources counts once. Points come back sorted by
// country.
func CountryCounts(models []schema.Model, arenas map[schema.Arena][]schema.ArenaEntry) []schema.GeoPoint {
	tally := &countryTally{
		counts:  make(map[string]int),
		orgs:    make(map[string]map[string]bool),
		counted: make(map[string]bool),
	}

	for _, m := range models {
		key := lowerKey(m.Name)
		if id, ok := identity.Resolve(m.Name); ok {
			tally.add(id.Country, id.Organization, key)
		}
	}

	for _, arena := range schema.AllArenas {
		for _, e := range arenas[arena] {
			key := lowerKey(e.Model)
			if id, ok := identity.Resolve(e.Model); ok {
				tally.add(id.Country, id.Organization, key)
				continue
			}
			id := identity.ResolveOrg(e.Organization)
			tally.add(id.Country, e.Organization, key)
		}
	}

	points := make([]schema.GeoPoint, 0, len(tally.counts))
	for country, count := range tally.counts {
		var orgs []string
		for org := range tally.orgs[country] {
			orgs = append(orgs, org)
		}
		sort.Strings(orgs)
		points = append(points, schema.GeoPoint{Country: country, Count: count, Orgs: orgs})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Country < points[j].Country })
	return points
}

// lowerKey normalizes a model name into its dedupe key.
func lowerKey(name string) string {
	return strings.ToLower(name)
}
