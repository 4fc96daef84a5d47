package algo

import (
	"sort"
	"strings"

	"github.com/arenalens/arenalens/schema"
)

// unattributed is the bucket for entries without an organization field.
const unattributed = "N/A"

// orgOrDefault normalizes an empty organization to the unattributed bucket.
func orgOrDefault(org string) string {
	if org == "" {
		return unattributed
	}
	return org
}

// VersatilityIndex counts, per organization, how many arenas the organization
// places in the top n of. An organization fielding several top-n entries in
// one arena is counted once for that arena; higher counts denote cross-domain
// strength.
func VersatilityIndex(arenas map[schema.Arena][]schema.ArenaEntry, n int) map[string]int {
	counts := make(map[string]int)
	for _, entries := range arenas {
		seen := make(map[string]bool)
		for _, e := range TopByRank(entries, n) {
			org := orgOrDefault(e.Organization)
			if !seen[org] {
				seen[org] = true
				counts[org]++
			}
		}
	}
	return counts
}

// MarketShare computes, per arena, the percentage of its top-10 held by each
// tracked organization (matched case-insensitively), rounded to 1 decimal.
// Empty arenas report 0 for every organization.
func MarketShare(arenas map[schema.Arena][]schema.ArenaEntry, orgs []string) map[string][]float64 {
	shares := make(map[string][]float64, len(orgs))
	for _, org := range orgs {
		wanted := strings.ToLower(org)
		values := make([]float64, 0, len(schema.AllArenas))
		for _, arena := range schema.AllArenas {
			top := TopByRank(arenas[arena], 10)
			if len(top) == 0 {
				values = append(values, 0)
				continue
			}
			hits := 0
			for _, e := range top {
				if strings.ToLower(e.Organization) == wanted {
					hits++
				}
			}
			values = append(values, round1(float64(hits)/float64(len(top))*100))
		}
		shares[org] = values
	}
	return shares
}

// ArenaLeaders returns the rank-1 entry of each non-empty arena in display
// order.
func ArenaLeaders(arenas map[schema.Arena][]schema.ArenaEntry) []schema.ArenaLeader {
	var leaders []schema.ArenaLeader
	for _, arena := range schema.AllArenas {
		top := TopByRank(arenas[arena], 1)
		if len(top) == 0 {
			continue
		}
		leaders = append(leaders, schema.ArenaLeader{Arena: arena, Entry: top[0]})
	}
	return leaders
}

// ChampionCounts groups arena leaderships by organization, most-led first.
// Ties break alphabetically for stable output.
func ChampionCounts(arenas map[schema.Arena][]schema.ArenaEntry) []schema.OrgChampion {
	led := make(map[string][]schema.Arena)
	for _, leader := range ArenaLeaders(arenas) {
		org := orgOrDefault(leader.Entry.Organization)
		led[org] = append(led[org], leader.Arena)
	}
	champions := make([]schema.OrgChampion, 0, len(led))
	for org, arenaIDs := range led {
		champions = append(champions, schema.OrgChampion{Organization: org, Arenas: arenaIDs})
	}
	sort.Slice(champions, func(i, j int) bool {
		if len(champions[i].Arenas) != len(champions[j].Arenas) {
			return len(champions[i].Arenas) > len(champions[j].Arenas)
		}
		return champions[i].Organization < champions[j].Organization
	})
	return champions
}

// LicenseSplit averages arena scores for open versus proprietary entries,
// rounded to 1 decimal. A license containing "proprietary" (any case) counts
// as proprietary; anything else, including a missing license, counts as open.
// Absent scores contribute zero to their group's mean.
func LicenseSplit(entries []schema.ArenaEntry) schema.LicenseAverages {
	var openSum, propSum float64
	var openN, propN int
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.License), "proprietary") {
			propSum += scoreOrZero(e)
			propN++
		} else {
			openSum += scoreOrZero(e)
			openN++
		}
	}
	var averages schema.LicenseAverages
	if openN > 0 {
		averages.Open = round1(openSum / float64(openN))
	}
	if propN > 0 {
		averages.Proprietary = round1(propSum / float64(propN))
	}
	return averages
}

// OrgPoints computes each organization's volume/performance coordinate across
// all arenas: total entries fielded versus mean numeric score. When filter is
// non-empty only the listed organizations are returned. Points come back
// sorted by organization for stable output.
func OrgPoints(arenas map[schema.Arena][]schema.ArenaEntry, filter []string) []schema.OrgPoint {
	type acc struct {
		count int
		sum   float64
		n     int
	}
	byOrg := make(map[string]*acc)
	for _, entries := range arenas {
		for _, e := range entries {
			org := orgOrDefault(e.Organization)
			a := byOrg[org]
			if a == nil {
				a = &acc{}
				byOrg[org] = a
			}
			a.count++
			if e.HasScore() {
				a.sum += e.Score
				a.n++
			}
		}
	}

	keep := make(map[string]bool, len(filter))
	for _, org := range filter {
		keep[org] = true
	}

	points := make([]schema.OrgPoint, 0, len(byOrg))
	for org, a := range byOrg {
		if len(keep) > 0 && !keep[org] {
			continue
		}
		point := schema.OrgPoint{Organization: org, Count: a.count}
		if a.n > 0 {
			point.MeanScore = a.sum / float64(a.n)
		}
		points = append(points, point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Organization < points[j].Organization
	})
	return points
}
