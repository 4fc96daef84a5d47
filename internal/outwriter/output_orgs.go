package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/arenalens/arenalens/internal/contract"
	"github.com/arenalens/arenalens/schema"
)

// WriteOrgs outputs the per-organization profiles and footprint points,
// dispatching based on the output format configured.
func WriteOrgs(profiles map[string]*schema.OrgProfile, points []schema.OrgPoint, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOrgsJSON(w, profiles, points)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOrgsCSV(w, profiles, points, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOrgsText(w, profiles, points, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// sortedProfileNames returns the profile keys in lexical order.
func sortedProfileNames(profiles map[string]*schema.OrgProfile) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// pointsByOrg indexes footprint points by organization.
func pointsByOrg(points []schema.OrgPoint) map[string]schema.OrgPoint {
	indexed := make(map[string]schema.OrgPoint, len(points))
	for _, p := range points {
		indexed[p.Organization] = p
	}
	return indexed
}

// writeOrgsText generates and writes the human-readable organization table.
func writeOrgsText(w io.Writer, profiles map[string]*schema.OrgProfile, points []schema.OrgPoint, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Organization", "Country", "Models", "Arenas", "Entries", "Mean Score"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	indexed := pointsByOrg(points)
	var data [][]string
	for _, name := range sortedProfileNames(profiles) {
		profile := profiles[name]
		entries, meanScore := "-", "-"
		if p, ok := indexed[name]; ok {
			entries = strconv.Itoa(p.Count)
			meanScore = fmtFloat(p.MeanScore)
		}
		data = append(data, []string{
			contract.TruncateName(profile.Name, getMaxTableNameWidth(cfg, 5)),
			profile.Country,
			strconv.Itoa(len(profile.Models)),
			strconv.Itoa(len(profile.Arenas)),
			entries,
			meanScore,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d organizations\n", len(profiles))
	return err
}

// writeOrgsCSV writes the organization profiles in CSV format.
func writeOrgsCSV(w io.Writer, profiles map[string]*schema.OrgProfile, points []schema.OrgPoint, fmtFloat func(float64) string) error {
	header := []string{"organization", "country", "models", "arenas", "entries", "mean_score"}
	indexed := pointsByOrg(points)
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, name := range sortedProfileNames(profiles) {
			profile := profiles[name]
			entries, meanScore := "", ""
			if p, ok := indexed[name]; ok {
				entries = strconv.Itoa(p.Count)
				meanScore = fmtFloat(p.MeanScore)
			}
			rec := []string{
				profile.Name,
				profile.Country,
				strconv.Itoa(len(profile.Models)),
				strconv.Itoa(len(profile.Arenas)),
				entries,
				meanScore,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeOrgsJSON writes the organization profiles in JSON format.
func writeOrgsJSON(w io.Writer, profiles map[string]*schema.OrgProfile, points []schema.OrgPoint) error {
	type JSONOrg struct {
		Organization string   `json:"organization"`
		Country      string   `json:"country"`
		Models       []string `json:"models"`
		Arenas       []string `json:"arenas"`
		Entries      int      `json:"entries"`
		MeanScore    float64  `json:"mean_score"`
	}

	indexed := pointsByOrg(points)
	output := make([]JSONOrg, 0, len(profiles))
	for _, name := range sortedProfileNames(profiles) {
		profile := profiles[name]
		org := JSONOrg{Organization: profile.Name, Country: profile.Country}
		for model := range profile.Models {
			org.Models = append(org.Models, model)
		}
		sort.Strings(org.Models)
		for arena := range profile.Arenas {
			org.Arenas = append(org.Arenas, string(arena))
		}
		sort.Strings(org.Arenas)
		if p, ok := indexed[name]; ok {
			org.Entries = p.Count
			org.MeanScore = p.MeanScore
		}
		output = append(output, org)
	}
	return writeJSON(w, output)
}

// WriteGeo outputs the per-country aggregates, dispatching based on the
// output format configured.
func WriteGeo(points []schema.GeoPoint, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGeoJSON(w, points)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"country", "models", "organizations"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, p := range points {
					rec := []string{p.Country, strconv.Itoa(p.Count), strings.Join(p.Orgs, "|")}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGeoText(w, points)
		}, "Wrote table")
	}
}

// writeGeoText generates and writes the human-readable country table.
func writeGeoText(w io.Writer, points []schema.GeoPoint) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Country", "Models", "Organizations"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range points {
		data = append(data, []string{p.Country, strconv.Itoa(p.Count), strings.Join(p.Orgs, ", ")})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d countries\n", len(points))
	return err
}

// writeGeoJSON writes the country aggregates in JSON format.
func writeGeoJSON(w io.Writer, points []schema.GeoPoint) error {
	type JSONGeo struct {
		Country       string   `json:"country"`
		Models        int      `json:"models"`
		Organizations []string `json:"organizations"`
	}

	output := make([]JSONGeo, 0, len(points))
	for _, p := range points {
		output = append(output, JSONGeo{Country: p.Country, Models: p.Count, Organizations: p.Orgs})
	}
	return writeJSON(w, output)
}
