package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/arenalens/arenalens/internal/contract"
	"github.com/arenalens/arenalens/schema"
)

// WriteAnalytics outputs the full analytics report, dispatching based on the
// output format configured.
func WriteAnalytics(report *schema.AnalyticsReport, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, buildAnalyticsJSON(report))
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalyticsCSV(w, report, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalyticsText(w, report, fmtFloat)
		}, "Wrote text")
	}
}

// writeAnalyticsText displays the report in human-readable text format.
func writeAnalyticsText(w io.Writer, report *schema.AnalyticsReport, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "📊 Arena Analytics\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "==================\n"); err != nil {
		return err
	}

	if err := writeSeriesTable(w, report.Correlations.Name, []schema.ChartSeries{report.Correlations}, "Category", fmtFloat); err != nil {
		return err
	}
	if err := writeSeriesTable(w, "Bracketed Performance (0-100)", report.Performance, "Bracket", fmtFloat); err != nil {
		return err
	}
	if err := writeSeriesTable(w, report.Difficulty.Name, []schema.ChartSeries{report.Difficulty}, "Arena", fmtFloat); err != nil {
		return err
	}
	crTitle := fmt.Sprintf("Concentration Ratio (top %d)", report.CRTopN)
	if err := writeSeriesTable(w, crTitle, []schema.ChartSeries{report.Concentration}, "Arena", fmtFloat); err != nil {
		return err
	}
	if err := writeSeriesTable(w, report.MeanSpreads.Name, []schema.ChartSeries{report.MeanSpreads}, "Arena", fmtFloat); err != nil {
		return err
	}
	license := []schema.ChartSeries{report.LicenseOpen, report.LicenseProprietary}
	if err := writeSeriesTable(w, "Mean Score by License", license, "Arena", fmtFloat); err != nil {
		return err
	}
	versatilityTitle := fmt.Sprintf("Versatility (arenas with top-%d placement)", report.VersatilityTopN)
	if err := writeSeriesTable(w, versatilityTitle, []schema.ChartSeries{report.Versatility}, "Organization", fmtFloat); err != nil {
		return err
	}
	if len(report.MarketShare) > 0 {
		if err := writeSeriesTable(w, "Top-10 Market Share (%)", report.MarketShare, "Arena", fmtFloat); err != nil {
			return err
		}
	}

	if err := writeOverlapsText(w, report.Overlaps); err != nil {
		return err
	}
	if err := writeEmergingText(w, report.Emerging, fmtFloat); err != nil {
		return err
	}
	if err := writeLeadersText(w, report.Leaders, fmtFloat); err != nil {
		return err
	}
	if err := writeChampionsText(w, report.Champions); err != nil {
		return err
	}
	if err := writeCategoriesText(w, report.Categories, fmtFloat); err != nil {
		return err
	}
	if err := writeDistributionText(w, report.Distribution); err != nil {
		return err
	}
	return writeOrgPointsText(w, report.OrgPoints, fmtFloat)
}

// writeSeriesTable renders one or more series sharing a label axis as a table
// with one column per series.
func writeSeriesTable(w io.Writer, title string, series []schema.ChartSeries, axis string, fmtFloat func(float64) string) error {
	if len(series) == 0 || len(series[0].Labels) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	headers := []string{axis}
	for _, s := range series {
		headers = append(headers, s.Name)
	}
	table.Header(headers)
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, label := range series[0].Labels {
		row := []string{label}
		for _, s := range series {
			if i < len(s.Values) {
				row = append(row, fmtFloat(s.Values[i]))
			} else {
				row = append(row, "-")
			}
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeOverlapsText lists the statistically indistinguishable top-10 pairs.
func writeOverlapsText(w io.Writer, overlaps []schema.OverlapPair) error {
	if _, err := fmt.Fprintf(w, "\nOverlapping confidence intervals (top 10): %d pairs\n", len(overlaps)); err != nil {
		return err
	}
	for _, pair := range overlaps {
		if _, err := fmt.Fprintf(w, "  %-14s %s ~ %s\n", schema.ArenaLabel(pair.Arena), pair.ModelA, pair.ModelB); err != nil {
			return err
		}
	}
	return nil
}

// writeEmergingText lists the high-score, low-vote entries.
func writeEmergingText(w io.Writer, emerging []schema.Emerging, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "\nEmerging models (high score, low votes): %d\n", len(emerging)); err != nil {
		return err
	}
	for _, e := range emerging {
		if _, err := fmt.Fprintf(w, "  %-14s %s (score %s, votes %s)\n",
			schema.ArenaLabel(e.Arena), e.Entry.Model, formatScore(e.Entry, fmtFloat), formatVotes(e.Entry)); err != nil {
			return err
		}
	}
	return nil
}

// writeLeadersText lists each arena's rank-1 entry.
func writeLeadersText(w io.Writer, leaders []schema.ArenaLeader, fmtFloat func(float64) string) error {
	if len(leaders) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\nArena leaders:\n"); err != nil {
		return err
	}
	for _, leader := range leaders {
		if _, err := fmt.Fprintf(w, "  %-14s %s (%s, score %s)\n",
			schema.ArenaLabel(leader.Arena), leader.Entry.Model, leader.Entry.Organization, formatScore(leader.Entry, fmtFloat)); err != nil {
			return err
		}
	}
	return nil
}

// writeChampionsText lists organizations by arenas led.
func writeChampionsText(w io.Writer, champions []schema.OrgChampion) error {
	if len(champions) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\nOrganizations by arenas led:\n"); err != nil {
		return err
	}
	for _, champ := range champions {
		labels := make([]string, 0, len(champ.Arenas))
		for _, arena := range champ.Arenas {
			labels = append(labels, schema.ArenaLabel(arena))
		}
		if _, err := fmt.Fprintf(w, "  %-14s %d (%s)\n", champ.Organization, len(champ.Arenas), strings.Join(labels, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// writeCategoriesText renders the per-category rank summaries.
func writeCategoriesText(w io.Writer, categories []schema.CategorySummary, fmtFloat func(float64) string) error {
	if len(categories) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\nCategory rank summaries\n"); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Category", "Ranked", "Mean", "Best", "Worst"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, c := range categories {
		data = append(data, []string{
			schema.CategoryLabel(c.Category),
			strconv.Itoa(c.Count),
			fmtFloat(c.Mean),
			contract.FormatRank(c.Best),
			contract.FormatRank(c.Worst),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeDistributionText renders the overall-rank bracket counts.
func writeDistributionText(w io.Writer, distribution []schema.RankBracket) error {
	if len(distribution) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\nOverall rank distribution:\n"); err != nil {
		return err
	}
	for _, bracket := range distribution {
		if _, err := fmt.Fprintf(w, "  %-8s %d\n", bracket.Label, bracket.Count); err != nil {
			return err
		}
	}
	return nil
}

// writeOrgPointsText renders the volume/performance coordinates.
func writeOrgPointsText(w io.Writer, points []schema.OrgPoint, fmtFloat func(float64) string) error {
	if len(points) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\nOrganization footprint\n"); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Organization", "Entries", "Mean Score"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, p := range points {
		data = append(data, []string{p.Organization, strconv.Itoa(p.Count), fmtFloat(p.MeanScore)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeAnalyticsCSV flattens every series into section/label/value records.
func writeAnalyticsCSV(w io.Writer, report *schema.AnalyticsReport, fmtFloat func(float64) string) error {
	header := []string{"section", "series", "label", "value"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		write := func(section string, series ...schema.ChartSeries) error {
			for _, s := range series {
				for i, label := range s.Labels {
					rec := []string{section, s.Name, label, fmtFloat(s.Values[i])}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
			}
			return nil
		}
		if err := write("correlations", report.Correlations); err != nil {
			return err
		}
		if err := write("performance", report.Performance...); err != nil {
			return err
		}
		if err := write("difficulty", report.Difficulty); err != nil {
			return err
		}
		if err := write("concentration", report.Concentration); err != nil {
			return err
		}
		if err := write("mean_spreads", report.MeanSpreads); err != nil {
			return err
		}
		if err := write("license", report.LicenseOpen, report.LicenseProprietary); err != nil {
			return err
		}
		if err := write("versatility", report.Versatility); err != nil {
			return err
		}
		return write("market_share", report.MarketShare...)
	})
}

// buildAnalyticsJSON converts the report to a JSON-safe render model. Arena
// entries are converted so absent values encode as null instead of NaN.
func buildAnalyticsJSON(report *schema.AnalyticsReport) any {
	type JSONOverlap struct {
		Arena  string `json:"arena"`
		ModelA string `json:"model_a"`
		ModelB string `json:"model_b"`
	}
	type JSONTagged struct {
		Arena string    `json:"arena"`
		Entry jsonEntry `json:"entry"`
	}
	type JSONChampion struct {
		Organization string   `json:"organization"`
		Arenas       []string `json:"arenas"`
	}
	type JSONCategory struct {
		Category string  `json:"category"`
		Mean     float64 `json:"mean"`
		Best     int     `json:"best"`
		Worst    int     `json:"worst"`
		Count    int     `json:"count"`
	}
	type JSONBracket struct {
		Label string `json:"label"`
		Count int    `json:"count"`
	}
	type JSONOrgPoint struct {
		Organization string  `json:"organization"`
		Count        int     `json:"count"`
		MeanScore    float64 `json:"mean_score"`
	}
	type JSONReport struct {
		Correlations       schema.ChartSeries   `json:"correlations"`
		Performance        []schema.ChartSeries `json:"performance"`
		Difficulty         schema.ChartSeries   `json:"difficulty"`
		Concentration      schema.ChartSeries   `json:"concentration"`
		MeanSpreads        schema.ChartSeries   `json:"mean_spreads"`
		LicenseOpen        schema.ChartSeries   `json:"license_open"`
		LicenseProprietary schema.ChartSeries   `json:"license_proprietary"`
		Versatility        schema.ChartSeries   `json:"versatility"`
		MarketShare        []schema.ChartSeries `json:"market_share"`
		Overlaps           []JSONOverlap        `json:"overlaps"`
		Emerging           []JSONTagged         `json:"emerging"`
		Leaders            []JSONTagged         `json:"leaders"`
		Champions          []JSONChampion       `json:"champions"`
		Categories         []JSONCategory       `json:"categories"`
		Distribution       []JSONBracket        `json:"distribution"`
		OrgPoints          []JSONOrgPoint       `json:"org_points"`
		CRTopN             int                  `json:"cr_top_n"`
		VersatilityTopN    int                  `json:"versatility_top_n"`
	}

	output := JSONReport{
		Correlations:       report.Correlations,
		Performance:        report.Performance,
		Difficulty:         report.Difficulty,
		Concentration:      report.Concentration,
		MeanSpreads:        report.MeanSpreads,
		LicenseOpen:        report.LicenseOpen,
		LicenseProprietary: report.LicenseProprietary,
		Versatility:        report.Versatility,
		MarketShare:        report.MarketShare,
		CRTopN:             report.CRTopN,
		VersatilityTopN:    report.VersatilityTopN,
	}
	for _, pair := range report.Overlaps {
		output.Overlaps = append(output.Overlaps, JSONOverlap{Arena: string(pair.Arena), ModelA: pair.ModelA, ModelB: pair.ModelB})
	}
	for _, e := range report.Emerging {
		output.Emerging = append(output.Emerging, JSONTagged{Arena: string(e.Arena), Entry: newJSONEntry(e.Entry)})
	}
	for _, leader := range report.Leaders {
		output.Leaders = append(output.Leaders, JSONTagged{Arena: string(leader.Arena), Entry: newJSONEntry(leader.Entry)})
	}
	for _, champ := range report.Champions {
		arenas := make([]string, 0, len(champ.Arenas))
		for _, arena := range champ.Arenas {
			arenas = append(arenas, string(arena))
		}
		output.Champions = append(output.Champions, JSONChampion{Organization: champ.Organization, Arenas: arenas})
	}
	for _, c := range report.Categories {
		output.Categories = append(output.Categories, JSONCategory{
			Category: string(c.Category), Mean: c.Mean, Best: c.Best, Worst: c.Worst, Count: c.Count,
		})
	}
	for _, bracket := range report.Distribution {
		output.Distribution = append(output.Distribution, JSONBracket{Label: bracket.Label, Count: bracket.Count})
	}
	for _, p := range report.OrgPoints {
		output.OrgPoints = append(output.OrgPoints, JSONOrgPoint{Organization: p.Organization, Count: p.Count, MeanScore: p.MeanScore})
	}
	return output
}
