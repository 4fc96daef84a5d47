package schema

// Default analytics control values.
const (
	DefaultVersatilityTopN = 3
	DefaultCRTopN          = 3
)

// DefaultMarketShareOrgs are the organizations tracked by the market-share
// breakdown when no explicit focus list is configured.
var DefaultMarketShareOrgs = []string{"Google", "OpenAI", "Anthropic"}

// Controls are the adjustable parameters gating several analytics functions.
// They are plain inputs: changing a control re-runs only the computations that
// read it and never requires a data reload.
type Controls struct {
	VersatilityTopN int      // Top-N cutoff for the versatility index (min 1)
	CRTopN          int      // Top-K numerator for the concentration ratio (min 1)
	OrgFilter       []string // Organizations to keep in filtered views; empty = all
}

// DefaultControls returns the control values the dashboard starts with.
func DefaultControls() Controls {
	return Controls{
		VersatilityTopN: DefaultVersatilityTopN,
		CRTopN:          DefaultCRTopN,
	}
}

// Normalize clamps control values into their valid ranges.
func (c Controls) Normalize() Controls {
	if c.VersatilityTopN < 1 {
		c.VersatilityTopN = DefaultVersatilityTopN
	}
	if c.CRTopN < 1 {
		c.CRTopN = DefaultCRTopN
	}
	return c
}

// OverlapPair marks two top-10 arena entries whose 95% confidence intervals
// intersect. Overlapping entries are statistically indistinguishable; no
// strict winner may be claimed between them.
type OverlapPair struct {
	Arena  Arena
	ModelA string
	ModelB string
}

// Emerging marks a "high quality, low visibility" arena entry: score at or
// above the arena's 80th percentile with votes at or below the 30th.
type Emerging struct {
	Arena Arena
	Entry ArenaEntry
}

// ArenaLeader is the rank-1 entry of an arena.
type ArenaLeader struct {
	Arena Arena
	Entry ArenaEntry
}

// OrgChampion counts the arenas led (rank 1) by one organization.
type OrgChampion struct {
	Organization string
	Arenas       []Arena
}

// LicenseAverages holds the mean score of open versus proprietary entries
// within one arena.
type LicenseAverages struct {
	Open        float64
	Proprietary float64
}

// CategorySummary describes the raw rank distribution of one category.
type CategorySummary struct {
	Category Category
	Mean     float64
	Best     int
	Worst    int
	Count    int
}

// OrgPoint is one organization's volume/performance coordinate: how many
// entries it fields across all arenas versus its mean score.
type OrgPoint struct {
	Organization string
	Count        int
	MeanScore    float64
}

// RankBracket is one bucket of the overall-rank distribution.
type RankBracket struct {
	Label string
	Min   int
	Max   int
	Count int
}

// CategoryLeader is the best-ranked model of one category.
type CategoryLeader struct {
	Category Category
	Name     string
	Rank     int
}

// Overview is the render model of the overview command: headline stats, the
// top of the primary leaderboard, and the per-category leaders.
type Overview struct {
	TotalModels        int
	CategoriesDetected int
	TopModel           string
	TopModels          []Model
	Leaders            []CategoryLeader
}

// AnalyticsReport bundles every derived statistic for one snapshot under one
// set of controls. It is rebuilt from scratch on every control change; no
// piece of it survives a data reload.
type AnalyticsReport struct {
	Correlations       ChartSeries   // Spearman of each category against overall
	Performance        []ChartSeries // Bracketed 0-100 averages, one series per spotlighted category
	Difficulty         ChartSeries   // Score standard deviation per arena
	Concentration      ChartSeries   // CR_k per arena
	MeanSpreads        ChartSeries   // Mean top-20 rank spread per arena
	LicenseOpen        ChartSeries   // Mean open-license score per arena
	LicenseProprietary ChartSeries   // Mean proprietary-license score per arena
	Versatility        ChartSeries   // Arenas with a top-N placement, per organization
	MarketShare        []ChartSeries // Top-10 share per tracked organization across arenas
	Overlaps           []OverlapPair
	Emerging           []Emerging
	Leaders            []ArenaLeader
	Champions          []OrgChampion
	Categories         []CategorySummary
	Distribution       []RankBracket
	OrgPoints          []OrgPoint
	CRTopN             int // The k used for the Concentration series
	VersatilityTopN    int // The n used for the Versatility series
}

// RankBrackets returns the fixed brackets used by the distribution and
// performance views.
func RankBrackets() []RankBracket {
	return []RankBracket{
		{Label: "Top 10", Min: 1, Max: 10},
		{Label: "11-50", Min: 11, Max: 50},
		{Label: "51-100", Min: 51, Max: 100},
		{Label: "101-200", Min: 101, Max: 200},
		{Label: "201+", Min: 201, Max: 10000},
	}
}
