package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/arenalens/arenalens/internal/contract"
	"github.com/arenalens/arenalens/internal/parquet"
	"github.com/arenalens/arenalens/schema"
)

// exportColumns is the fixed column order of the re-import CSV format. The
// names match the primary source file so an exported file parses back into
// the same models.
var exportColumns = []schema.Category{
	schema.CategoryOverall,
	schema.CategoryExpert,
	schema.CategoryHardPrompts,
	schema.CategoryCoding,
	schema.CategoryMath,
	schema.CategoryCreativeWriting,
	schema.CategoryInstructionFollowing,
	schema.CategoryLongerQuery,
}

// WriteModelTable outputs the primary leaderboard view, dispatching based on
// the output format configured.
func WriteModelTable(models []schema.Model, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeModelJSON(w, models)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeModelCSV(w, models)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeModelParquet(models, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeModelTable(w, models, cfg)
		}, "Wrote table")
	}
}

// ExportModels writes the view in the re-import format: the fixed nine-column
// header with "-" marking absent ranks. JSON and Parquet modes substitute
// their own encodings; text and CSV both produce the CSV re-import file.
func ExportModels(models []schema.Model, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeModelJSON(w, models)
		}, "Wrote JSON")
	case schema.ParquetOut:
		return writeModelParquet(models, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeModelCSV(w, models)
		}, "Wrote CSV")
	}
}

// writeModelTable generates and writes the human-readable leaderboard table.
func writeModelTable(w io.Writer, models []schema.Model, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	headers := []string{"#", "Model"}
	for _, cat := range exportColumns {
		headers = append(headers, schema.CategoryLabel(cat))
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxName := getMaxTableNameWidth(cfg, len(exportColumns))
	var data [][]string
	for i, m := range models {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(m.Name, maxName),
		}
		for _, cat := range exportColumns {
			row = append(row, contract.ColorRank(m.Rank(cat), cfg.UseColors))
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d models\n", len(models))
	return err
}

// writeModelCSV writes the view in the re-import CSV format.
func writeModelCSV(w io.Writer, models []schema.Model) error {
	header := make([]string, 0, len(exportColumns)+1)
	header = append(header, schema.CategoryColumns[schema.CategoryOverall], "model")
	for _, cat := range exportColumns[1:] {
		header = append(header, schema.CategoryColumns[cat])
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, m := range models {
			rec := make([]string, 0, len(header))
			rec = append(rec, contract.FormatRank(m.Overall()), m.Name)
			for _, cat := range exportColumns[1:] {
				rec = append(rec, contract.FormatRank(m.Rank(cat)))
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeModelJSON writes the view in JSON format with positions added.
func writeModelJSON(w io.Writer, models []schema.Model) error {
	// 1. Prepare the data structure for JSON with position added
	type JSONModel struct {
		Position int            `json:"position"`
		Name     string         `json:"name"`
		Ranks    map[string]int `json:"ranks"`
	}

	output := make([]JSONModel, len(models))
	for i, m := range models {
		ranks := make(map[string]int, len(m.Ranks))
		for cat, rank := range m.Ranks {
			ranks[string(cat)] = rank
		}
		output[i] = JSONModel{Position: i + 1, Name: m.Name, Ranks: ranks}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// writeModelParquet writes the view as a Parquet file. Parquet is a binary
// columnar format, so a concrete output file is required.
func writeModelParquet(models []schema.Model, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	if err := parquet.WriteModelsParquet(parquet.ModelRows(models), cfg.OutputFile); err != nil {
		return fmt.Errorf("error writing Parquet output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// WriteOverview outputs the headline view, dispatching based on the output
// format configured.
func WriteOverview(overview *schema.Overview, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOverviewJSON(w, overview)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeModelCSV(w, overview.TopModels)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOverviewText(w, overview, cfg, duration)
		}, "Wrote text")
	}
}

// writeOverviewText displays the overview in human-readable text format.
func writeOverviewText(w io.Writer, overview *schema.Overview, cfg *contract.Config, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "🏆 Arena Leaderboard Overview\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "=============================\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Models ranked:       %d\n", overview.TotalModels); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Categories detected: %d\n", overview.CategoriesDetected); err != nil {
		return err
	}
	if overview.TopModel != "" {
		if _, err := fmt.Fprintf(w, "Top model:           %s\n", overview.TopModel); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	if err := writeModelTable(w, overview.TopModels, cfg); err != nil {
		return err
	}

	if len(overview.Leaders) > 0 {
		if _, err := fmt.Fprintf(w, "\nCategory leaders:\n"); err != nil {
			return err
		}
		for _, leader := range overview.Leaders {
			if _, err := fmt.Fprintf(w, "  %-22s %s (#%d)\n", schema.CategoryLabel(leader.Category), leader.Name, leader.Rank); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "\nLoaded in %v\n", duration)
	return err
}

// writeOverviewJSON displays the overview in JSON format.
func writeOverviewJSON(w io.Writer, overview *schema.Overview) error {
	type JSONLeader struct {
		Category string `json:"category"`
		Name     string `json:"name"`
		Rank     int    `json:"rank"`
	}
	type JSONOverview struct {
		TotalModels        int          `json:"total_models"`
		CategoriesDetected int          `json:"categories_detected"`
		TopModel           string       `json:"top_model"`
		TopModels          []string     `json:"top_models"`
		Leaders            []JSONLeader `json:"leaders"`
	}

	output := JSONOverview{
		TotalModels:        overview.TotalModels,
		CategoriesDetected: overview.CategoriesDetected,
		TopModel:           overview.TopModel,
	}
	for _, m := range overview.TopModels {
		output.TopModels = append(output.TopModels, m.Name)
	}
	for _, leader := range overview.Leaders {
		output.Leaders = append(output.Leaders, JSONLeader{
			Category: string(leader.Category),
			Name:     leader.Name,
			Rank:     leader.Rank,
		})
	}
	return writeJSON(w, output)
}
