package outwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenalens/arenalens/core"
	"github.com/arenalens/arenalens/internal/contract"
	"github.com/arenalens/arenalens/internal/csvtab"
	"github.com/arenalens/arenalens/internal/outwriter"
	"github.com/arenalens/arenalens/schema"
)

const exportSample = `model,overall,coding,math
gpt-4o,1,2,3
claude-3-opus,2,-,1
gemini-pro,3,1,-
`

// TestExportRoundTrip exports the leaderboard to CSV and re-imports the file,
// expecting the same models with the same overall ranks.
func TestExportRoundTrip(t *testing.T) {
	models := core.BuildModels(csvtab.Parse(exportSample))
	require.Len(t, models, 3)

	cfg := &contract.Config{
		Output:     schema.CSVOut,
		OutputFile: filepath.Join(t.TempDir(), "export.csv"),
	}
	require.NoError(t, outwriter.ExportModels(models, cfg))

	raw, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	reimported := core.BuildModels(csvtab.Parse(string(raw)))
	require.Len(t, reimported, len(models))
	for i, m := range models {
		assert.Equal(t, m.Name, reimported[i].Name)
		assert.Equal(t, m.Overall(), reimported[i].Overall())
		assert.Equal(t, m.Rank(schema.CategoryCoding), reimported[i].Rank(schema.CategoryCoding))
		assert.Equal(t, m.Rank(schema.CategoryMath), reimported[i].Rank(schema.CategoryMath))
	}
}

// TestExportJSONMode verifies the JSON export path produces a parseable file.
func TestExportJSONMode(t *testing.T) {
	models := core.BuildModels(csvtab.Parse(exportSample))
	cfg := &contract.Config{
		Output:     schema.JSONOut,
		OutputFile: filepath.Join(t.TempDir(), "export.json"),
	}
	require.NoError(t, outwriter.ExportModels(models, cfg))

	raw, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"name": "gpt-4o"`)
	assert.Contains(t, string(raw), `"position": 1`)
}

func TestExportParquetRequiresFile(t *testing.T) {
	models := core.BuildModels(csvtab.Parse(exportSample))
	cfg := &contract.Config{Output: schema.ParquetOut}
	err := outwriter.ExportModels(models, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file")
}
