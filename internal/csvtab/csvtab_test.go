package csvtab

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantRows int
	}{
		{
			name:     "empty input",
			text:     "",
			wantRows: 0,
		},
		{
			name:     "header only",
			text:     "model,overall\n",
			wantRows: 0,
		},
		{
			name:     "header and rows",
			text:     "model,overall\na,1\nb,2\n",
			wantRows: 2,
		},
		{
			name:     "blank lines skipped",
			text:     "model,overall\n\na,1\n\n\nb,2\n",
			wantRows: 2,
		},
		{
			name:     "whitespace-only lines skipped",
			text:     "model,overall\n   \na,1\n",
			wantRows: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Parse(tt.text)
			assert.Equal(t, tt.wantRows, table.Len())
		})
	}
}

func TestParseNeverErrors(t *testing.T) {
	// Garbage in, empty values out; the parser has no failure mode.
	inputs := []string{
		"not,a,header\n,,,,,\n####",
		"\n\n\n",
		"model",
		"a,b,c\n1",
	}
	for _, text := range inputs {
		table := Parse(text)
		assert.NotNil(t, table)
		assert.Equal(t, "", table.Field(0, "missing"))
	}
}

func TestFieldLookup(t *testing.T) {
	table := Parse("model, overall ,score\n gpt-4 ,1,95.5\nclaude,2\n")

	assert.True(t, table.HasColumn("overall"))
	assert.False(t, table.HasColumn("votes"))

	// Fields and headers are trimmed on both sides.
	assert.Equal(t, "gpt-4", table.Field(0, "model"))
	assert.Equal(t, "95.5", table.Field(0, "score"))

	// Short rows read as absent, not out of range.
	assert.Equal(t, "", table.Field(1, "score"))

	// Undeclared columns and out-of-range rows read as absent.
	assert.Equal(t, "", table.Field(0, "votes"))
	assert.Equal(t, "", table.Field(5, "model"))
	assert.Equal(t, "", table.Field(-1, "model"))
}

func TestDuplicateColumnFirstWins(t *testing.T) {
	table := Parse("rank,rank\n1,2\n")
	assert.Equal(t, "1", table.Field(0, "rank"))
}

func TestParseRank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "positive rank", input: "7", expected: 7},
		{name: "zero coerces to unranked", input: "0", expected: 0},
		{name: "negative coerces to unranked", input: "-3", expected: 0},
		{name: "dash placeholder", input: "-", expected: 0},
		{name: "empty field", input: "", expected: 0},
		{name: "non-numeric", input: "N/A", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseRank(tt.input))
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		ok       bool
	}{
		{name: "positive", input: "42", expected: 42, ok: true},
		{name: "zero parses", input: "0", expected: 0, ok: true},
		{name: "negative parses", input: "-5", expected: -5, ok: true},
		{name: "dash placeholder", input: "-", ok: false},
		{name: "empty field", input: "", ok: false},
		{name: "non-numeric", input: "abc", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ParseInt(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParseFloat(t *testing.T) {
	assert.InDelta(t, 95.5, ParseFloat("95.5"), 0.0001)
	assert.True(t, math.IsNaN(ParseFloat("")))
	assert.True(t, math.IsNaN(ParseFloat("-")))
	assert.True(t, math.IsNaN(ParseFloat("n/a")))
}
