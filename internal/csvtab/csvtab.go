// Package csvtab turns raw delimited text into name-addressable rows.
//
// Upstream leaderboard files are uncurated: rows come with missing fields,
// placeholder dashes and stray blank lines. The parser is therefore tolerant
// by construction; it never fails, and field coercion maps anything it cannot
// read to an explicit "absent" value instead of aborting the load.
package csvtab

import (
	"math"
	"strconv"
	"strings"
)

// delimiter is fixed; the leaderboard sources never quote fields.
const delimiter = ","

// Table holds parsed rows addressable by column name. Column lookup is by
// name, not position: reading a column the header never declared yields an
// absent value for every row rather than an error.
type Table struct {
	cols map[string]int
	rows [][]string
}

// Parse splits raw text into a Table using the first non-blank line as the
// header. Blank lines are skipped entirely, including a trailing newline from
// the transport. Text with fewer than two non-blank lines yields an empty
// table.
func Parse(text string) *Table {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) < 2 {
		return &Table{cols: map[string]int{}}
	}

	cols := make(map[string]int)
	for i, name := range splitFields(lines[0]) {
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}

	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, splitFields(line))
	}
	return &Table{cols: cols, rows: rows}
}

// splitFields splits one line on the delimiter and trims each field.
func splitFields(line string) []string {
	parts := strings.Split(line, delimiter)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether the header declared the given column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Field returns the raw trimmed value at (row, column), or the empty string
// when the column is undeclared or the row is too short.
func (t *Table) Field(row int, column string) string {
	idx, ok := t.cols[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return ""
	}
	fields := t.rows[row]
	if idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

// ParseRank coerces a field to a positive 1-based rank. Empty fields, the "-"
// placeholder, non-numeric strings and non-positive values all coerce to 0,
// the "unranked" marker.
func ParseRank(s string) int {
	v, ok := ParseInt(s)
	if !ok || v <= 0 {
		return 0
	}
	return v
}

// ParseInt coerces a field to an integer. The boolean is false for empty
// fields, the "-" placeholder and non-numeric strings. Zero and negative
// values parse successfully.
func ParseInt(s string) (int, bool) {
	if s == "" || s == "-" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseFloat coerces a field to a float64, with NaN as the absent marker.
func ParseFloat(s string) float64 {
	if s == "" || s == "-" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
