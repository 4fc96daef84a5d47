package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Rank badge tiers mirrored from the dashboard styling.
var (
	podiumColor = color.New(color.FgYellow, color.Bold) // ranks 1-3
	top10Color  = color.New(color.FgGreen, color.Bold)  // ranks 4-10
	top50Color  = color.New(color.FgCyan)               // ranks 11-50
)

// FormatRank renders a 1-based rank for table output, using "-" for the
// unranked marker.
func FormatRank(rank int) string {
	if rank <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d", rank)
}

// ColorRank renders a rank with its badge color for console tables. Unranked
// stays a plain dash.
func ColorRank(rank int, useColors bool) string {
	text := FormatRank(rank)
	if !useColors || rank <= 0 {
		return text
	}
	switch {
	case rank <= 3:
		return podiumColor.Sprint(text)
	case rank <= 10:
		return top10Color.Sprint(text)
	case rank <= 50:
		return top50Color.Sprint(text)
	default:
		return text
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path selects stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateName shortens a model name to at most maxLen runes, keeping the
// head and appending an ellipsis.
func TruncateName(name string, maxLen int) string {
	if maxLen <= 3 {
		maxLen = 3
	}
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-3]) + "..."
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a non-fatal warning.
func LogWarn(msg string, err error) {
	fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", msg, err)
}
