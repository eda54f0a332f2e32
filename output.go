package styledscan

import (
	"fmt"
	"io"

	"github.com/yacobolo/styledscan/internal/report"
)

// OutputFormat represents the report output format
type OutputFormat string

const (
	// OutputText is the plain summary followed by per-identifier details
	OutputText OutputFormat = "text"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat maps a format flag value to an OutputFormat.
// An empty value selects text; an unknown value is an error.
func DetermineOutputFormat(formatFlag string) (OutputFormat, error) {
	switch formatFlag {
	case "", "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	case "markdown", "md":
		return OutputMarkdown, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, or markdown)", formatFlag)
	}
}

// WriteOutput writes the scan result in the specified format.
// Match locations are listed ahead of the text summary when they were resolved.
func WriteOutput(w io.Writer, result *Result, format OutputFormat, useColors bool) error {
	switch format {
	case OutputJSON:
		return report.WriteJSON(w, result.Report, result.Files)

	case OutputMarkdown:
		return report.WriteMarkdown(w, result.Report)

	default:
		reporter := report.NewReporter(w, useColors)
		if hasPositions(result.Files) {
			reporter.PrintMatches(result.Files)
		}
		reporter.PrintSummary(result.Report)
		return nil
	}
}

// hasPositions reports whether any match carries a resolved location
func hasPositions(files []FileScanResult) bool {
	for _, f := range files {
		for _, m := range f.Matches {
			if m.Line > 0 {
				return true
			}
		}
	}
	return false
}
