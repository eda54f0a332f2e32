// Package report renders styled usage reports as text, JSON, or Markdown.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/yacobolo/styledscan/internal/styled"
)

// Reporter writes the human-readable report
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintSummary outputs totals followed by the ranked identifier details.
// Without colors the output is:
//
//	3 files scanned
//	Native elements restyled: 2
//	Custom elements restyled: 1
//	Details:
//	  div: 2
//	  Button: 1
func (r *Reporter) PrintSummary(report styled.AggregateReport) {
	fmt.Fprintf(r.w, "%d files scanned\n", report.FilesScanned)
	fmt.Fprintf(r.w, "Native elements restyled: %s\n",
		RenderStyle(StyleGreen, fmt.Sprint(report.NativeTotal), r.useColors))
	fmt.Fprintf(r.w, "Custom elements restyled: %s\n",
		RenderStyle(StyleYellow, fmt.Sprint(report.CustomTotal), r.useColors))
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Details:", r.useColors))

	for _, detail := range report.Ranked {
		fmt.Fprintf(r.w, "  %s: %d\n", detail.Name, detail.Count)
	}
}

// PrintMatches lists every match as file:line:col: text (kind).
// Files are listed by name, matches in source order.
func (r *Reporter) PrintMatches(results []styled.FileScanResult) {
	sorted := make([]styled.FileScanResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Filename < sorted[j].Filename
	})

	printed := false
	for _, result := range sorted {
		for _, m := range result.Matches {
			location := fmt.Sprintf("%s:%d:%d:", result.Filename, m.Line, m.Column)
			fmt.Fprintf(r.w, "%s %s %s\n",
				RenderStyle(StyleCyan, location, r.useColors),
				m.Text,
				RenderStyle(StyleGray, "("+m.Kind.String()+")", r.useColors))
			printed = true
		}
	}

	if printed {
		fmt.Fprintln(r.w, "")
	}
}
