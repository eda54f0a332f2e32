package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/styledscan/internal/styled"
)

// WriteMarkdown writes a shareable Markdown report
func WriteMarkdown(w io.Writer, report styled.AggregateReport) error {
	var b strings.Builder

	b.WriteString("# Styled Usage Report\n\n")
	b.WriteString("| Metric | Count |\n")
	b.WriteString("|--------|------:|\n")
	fmt.Fprintf(&b, "| Files scanned | %d |\n", report.FilesScanned)
	fmt.Fprintf(&b, "| Native elements restyled | %d |\n", report.NativeTotal)
	fmt.Fprintf(&b, "| Custom elements restyled | %d |\n", report.CustomTotal)

	if report.Total() > 0 {
		fmt.Fprintf(&b, "\nNative share: **%.1f%%**\n", nativeShare(report))
	}

	b.WriteString("\n## Details\n\n")
	if len(report.Ranked) == 0 {
		b.WriteString("_No styled usage found._\n")
	} else {
		b.WriteString("| Identifier | Count |\n")
		b.WriteString("|------------|------:|\n")
		for _, d := range report.Ranked {
			fmt.Fprintf(&b, "| `%s` | %d |\n", d.Name, d.Count)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// nativeShare returns the percentage of native wraps among all wraps
func nativeShare(report styled.AggregateReport) float64 {
	total := report.Total()
	if total == 0 {
		return 0
	}
	return float64(report.NativeTotal) / float64(total) * 100
}
