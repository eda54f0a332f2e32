package report

import (
	"encoding/json"
	"io"
	"sort"
	"time"

	"github.com/yacobolo/styledscan/internal/styled"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string       `json:"version"`
	Timestamp string       `json:"timestamp"`
	Summary   JSONSummary  `json:"summary"`
	Details   []JSONDetail `json:"details"`
	Files     []JSONFile   `json:"files"`
}

// JSONSummary contains the run totals
type JSONSummary struct {
	FilesScanned   int `json:"files_scanned"`
	NativeRestyled int `json:"native_restyled"`
	CustomRestyled int `json:"custom_restyled"`
	TotalRestyled  int `json:"total_restyled"`
	UniqueElements int `json:"unique_elements"`
}

// JSONDetail is one ranked identifier
type JSONDetail struct {
	Identifier string `json:"identifier"`
	Count      int    `json:"count"`
}

// JSONFile contains per-file counts
type JSONFile struct {
	File    string         `json:"file"`
	Native  int            `json:"native"`
	Custom  int            `json:"custom"`
	Matches []JSONMatch    `json:"matches,omitempty"`
	Details map[string]int `json:"details"`
}

// JSONMatch is a single match location, present when positions were resolved
type JSONMatch struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Kind   string `json:"kind"`
	Text   string `json:"text"`
}

// WriteJSON writes the report and per-file results as indented JSON
func WriteJSON(w io.Writer, report styled.AggregateReport, results []styled.FileScanResult) error {
	output := buildJSONOutput(report, results)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts the aggregate report to JSONOutput
func buildJSONOutput(report styled.AggregateReport, results []styled.FileScanResult) JSONOutput {
	details := make([]JSONDetail, len(report.Ranked))
	for i, d := range report.Ranked {
		details[i] = JSONDetail{Identifier: d.Name, Count: d.Count}
	}

	files := make([]JSONFile, 0, len(results))
	for _, r := range results {
		file := JSONFile{
			File:    r.Filename,
			Native:  r.NativeCount,
			Custom:  r.CustomCount,
			Details: r.PerIdentifier,
		}
		for _, m := range r.Matches {
			if m.Line == 0 {
				continue
			}
			file.Matches = append(file.Matches, JSONMatch{
				Line:   m.Line,
				Column: m.Column,
				Kind:   m.Kind.String(),
				Text:   m.Text,
			})
		}
		files = append(files, file)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].File < files[j].File
	})

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			FilesScanned:   report.FilesScanned,
			NativeRestyled: report.NativeTotal,
			CustomRestyled: report.CustomTotal,
			TotalRestyled:  report.Total(),
			UniqueElements: len(report.PerIdentifier),
		},
		Details: details,
		Files:   files,
	}
}
