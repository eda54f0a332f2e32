// Package styled finds and counts uses of the `styled` helper of CSS-in-JS
// libraries in script sources.
//
// The package is split along the scan pipeline:
//
//   - ListFiles discovers eligible source files under a root directory
//   - ScanContent extracts styled.x and styled(X) uses from one file
//   - Aggregate folds per-file results into a ranked report
package styled

// ElementKind classifies what a styled call wraps
type ElementKind int

const (
	// Native is a built-in markup element wrapped via dot access: styled.div
	Native ElementKind = iota
	// Custom is a user component wrapped via call syntax: styled(Button)
	Custom
)

// String returns the lowercase kind name used in listings and JSON
func (k ElementKind) String() string {
	if k == Native {
		return "native"
	}
	return "custom"
}

// Match is a single styled use found in a file
type Match struct {
	Identifier string      // "div", "Button"
	Kind       ElementKind // Native or Custom
	Offset     int         // Byte offset of "styled" in the file content
	Text       string      // Matched source text: "styled.div", "styled(Button)"
	Line       int         // 1-based, zero until ResolvePositions runs
	Column     int         // 1-based, zero until ResolvePositions runs
}

// FileScanResult holds the counts for one scanned file
type FileScanResult struct {
	Filename      string
	NativeCount   int
	CustomCount   int
	PerIdentifier map[string]int // identifier -> occurrences (shared across kinds)
	Matches       []Match
}

// Total returns NativeCount + CustomCount
func (r FileScanResult) Total() int {
	return r.NativeCount + r.CustomCount
}

// Detail is one row of the ranked identifier list
type Detail struct {
	Name  string
	Count int
}

// AggregateReport is the merged result of a whole run
type AggregateReport struct {
	FilesScanned  int
	NativeTotal   int
	CustomTotal   int
	PerIdentifier map[string]int
	Ranked        []Detail // Count descending, then name ascending
}
