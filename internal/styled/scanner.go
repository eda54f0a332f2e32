package styled

import (
	"bytes"
	"regexp"

	"github.com/tdewolff/parse/v2"
)

// styledPattern finds styled uses.
// Group 1 is the access form: "." for a native element, "(" or empty for a
// custom component. Group 2 is the identifier.
var styledPattern = regexp.MustCompile(`styled([.(]?)(\w+)\)?`)

// ScanContent finds every styled use in content and counts them.
// Matching is a pure find-all over the text, so a single compiled pattern is
// safe to share between goroutines.
func ScanContent(filename string, content []byte) FileScanResult {
	result := FileScanResult{
		Filename:      filename,
		PerIdentifier: make(map[string]int),
	}

	for _, loc := range styledPattern.FindAllSubmatchIndex(content, -1) {
		kind := Custom
		if string(content[loc[2]:loc[3]]) == "." {
			kind = Native
		}
		name := string(content[loc[4]:loc[5]])

		if kind == Native {
			result.NativeCount++
		} else {
			result.CustomCount++
		}
		result.PerIdentifier[name]++

		result.Matches = append(result.Matches, Match{
			Identifier: name,
			Kind:       kind,
			Offset:     loc[0],
			Text:       string(content[loc[0]:loc[1]]),
		})
	}

	return result
}

// ResolvePositions fills Line and Column of every match from content.
// Matches are in offset order, so each one is located by scanning only the
// text since the previous match.
func (r *FileScanResult) ResolvePositions(content []byte) {
	line, col, prev := 1, 1, 0
	for i := range r.Matches {
		offset := r.Matches[i].Offset
		l, c, _ := parse.Position(bytes.NewReader(content[prev:offset]), offset-prev)
		if l == 1 {
			col += c - 1
		} else {
			line += l - 1
			col = c
		}
		prev = offset

		r.Matches[i].Line, r.Matches[i].Column = line, col
	}
}
