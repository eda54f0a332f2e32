package styled

import "sort"

// Aggregate merges per-file results into one report.
// Totals depend only on the multiset of results, never on their order.
func Aggregate(results []FileScanResult) AggregateReport {
	report := AggregateReport{
		FilesScanned:  len(results),
		PerIdentifier: make(map[string]int),
	}

	for _, r := range results {
		report.NativeTotal += r.NativeCount
		report.CustomTotal += r.CustomCount

		for name, count := range r.PerIdentifier {
			report.PerIdentifier[name] += count
		}
	}

	report.Ranked = Rank(report.PerIdentifier)
	return report
}

// Rank orders identifier counts by count descending.
// Equal counts are ordered by name so the output is deterministic.
func Rank(counts map[string]int) []Detail {
	details := make([]Detail, 0, len(counts))
	for name, count := range counts {
		details = append(details, Detail{Name: name, Count: count})
	}

	sort.Slice(details, func(i, j int) bool {
		if details[i].Count != details[j].Count {
			return details[i].Count > details[j].Count
		}
		return details[i].Name < details[j].Name
	})

	return details
}

// Total returns NativeTotal + CustomTotal
func (r AggregateReport) Total() int {
	return r.NativeTotal + r.CustomTotal
}
