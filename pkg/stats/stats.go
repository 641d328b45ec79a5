package stats

import (
	"sort"

	"sampleprep/pkg/dataprep"
)

// LabelCounts counts how many records carry each label.
func LabelCounts(records []dataprep.Record) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Label]++
	}
	return counts
}

// Labels returns the union of keys of all count maps, sorted.
func Labels(counts ...map[string]int) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, c := range counts {
		for l := range c {
			if !seen[l] {
				seen[l] = true
				labels = append(labels, l)
			}
		}
	}
	sort.Strings(labels)
	return labels
}

// Fraction returns counts[label] / total, or 0 for an empty map.
func Fraction(counts map[string]int, label string) float64 {
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return 0
	}
	return float64(counts[label]) / float64(total)
}
