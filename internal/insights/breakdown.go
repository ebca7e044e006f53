package insights

import "sort"

const unknownType = "Unknown"

func typeLabel(t string) string {
	if t == "" {
		return unknownType
	}
	return t
}

// TypeBreakdown groups entries by workout type, most frequent first. Types
// with equal counts keep the order in which they were first seen.
func TypeBreakdown(entries []Entry) []TypeStat {
	index := make(map[string]int)
	stats := make([]TypeStat, 0)
	for _, e := range entries {
		label := typeLabel(e.Type)
		i, ok := index[label]
		if !ok {
			i = len(stats)
			index[label] = i
			stats = append(stats, TypeStat{Type: label})
		}
		stats[i].Count++
		stats[i].Duration += e.Duration
		stats[i].Calories += e.Calories
	}

	total := len(entries)
	for i := range stats {
		if total > 0 {
			stats[i].Percentage = round1(float64(stats[i].Count) / float64(total) * 100)
		}
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Count > stats[j].Count })
	return stats
}
