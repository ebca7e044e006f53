package insights

import (
	"math"
	"unicode"
	"unicode/utf8"
)

const notAvailable = "N/A"

// orderedCounter counts keys and remembers the order they first appeared in,
// so that ties resolve to the earliest key.
type orderedCounter struct {
	counts map[string]int
	keys   []string
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

func (c *orderedCounter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key]++
}

// top returns the most frequent key; the first-seen key wins a tie.
func (c *orderedCounter) top() (string, bool) {
	best, bestCount := "", 0
	for _, k := range c.keys {
		if c.counts[k] > bestCount {
			best, bestCount = k, c.counts[k]
		}
	}
	return best, bestCount > 0
}

// Consistency summarises the whole history: totals, weekly and per-workout
// averages, the busiest weekday and the favourite workout type.
func Consistency(entries []Entry) ConsistencyStats {
	if len(entries) == 0 {
		return ConsistencyStats{MostActiveDay: notAvailable, FavoriteWorkoutType: notAvailable}
	}

	t := totals(entries)
	stats := ConsistencyStats{
		TotalWorkouts: t.Workouts,
		TotalDuration: t.Duration,
		TotalCalories: t.Calories,
	}

	earliest, latest := civilDate(entries[0].At), civilDate(entries[0].At)
	days := newOrderedCounter()
	types := newOrderedCounter()
	for _, e := range entries {
		d := civilDate(e.At)
		if d.Before(earliest) {
			earliest = d
		}
		if d.After(latest) {
			latest = d
		}
		days.add(e.At.Weekday().String())
		types.add(typeLabel(e.Type))
	}

	rangeDays := int(latest.Sub(earliest).Hours()/24) + 1
	weeks := math.Max(float64(rangeDays)/weekLength, 1)
	stats.AvgWorkoutsPerWeek = round1(float64(stats.TotalWorkouts) / weeks)
	stats.AvgDurationPerWorkout = round1(float64(stats.TotalDuration) / float64(stats.TotalWorkouts))

	stats.MostActiveDay, _ = days.top()
	favorite, _ := types.top()
	stats.FavoriteWorkoutType = capitalize(favorite)
	return stats
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
