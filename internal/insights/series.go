package insights

import "time"

const (
	seriesWeeks = 8
	weekLabel   = "Jan 02"
)

// FrequencySeries counts workouts per week over the trailing eight weeks,
// oldest week first.
func FrequencySeries(entries []Entry, now time.Time) []FrequencyPoint {
	points := make([]FrequencyPoint, 0, seriesWeeks)
	for weeksAgo := seriesWeeks - 1; weeksAgo >= 0; weeksAgo-- {
		start, _ := WeekBounds(now, weeksAgo)
		points = append(points, FrequencyPoint{
			Week:     start.Format(weekLabel),
			Workouts: len(inWeek(entries, now, weeksAgo)),
		})
	}
	return points
}

// CalorieSeries sums calories per week over the trailing eight weeks,
// oldest week first.
func CalorieSeries(entries []Entry, now time.Time) []CaloriePoint {
	points := make([]CaloriePoint, 0, seriesWeeks)
	for weeksAgo := seriesWeeks - 1; weeksAgo >= 0; weeksAgo-- {
		start, _ := WeekBounds(now, weeksAgo)
		points = append(points, CaloriePoint{
			Week:     start.Format(weekLabel),
			Calories: totals(inWeek(entries, now, weeksAgo)).Calories,
		})
	}
	return points
}
