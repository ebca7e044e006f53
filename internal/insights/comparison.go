package insights

import "time"

// CompareWeeks sums the current and the previous calendar week and reports
// the percent change of each figure.
func CompareWeeks(entries []Entry, now time.Time) WeekComparison {
	thisWeek := totals(inWeek(entries, now, 0))
	lastWeek := totals(inWeek(entries, now, 1))

	return WeekComparison{
		ThisWeek: thisWeek,
		LastWeek: lastWeek,
		Change: PeriodChange{
			Workouts: PercentChange(thisWeek.Workouts, lastWeek.Workouts),
			Duration: PercentChange(thisWeek.Duration, lastWeek.Duration),
			Calories: PercentChange(thisWeek.Calories, lastWeek.Calories),
		},
	}
}

// PercentChange returns (current-previous)/previous*100 rounded to one
// decimal. With no previous activity it is 100 for any growth and 0 otherwise.
func PercentChange(current, previous int) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return round1(float64(current-previous) / float64(previous) * 100)
}
