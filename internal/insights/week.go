package insights

import "time"

const weekLength = 7

// WeekBounds returns the Sunday-to-Saturday window that is weeksAgo weeks
// before the week containing ref. start is Sunday 00:00:00 and end is the
// following Saturday 23:59:59, both in ref's location. Both ends are inclusive.
func WeekBounds(ref time.Time, weeksAgo int) (start, end time.Time) {
	daysSinceSunday := int(ref.Weekday())
	day := ref.AddDate(0, 0, -(daysSinceSunday + weekLength*weeksAgo))
	start = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, ref.Location())
	end = start.AddDate(0, 0, weekLength-1).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return start, end
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// inWeek returns the entries falling into the week weeksAgo weeks before now.
func inWeek(entries []Entry, now time.Time, weeksAgo int) []Entry {
	start, end := WeekBounds(now, weeksAgo)
	var out []Entry
	for _, e := range entries {
		if within(e.At, start, end) {
			out = append(out, e)
		}
	}
	return out
}

func totals(entries []Entry) PeriodTotals {
	t := PeriodTotals{Workouts: len(entries)}
	for _, e := range entries {
		t.Duration += e.Duration
		t.Calories += e.Calories
	}
	return t
}
