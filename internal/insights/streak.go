package insights

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// civilDate truncates t to midnight UTC of its calendar day so that dates
// compare without any time-of-day component.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// uniqueDates returns the distinct calendar dates of entries, newest first.
func uniqueDates(entries []Entry) []time.Time {
	seen := make(map[time.Time]struct{}, len(entries))
	dates := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		d := civilDate(e.At)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}

func isDayBefore(earlier, later time.Time) bool {
	return earlier.AddDate(0, 0, 1).Equal(later)
}

// Streaks finds the current and the longest run of consecutive workout days.
// The current streak is only alive if the last workout was today or yesterday.
func Streaks(entries []Entry, now time.Time) StreakInfo {
	dates := uniqueDates(entries)
	if len(dates) == 0 {
		return StreakInfo{}
	}

	last := dates[0].Format(dateLayout)
	info := StreakInfo{LastWorkoutDate: &last}

	today := civilDate(now)
	if dates[0].Equal(today) || isDayBefore(dates[0], today) {
		info.CurrentStreak = 1
		cursor := dates[0]
		for _, d := range dates[1:] {
			if !isDayBefore(d, cursor) {
				break
			}
			info.CurrentStreak++
			cursor = d
		}
	}

	run := 1
	info.LongestStreak = 1
	for i := 1; i < len(dates); i++ {
		if isDayBefore(dates[i], dates[i-1]) {
			run++
		} else {
			run = 1
		}
		if run > info.LongestStreak {
			info.LongestStreak = run
		}
	}
	return info
}
