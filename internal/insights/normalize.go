package insights

import (
	"sort"
	"strings"
	"time"

	"alcyxob/fitness-tracker/internal/domain"
)

// Entry is a workout decorated with its parsed timestamp. The embedded
// Workout is left untouched.
type Entry struct {
	domain.Workout
	At time.Time
}

// Layouts tried in order. Offset-less values are interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp. ok is false when the value is
// empty or matches none of the accepted layouts.
func ParseTimestamp(value string) (t time.Time, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}

// Normalize parses every workout's timestamp, substituting now for missing or
// malformed values, and returns the entries ordered newest first. Workouts
// sharing an instant keep their input order.
func Normalize(workouts []domain.Workout, now time.Time) []Entry {
	entries := make([]Entry, 0, len(workouts))
	for _, w := range workouts {
		at, ok := ParseTimestamp(w.Timestamp)
		if !ok {
			at = now
		}
		entries = append(entries, Entry{Workout: w, At: at})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At.After(entries[j].At)
	})
	return entries
}

// Workouts strips the decoration, preserving order.
func Workouts(entries []Entry) []domain.Workout {
	out := make([]domain.Workout, len(entries))
	for i, e := range entries {
		out[i] = e.Workout
	}
	return out
}
