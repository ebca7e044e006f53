// Package insights turns a user's raw workout history into time-windowed
// analytics. Every function is pure: results depend only on the arguments,
// including the reference instant now, so concurrent callers need no locking.
package insights

import (
	"fmt"
	"math"
	"time"

	"alcyxob/fitness-tracker/internal/domain"
)

// Compute normalizes the workouts once and runs every calculator over the
// same entries. profile may be nil.
func Compute(workouts []domain.Workout, profile *domain.Profile, now time.Time) Insights {
	now = now.UTC()
	entries := Normalize(workouts, now)

	return Insights{
		WeeklyProgress: WeeklyGoalProgress(entries, profile, now),
		WeekComparison: CompareWeeks(entries, now),
		Streaks:        Streaks(entries, now),
		Frequency:      FrequencySeries(entries, now),
		Calories:       CalorieSeries(entries, now),
		TypeBreakdown:  TypeBreakdown(entries),
		Consistency:    Consistency(entries),
	}
}

// Summarize totals the calories of all workouts.
func Summarize(workouts []domain.Workout) Summary {
	total := 0
	for _, w := range workouts {
		total += w.Calories
	}
	return Summary{
		TotalCalories: total,
		Message:       fmt.Sprintf("You've burned %d calories!", total),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
