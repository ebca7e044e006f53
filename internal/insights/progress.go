package insights

import (
	"math"
	"time"

	"alcyxob/fitness-tracker/internal/domain"
)

// WeeklyGoalProgress measures the current week against the profile's weekly
// goal. It returns nil when no goal is configured, which callers must render
// differently from zero progress.
func WeeklyGoalProgress(entries []Entry, profile *domain.Profile, now time.Time) *WeeklyProgress {
	if !profile.HasWeeklyGoal() {
		return nil
	}

	thisWeek := totals(inWeek(entries, now, 0))
	progress := &WeeklyProgress{
		Target:     profile.WeeklyTargetValue,
		TargetType: profile.WeeklyTargetType,
	}
	if profile.WeeklyTargetType == domain.TargetTypeWorkouts {
		progress.Current = thisWeek.Workouts
		progress.Unit = "workouts"
	} else {
		progress.Current = thisWeek.Duration
		progress.Unit = "minutes"
	}

	if progress.Target > 0 {
		pct := round1(float64(progress.Current) / progress.Target * 100)
		progress.Percentage = math.Max(0, math.Min(pct, 100))
	}
	return progress
}
