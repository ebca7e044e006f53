package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alcyxob/fitness-tracker/internal/domain"
)

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 0.0, PercentChange(0, 0))
	assert.Equal(t, 100.0, PercentChange(5, 0))
	assert.Equal(t, 100.0, PercentChange(10, 5))
	assert.Equal(t, -50.0, PercentChange(5, 10))
	assert.Equal(t, -100.0, PercentChange(0, 3))
	assert.Equal(t, 33.3, PercentChange(4, 3))
}

func TestCompareWeeks(t *testing.T) {
	workouts := []domain.Workout{
		workout("running", 30, 300, daysAgo(2)), // Monday this week
		workout("cycling", 45, 400, daysAgo(1)), // Tuesday this week
		workout("yoga", 20, 150, daysAgo(7)),    // Wednesday last week
		workout("yoga", 60, 500, daysAgo(14)),   // two weeks ago, ignored
	}

	cmp := CompareWeeks(Normalize(workouts, testNow), testNow)

	assert.Equal(t, PeriodTotals{Workouts: 2, Duration: 75, Calories: 700}, cmp.ThisWeek)
	assert.Equal(t, PeriodTotals{Workouts: 1, Duration: 20, Calories: 150}, cmp.LastWeek)
	assert.Equal(t, PeriodChange{Workouts: 100, Duration: 275, Calories: 366.7}, cmp.Change)
}

func TestCompareWeeks_Decline(t *testing.T) {
	workouts := []domain.Workout{
		workout("running", 30, 300, daysAgo(0)),
		workout("running", 30, 300, daysAgo(8)),
		workout("running", 30, 300, daysAgo(9)),
	}

	cmp := CompareWeeks(Normalize(workouts, testNow), testNow)

	assert.Equal(t, -50.0, cmp.Change.Workouts)
	assert.Equal(t, -50.0, cmp.Change.Duration)
	assert.Equal(t, -50.0, cmp.Change.Calories)
}

func TestCompareWeeks_NoActivity(t *testing.T) {
	cmp := CompareWeeks(nil, testNow)
	assert.Equal(t, WeekComparison{}, cmp)
}
