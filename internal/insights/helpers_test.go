package insights

import (
	"time"

	"alcyxob/fitness-tracker/internal/domain"
)

// testNow is a Wednesday. Its week runs Sun 2024-01-07 .. Sat 2024-01-13.
var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func workout(typ string, duration, calories int, at time.Time) domain.Workout {
	return domain.Workout{
		ID:        at.Format(time.RFC3339Nano) + typ,
		UserID:    "user-1",
		Type:      typ,
		Duration:  duration,
		Calories:  calories,
		Timestamp: at.Format(time.RFC3339),
	}
}

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}
