package insights

// Insights is the composite analytics result for one user. It is computed per
// request and never persisted.
type Insights struct {
	WeeklyProgress *WeeklyProgress  `json:"weekly_progress"` // nil when no weekly goal is set
	WeekComparison WeekComparison   `json:"week_comparison"`
	Streaks        StreakInfo       `json:"streaks"`
	Frequency      []FrequencyPoint `json:"frequency"`
	Calories       []CaloriePoint   `json:"calories"`
	TypeBreakdown  []TypeStat       `json:"type_breakdown"`
	Consistency    ConsistencyStats `json:"consistency"`
}

// WeeklyProgress tracks the current week against the profile's weekly goal.
type WeeklyProgress struct {
	Current    int     `json:"current"`
	Target     float64 `json:"target"`
	Percentage float64 `json:"percentage"`
	Unit       string  `json:"unit"`
	TargetType string  `json:"target_type"`
}

// PeriodTotals are the summed figures of one calendar week.
type PeriodTotals struct {
	Workouts int `json:"workouts"`
	Duration int `json:"duration"`
	Calories int `json:"calories"`
}

// PeriodChange holds percent changes between two PeriodTotals.
type PeriodChange struct {
	Workouts float64 `json:"workouts"`
	Duration float64 `json:"duration"`
	Calories float64 `json:"calories"`
}

type WeekComparison struct {
	ThisWeek PeriodTotals `json:"this_week"`
	LastWeek PeriodTotals `json:"last_week"`
	Change   PeriodChange `json:"change"`
}

type StreakInfo struct {
	CurrentStreak   int     `json:"current_streak"`
	LongestStreak   int     `json:"longest_streak"`
	LastWorkoutDate *string `json:"last_workout_date"` // YYYY-MM-DD, nil without workouts
}

// FrequencyPoint is the number of workouts in the week starting on Week.
type FrequencyPoint struct {
	Week     string `json:"week"`
	Workouts int    `json:"workouts"`
}

// CaloriePoint is the calories burned in the week starting on Week.
type CaloriePoint struct {
	Week     string `json:"week"`
	Calories int    `json:"calories"`
}

type TypeStat struct {
	Type       string  `json:"type"`
	Count      int     `json:"count"`
	Duration   int     `json:"duration"`
	Calories   int     `json:"calories"`
	Percentage float64 `json:"percentage"`
}

type ConsistencyStats struct {
	TotalWorkouts         int     `json:"total_workouts"`
	TotalDuration         int     `json:"total_duration"`
	TotalCalories         int     `json:"total_calories"`
	AvgWorkoutsPerWeek    float64 `json:"avg_workouts_per_week"`
	AvgDurationPerWorkout float64 `json:"avg_duration_per_workout"`
	MostActiveDay         string  `json:"most_active_day"`
	FavoriteWorkoutType   string  `json:"favorite_workout_type"`
}

// Summary is the lightweight calorie total served by /insights/summary.
type Summary struct {
	TotalCalories int    `json:"total_calories"`
	Message       string `json:"message"`
}
