package domain

import "time"

// Weekly goal target types understood by the insights engine.
// Any other value is treated as a duration (minutes) target.
const (
	TargetTypeWorkouts = "workouts"
	TargetTypeMinutes  = "minutes"
)

// Profile holds a user's physical stats and fitness goals.
// There is exactly one profile per user, keyed by the user ID.
type Profile struct {
	UserID string `bson:"_id" json:"user_id"`

	// --- Physical stats ---
	Height float64 `bson:"height,omitempty" json:"height,omitempty"` // cm
	Weight float64 `bson:"weight,omitempty" json:"weight,omitempty"` // kg
	Age    int     `bson:"age,omitempty" json:"age,omitempty"`
	Sex    string  `bson:"sex,omitempty" json:"sex,omitempty"`

	// --- Goals ---
	TargetWeight      float64 `bson:"target_weight,omitempty" json:"target_weight,omitempty"`
	WeeklyTargetType  string  `bson:"weekly_target_type,omitempty" json:"weekly_target_type,omitempty"`
	WeeklyTargetValue float64 `bson:"weekly_target_value,omitempty" json:"weekly_target_value,omitempty"`
	GoalDeadline      string  `bson:"goal_deadline,omitempty" json:"goal_deadline,omitempty"` // YYYY-MM-DD

	// --- Self-reported context ---
	ActivityLevel    string `bson:"activity_level,omitempty" json:"activity_level,omitempty"`
	GymExperience    string `bson:"gym_experience,omitempty" json:"gym_experience,omitempty"`
	WorkoutFrequency string `bson:"workout_frequency,omitempty" json:"workout_frequency,omitempty"`

	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// HasWeeklyGoal reports whether any weekly goal has been configured.
func (p *Profile) HasWeeklyGoal() bool {
	if p == nil {
		return false
	}
	return p.WeeklyTargetType != "" || p.WeeklyTargetValue != 0
}
