// internal/domain/planned_workout.go
package domain

import (
	"time"
)

// PlannedWorkout is a workout scheduled for the future. Once done it can be
// linked to the Workout that fulfilled it.
type PlannedWorkout struct {
	ID              string    `bson:"_id" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	WorkoutType     string    `bson:"workout_type" json:"workout_type"`
	PlannedDate     string    `bson:"planned_date" json:"planned_date"` // YYYY-MM-DD
	PlannedTime     string    `bson:"planned_time,omitempty" json:"planned_time,omitempty"`
	PlannedDuration int       `bson:"planned_duration" json:"planned_duration"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	Completed       bool      `bson:"completed" json:"completed"`
	// CompletedWorkoutID links to the Workout that fulfilled this plan. It is a lookup link only.
	CompletedWorkoutID string `bson:"completed_workout_id,omitempty" json:"completed_workout_id,omitempty"`
}
