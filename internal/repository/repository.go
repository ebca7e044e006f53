package repository

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"
)

// Error constants for the repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// The store is not partitioned per user. Callers must compare the returned
// record's UserID with the requesting identity before exposing or mutating it.

// WorkoutRepository stores logged workouts.
type WorkoutRepository interface {
	// Put inserts the workout or fully replaces the one with the same ID.
	Put(ctx context.Context, workout *domain.Workout) error
	GetByID(ctx context.Context, id string) (*domain.Workout, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Workout, error)
	Delete(ctx context.Context, id string) error
}

// ProfileRepository stores one profile per user.
type ProfileRepository interface {
	Put(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}

// PlannedWorkoutRepository stores scheduled workouts.
type PlannedWorkoutRepository interface {
	Put(ctx context.Context, planned *domain.PlannedWorkout) error
	GetByID(ctx context.Context, id string) (*domain.PlannedWorkout, error)
	ListByUser(ctx context.Context, userID string) ([]domain.PlannedWorkout, error)
	Delete(ctx context.Context, id string) error
}
