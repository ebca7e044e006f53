package service

import "errors"

// --- Error Definitions ---
var (
	ErrWorkoutNotFound        = errors.New("workout not found")
	ErrPlannedWorkoutNotFound = errors.New("planned workout not found")
	ErrProfileNotFound        = errors.New("profile not found")
	ErrInvalidWorkout         = errors.New("invalid workout")
	ErrInvalidPlannedWorkout  = errors.New("invalid planned workout")
	ErrExportFailed           = errors.New("failed to export workouts")
)
