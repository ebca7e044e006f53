package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/insights"
	"alcyxob/fitness-tracker/internal/observability"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// WorkoutService manages the workouts a user has logged.
type WorkoutService interface {
	// LogWorkout creates the workout, or overwrites the caller's workout with the same ID.
	LogWorkout(ctx context.Context, userID string, input domain.Workout) (*domain.Workout, error)
	// ListWorkouts returns the caller's workouts, most recent first.
	ListWorkouts(ctx context.Context, userID string) ([]domain.Workout, error)
	GetWorkout(ctx context.Context, userID, workoutID string) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, userID, workoutID string) error
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		now:         time.Now,
	}
}

func (s *workoutService) LogWorkout(ctx context.Context, userID string, input domain.Workout) (*domain.Workout, error) {
	input.Type = strings.TrimSpace(input.Type)
	if input.Type == "" {
		return nil, fmt.Errorf("%w: type is required", ErrInvalidWorkout)
	}
	if input.Duration < 0 || input.Calories < 0 {
		return nil, fmt.Errorf("%w: duration and calories must not be negative", ErrInvalidWorkout)
	}

	workout := input
	workout.UserID = userID
	if workout.ID == "" {
		workout.ID = uuid.NewString()
	} else {
		// Overwriting someone else's record is treated like a lookup miss.
		existing, err := s.workoutRepo.GetByID(ctx, workout.ID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
		case err != nil:
			return nil, fmt.Errorf("checking existing workout: %w", err)
		case existing.UserID != userID:
			return nil, ErrWorkoutNotFound
		}
	}
	if strings.TrimSpace(workout.Timestamp) == "" {
		workout.Timestamp = s.now().UTC().Format(time.RFC3339)
	}

	if err := s.workoutRepo.Put(ctx, &workout); err != nil {
		log.Errorf("Error storing workout %s for user %s: %v", workout.ID, userID, err)
		return nil, fmt.Errorf("failed to store workout: %w", err)
	}
	observability.RecordWorkoutLogged()

	log.WithFields(log.Fields{"user_id": userID, "workout_id": workout.ID, "type": workout.Type}).Debug("workout logged")
	return &workout, nil
}

func (s *workoutService) ListWorkouts(ctx context.Context, userID string) ([]domain.Workout, error) {
	workouts, err := s.workoutRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return insights.Workouts(insights.Normalize(workouts, s.now().UTC())), nil
}

func (s *workoutService) GetWorkout(ctx context.Context, userID, workoutID string) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}
	if workout.UserID != userID {
		return nil, ErrWorkoutNotFound
	}
	return workout, nil
}

func (s *workoutService) DeleteWorkout(ctx context.Context, userID, workoutID string) error {
	if _, err := s.GetWorkout(ctx, userID, workoutID); err != nil {
		return err
	}
	if err := s.workoutRepo.Delete(ctx, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	return nil
}
