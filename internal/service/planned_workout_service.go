package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	plannedDateLayout = "2006-01-02"
	plannedTimeLayout = "15:04"
)

// PlannedWorkoutService manages workouts the user has scheduled.
type PlannedWorkoutService interface {
	Create(ctx context.Context, userID string, input domain.PlannedWorkout) (*domain.PlannedWorkout, error)
	// List returns the caller's plans ordered by planned date and time.
	List(ctx context.Context, userID string) ([]domain.PlannedWorkout, error)
	// Update fully replaces a plan; created_at is kept.
	Update(ctx context.Context, userID, plannedID string, input domain.PlannedWorkout) (*domain.PlannedWorkout, error)
	Delete(ctx context.Context, userID, plannedID string) error
	// Complete marks the plan done and links the workout that fulfilled it.
	Complete(ctx context.Context, userID, plannedID, workoutID string) (*domain.PlannedWorkout, error)
}

type plannedWorkoutService struct {
	plannedRepo repository.PlannedWorkoutRepository
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

func NewPlannedWorkoutService(
	plannedRepo repository.PlannedWorkoutRepository,
	workoutRepo repository.WorkoutRepository,
) PlannedWorkoutService {
	return &plannedWorkoutService{
		plannedRepo: plannedRepo,
		workoutRepo: workoutRepo,
		now:         time.Now,
	}
}

func validatePlannedWorkout(p *domain.PlannedWorkout) error {
	p.WorkoutType = strings.TrimSpace(p.WorkoutType)
	if p.WorkoutType == "" {
		return fmt.Errorf("%w: workout_type is required", ErrInvalidPlannedWorkout)
	}
	if _, err := time.Parse(plannedDateLayout, p.PlannedDate); err != nil {
		return fmt.Errorf("%w: planned_date must be YYYY-MM-DD", ErrInvalidPlannedWorkout)
	}
	if p.PlannedTime != "" {
		if _, err := time.Parse(plannedTimeLayout, p.PlannedTime); err != nil {
			return fmt.Errorf("%w: planned_time must be HH:MM", ErrInvalidPlannedWorkout)
		}
	}
	if p.PlannedDuration < 0 {
		return fmt.Errorf("%w: planned_duration must not be negative", ErrInvalidPlannedWorkout)
	}
	return nil
}

func (s *plannedWorkoutService) Create(ctx context.Context, userID string, input domain.PlannedWorkout) (*domain.PlannedWorkout, error) {
	if err := validatePlannedWorkout(&input); err != nil {
		return nil, err
	}

	planned := input
	planned.ID = uuid.NewString()
	planned.UserID = userID
	planned.CreatedAt = s.now().UTC()
	planned.Completed = false
	planned.CompletedWorkoutID = ""

	if err := s.plannedRepo.Put(ctx, &planned); err != nil {
		log.Errorf("Error storing planned workout for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to create planned workout: %w", err)
	}
	return &planned, nil
}

func (s *plannedWorkoutService) List(ctx context.Context, userID string) ([]domain.PlannedWorkout, error) {
	planned, err := s.plannedRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list planned workouts: %w", err)
	}
	if planned == nil {
		planned = []domain.PlannedWorkout{}
	}
	return planned, nil
}

// owned loads a plan and hides plans that belong to someone else.
func (s *plannedWorkoutService) owned(ctx context.Context, userID, plannedID string) (*domain.PlannedWorkout, error) {
	planned, err := s.plannedRepo.GetByID(ctx, plannedID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlannedWorkoutNotFound
		}
		return nil, fmt.Errorf("failed to get planned workout: %w", err)
	}
	if planned.UserID != userID {
		return nil, ErrPlannedWorkoutNotFound
	}
	return planned, nil
}

func (s *plannedWorkoutService) Update(ctx context.Context, userID, plannedID string, input domain.PlannedWorkout) (*domain.PlannedWorkout, error) {
	if err := validatePlannedWorkout(&input); err != nil {
		return nil, err
	}
	existing, err := s.owned(ctx, userID, plannedID)
	if err != nil {
		return nil, err
	}

	updated := input
	updated.ID = existing.ID
	updated.UserID = userID
	updated.CreatedAt = existing.CreatedAt
	if updated.CompletedWorkoutID != "" {
		if err := s.checkWorkoutOwner(ctx, userID, updated.CompletedWorkoutID); err != nil {
			return nil, err
		}
	}

	if err := s.plannedRepo.Put(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update planned workout: %w", err)
	}
	return &updated, nil
}

func (s *plannedWorkoutService) Delete(ctx context.Context, userID, plannedID string) error {
	if _, err := s.owned(ctx, userID, plannedID); err != nil {
		return err
	}
	if err := s.plannedRepo.Delete(ctx, plannedID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlannedWorkoutNotFound
		}
		return fmt.Errorf("failed to delete planned workout: %w", err)
	}
	return nil
}

func (s *plannedWorkoutService) Complete(ctx context.Context, userID, plannedID, workoutID string) (*domain.PlannedWorkout, error) {
	if strings.TrimSpace(workoutID) == "" {
		return nil, fmt.Errorf("%w: workout_id is required", ErrInvalidPlannedWorkout)
	}
	planned, err := s.owned(ctx, userID, plannedID)
	if err != nil {
		return nil, err
	}
	if err := s.checkWorkoutOwner(ctx, userID, workoutID); err != nil {
		return nil, err
	}

	planned.Completed = true
	planned.CompletedWorkoutID = workoutID
	if err := s.plannedRepo.Put(ctx, planned); err != nil {
		return nil, fmt.Errorf("failed to complete planned workout: %w", err)
	}
	log.WithFields(log.Fields{"user_id": userID, "planned_id": plannedID, "workout_id": workoutID}).Debug("planned workout completed")
	return planned, nil
}

func (s *plannedWorkoutService) checkWorkoutOwner(ctx context.Context, userID, workoutID string) error {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return fmt.Errorf("failed to get workout: %w", err)
	}
	if workout.UserID != userID {
		return ErrWorkoutNotFound
	}
	return nil
}
