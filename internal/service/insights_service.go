package service

import (
	"alcyxob/fitness-tracker/internal/insights"
	"alcyxob/fitness-tracker/internal/observability"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"
)

// InsightsService computes analytics over the caller's workout history.
type InsightsService interface {
	GetInsights(ctx context.Context, userID string) (*insights.Insights, error)
	GetSummary(ctx context.Context, userID string) (*insights.Summary, error)
}

type insightsService struct {
	workoutRepo repository.WorkoutRepository
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

// NewInsightsService creates an InsightsService. A nil clock means time.Now.
func NewInsightsService(
	workoutRepo repository.WorkoutRepository,
	profileRepo repository.ProfileRepository,
	now func() time.Time,
) InsightsService {
	if now == nil {
		now = time.Now
	}
	return &insightsService{
		workoutRepo: workoutRepo,
		profileRepo: profileRepo,
		now:         now,
	}
}

func (s *insightsService) GetInsights(ctx context.Context, userID string) (*insights.Insights, error) {
	workouts, err := s.workoutRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	// Without a profile there is no goal; everything else still applies.
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		profile = nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	started := time.Now()
	result := insights.Compute(workouts, profile, s.now())
	observability.RecordInsightsComputed(len(workouts), time.Since(started))
	return &result, nil
}

func (s *insightsService) GetSummary(ctx context.Context, userID string) (*insights.Summary, error) {
	workouts, err := s.workoutRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	summary := insights.Summarize(workouts)
	return &summary, nil
}
