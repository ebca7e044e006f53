package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"
)

// ProfileService reads and replaces the caller's profile.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	// SaveProfile replaces the whole profile; there are no partial updates.
	SaveProfile(ctx context.Context, userID string, profile domain.Profile) (*domain.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo, now: time.Now}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) SaveProfile(ctx context.Context, userID string, profile domain.Profile) (*domain.Profile, error) {
	profile.UserID = userID
	profile.UpdatedAt = s.now().UTC()
	if err := s.profileRepo.Put(ctx, &profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return &profile, nil
}
