package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/observability"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const exportContentType = "application/json"

// ExportDocument is the JSON written to object storage.
type ExportDocument struct {
	UserID     string           `json:"user_id"`
	ExportedAt time.Time        `json:"exported_at"`
	Profile    *domain.Profile  `json:"profile"`
	Workouts   []domain.Workout `json:"workouts"`
}

// ExportResponse tells the client where to fetch the export.
type ExportResponse struct {
	DownloadURL string    `json:"download_url"`
	ObjectKey   string    `json:"object_key"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ExportService snapshots a user's history into object storage.
type ExportService interface {
	ExportWorkouts(ctx context.Context, userID string) (*ExportResponse, error)
}

type exportService struct {
	workoutRepo repository.WorkoutRepository
	profileRepo repository.ProfileRepository
	fileStorage storage.FileStorage
	urlExpiry   time.Duration
	now         func() time.Time
}

func NewExportService(
	workoutRepo repository.WorkoutRepository,
	profileRepo repository.ProfileRepository,
	fileStorage storage.FileStorage,
	urlExpiry time.Duration,
) ExportService {
	if urlExpiry <= 0 {
		urlExpiry = storage.DefaultPresignedURLExpiry
	}
	return &exportService{
		workoutRepo: workoutRepo,
		profileRepo: profileRepo,
		fileStorage: fileStorage,
		urlExpiry:   urlExpiry,
		now:         time.Now,
	}
}

// exportObjectKey builds exports/<user>/<uuid>.json.
func exportObjectKey(userID string) string {
	return path.Join("exports", userID, uuid.NewString()+".json")
}

func (s *exportService) ExportWorkouts(ctx context.Context, userID string) (resp *ExportResponse, err error) {
	defer func() { observability.RecordExport(err) }()

	workouts, err := s.workoutRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		profile = nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}

	now := s.now().UTC()
	body, err := json.Marshal(ExportDocument{
		UserID:     userID,
		ExportedAt: now,
		Profile:    profile,
		Workouts:   workouts,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	objectKey := exportObjectKey(userID)
	if err := s.fileStorage.PutObject(ctx, objectKey, exportContentType, body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, s.urlExpiry)
	if err != nil {
		// Nobody can reach the object without a URL, so don't leave it behind.
		if delErr := s.fileStorage.DeleteObject(ctx, objectKey); delErr != nil {
			log.Warnf("Failed to clean up export %s: %v", objectKey, delErr)
		}
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	log.WithFields(log.Fields{"user_id": userID, "object_key": objectKey, "workouts": len(workouts)}).Info("workouts exported")
	return &ExportResponse{
		DownloadURL: url,
		ObjectKey:   objectKey,
		ExpiresAt:   now.Add(s.urlExpiry),
	}, nil
}
