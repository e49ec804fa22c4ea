// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// archiveGeofence performs the single active-to-archived transition for a
// geofence: the live row is deleted, a history record is written and a
// classifier feature sample is captured, all within one transaction.
//
// The conditioned delete acts as the compare-and-swap: when another writer
// (user deletion racing the sweeper, or vice versa) archived the geofence
// first, repository.ErrGeofenceNotActive is returned and nothing is written.
func archiveGeofence(
	ctx context.Context,
	txManager repository.TransactionManager,
	geofenceID uuid.UUID,
	now time.Time,
) (*entity.GeofenceHistory, *entity.ClassifierSample, error) {
	var (
		history *entity.GeofenceHistory
		sample  *entity.ClassifierSample
	)

	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		geofenceRepo := repoFactory.NewGeofenceRepository()

		// Re-read inside the transaction with a row lock so the archived copy
		// carries the final cross count. A crossing racing this transaction
		// either commits before the lock is taken or blocks and then no-ops
		// against the deleted row.
		fence, err := geofenceRepo.FindByIDForUpdate(ctx, geofenceID)
		if err != nil {
			if errors.Is(err, repository.ErrGeofenceNotFound) {
				return repository.ErrGeofenceNotActive
			}

			return err
		}

		if err := geofenceRepo.Delete(ctx, fence.ID); err != nil {
			return err
		}

		history = &entity.GeofenceHistory{
			ID:         uuid.New(),
			UserID:     fence.UserID,
			GeofenceID: fence.ID,
			Name:       fence.Name,
			Latitude:   fence.Latitude,
			Longitude:  fence.Longitude,
			Radius:     fence.Radius,
			Duration:   fence.Duration,
			CrossCount: fence.CrossCount,
			Weather:    fence.Weather,
			CreatedAt:  fence.CreatedAt,
			ExpiresAt:  fence.ExpiresAt,
			ArchivedAt: now,
		}

		if err := repoFactory.NewHistoryRepository().Create(ctx, history); err != nil {
			return err
		}

		sample = &entity.ClassifierSample{
			ID:                uuid.New(),
			UserID:            fence.UserID,
			GeofenceID:        fence.ID,
			GeofenceCreatedAt: fence.CreatedAt,
			CapturedAt:        now,
			CrossCount:        fence.CrossCount,
			Duration:          fence.Duration,
			Weather:           fence.Weather,
			DayOfWeek:         int(fence.CreatedAt.Weekday()),
			TimeOfDay:         entity.TimeOfDayBucket(fence.CreatedAt),
			Prediction:        entity.PredictionNormal,
			Confidence:        0,
		}

		return repoFactory.NewSampleRepository().Create(ctx, sample)
	})
	if err != nil {
		return nil, nil, err
	}

	return history, sample, nil
}
