// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSampleNotFound is returned when a classifier sample is not found.
var ErrSampleNotFound = errors.New("classifier sample not found")

// SampleRepository defines the interface for classifier-sample database operations.
type SampleRepository interface {
	// Create persists a new feature sample.
	Create(ctx context.Context, sample *entity.ClassifierSample) error

	// FindByGeofence retrieves the sample captured for a specific geofence.
	FindByGeofence(ctx context.Context, userID, geofenceID uuid.UUID) (*entity.ClassifierSample, error)

	// FindByUser retrieves a user's samples, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ClassifierSample, error)

	// CountByUser returns the total number of samples for a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// SetScore writes the classifier verdict back onto a sample.
	SetScore(ctx context.Context, sampleID uuid.UUID, prediction entity.Prediction, confidence float64) error
}
