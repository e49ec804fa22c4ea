// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHistoryNotFound is returned when a history record is not found.
var ErrHistoryNotFound = errors.New("geofence history not found")

// HistoryRepository defines the interface for archived-geofence database operations.
type HistoryRepository interface {
	// Create persists a new history record. History rows are written once and
	// never rewritten, except for the classifier result.
	Create(ctx context.Context, history *entity.GeofenceHistory) error

	// FindByUser retrieves a user's history records, newest archival first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.GeofenceHistory, error)

	// FindByGeofence retrieves the history record for a specific live-geofence ID.
	FindByGeofence(ctx context.Context, userID, geofenceID uuid.UUID) (*entity.GeofenceHistory, error)

	// SetAnalysis records the classifier result on an archived geofence.
	SetAnalysis(ctx context.Context, geofenceID uuid.UUID, result *entity.ClassifierResult) error

	// CountByUser returns the total number of history records for a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
