// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGeofenceInput carries everything needed to start a new safety zone.
type CreateGeofenceInput struct {
	Name      string                  `json:"name"`
	Latitude  float64                 `json:"latitude"`
	Longitude float64                 `json:"longitude"`
	Radius    float64                 `json:"radius"`   // Meters, bounded [50, 5000].
	Duration  int                     `json:"duration"` // Hours; one of 6, 12, 24.
	Weather   *entity.WeatherSnapshot `json:"weather,omitempty"`
}

// GeofenceUsecase defines the interface for geofence lifecycle management use cases
type GeofenceUsecase interface {
	// CreateGeofence validates the input and activates a new geofence for the
	// user. Fails if the user already has an active one.
	CreateGeofence(ctx context.Context, userID uuid.UUID, input CreateGeofenceInput) (*entity.Geofence, error)

	// GetActiveGeofence retrieves the user's currently active geofence.
	GetActiveGeofence(ctx context.Context, userID uuid.UUID) (*entity.Geofence, error)

	// DeleteGeofence archives the user's geofence immediately: the live row is
	// removed and a history record plus a feature sample are written in one
	// transaction. Returns the resulting history record.
	DeleteGeofence(ctx context.Context, userID, geofenceID uuid.UUID) (*entity.GeofenceHistory, error)

	// ListHistory retrieves the user's archived geofences with pagination,
	// newest first, together with the total count.
	ListHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.GeofenceHistory, int64, error)
}
