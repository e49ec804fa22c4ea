// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for geofence persistence.
var (
	// ErrGeofenceNotFound is returned when no matching geofence exists.
	ErrGeofenceNotFound = errors.New("geofence not found")
	// ErrActiveGeofenceExists is returned when creating a geofence for a user
	// who already has an active one.
	ErrActiveGeofenceExists = errors.New("user already has an active geofence")
	// ErrGeofenceNotActive is returned when a conditioned update finds the
	// geofence already archived. Callers treat this as a benign no-op signal.
	ErrGeofenceNotActive = errors.New("geofence is no longer active")
)

// GeofenceRepository defines the interface for geofence-related database operations.
type GeofenceRepository interface {
	// CreateActive persists a new active geofence. Fails with
	// ErrActiveGeofenceExists if the user already has one.
	CreateActive(ctx context.Context, fence *entity.Geofence) error

	// FindActiveByUser retrieves the user's active geofence, or ErrGeofenceNotFound.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Geofence, error)

	// FindByID retrieves a geofence by ID regardless of owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Geofence, error)

	// FindByIDForUpdate retrieves a geofence by ID and locks the row for the
	// rest of the surrounding transaction. Archival re-reads through this so a
	// concurrent crossing either lands before the read or blocks until the
	// archive commits; the snapshot can never miss an increment the later
	// delete would observe.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Geofence, error)

	// RecordCrossing atomically increments the geofence's cross count,
	// conditioned on the geofence still being active. Returns
	// ErrGeofenceNotActive if the geofence was archived in the meantime.
	RecordCrossing(ctx context.Context, id uuid.UUID) error

	// FindExpired retrieves all active geofences whose expiry is at or before now.
	FindExpired(ctx context.Context, now time.Time) ([]*entity.Geofence, error)

	// Delete removes the live row, conditioned on the geofence still being
	// active. Returns ErrGeofenceNotActive when another writer archived it
	// first; the caller must then skip its own archival.
	Delete(ctx context.Context, id uuid.UUID) error
}
