// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAlertNotFound is returned when an alert is not found.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository defines the interface for alert database operations.
type AlertRepository interface {
	// Create persists a new alert together with its per-contact delivery
	// attempts. Exactly one alert row exists per triggering event.
	Create(ctx context.Context, alert *entity.Alert) error

	// FindByUser retrieves a user's alerts newest-first, optionally filtered
	// by type (nil means all types).
	FindByUser(ctx context.Context, userID uuid.UUID, alertType *entity.AlertType, limit, offset int) ([]*entity.Alert, error)

	// CountByUser returns the number of alerts matching the same filter.
	CountByUser(ctx context.Context, userID uuid.UUID, alertType *entity.AlertType) (int64, error)
}
