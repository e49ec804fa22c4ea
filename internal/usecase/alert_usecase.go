package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertUsecase defines the interface for querying recorded alerts
type AlertUsecase interface {
	// ListAlerts retrieves a user's alerts with pagination, newest first,
	// optionally filtered by type, together with the total count.
	ListAlerts(ctx context.Context, userID uuid.UUID, alertType *entity.AlertType, limit, offset int) ([]*entity.Alert, int64, error)
}

// AlertDispatcher fans one alert out to the given contacts and reports the
// per-contact outcomes. Implementations must isolate channel failures: a
// failed or slow provider affects only that contact's attempt.
type AlertDispatcher interface {
	Dispatch(ctx context.Context, alert *entity.Alert, contacts []*entity.Contact) []entity.DeliveryAttempt
}
