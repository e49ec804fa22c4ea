package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckOutcome classifies a location sample relative to the user's geofence.
type CheckOutcome string

// Possible outcomes of a location check.
const (
	// OutcomeNoActiveFence means the user has no geofence to check against.
	OutcomeNoActiveFence CheckOutcome = "no_active_fence"
	// OutcomeInside means the sample is within the boundary (inclusive).
	OutcomeInside CheckOutcome = "inside"
	// OutcomeOutside means the sample breached the boundary and an alert was raised.
	OutcomeOutside CheckOutcome = "outside"
)

// CheckResult is the outcome of evaluating one location sample.
type CheckResult struct {
	Outcome  CheckOutcome     `json:"outcome"`
	Fence    *entity.Geofence `json:"fence,omitempty"`    // Present unless Outcome is no_active_fence.
	Distance float64          `json:"distance,omitempty"` // Meters from the fence center.
	Alert    *entity.Alert    `json:"alert,omitempty"`    // Present when a breach alert was recorded.
}

// SafetyUsecase defines the interface for the breach and panic alert pipelines
type SafetyUsecase interface {
	// CheckLocation evaluates one location sample against the user's active
	// geofence. An outside sample records a crossing, dispatches a breach
	// alert to the user's active contacts and persists the alert. Having no
	// active geofence is a normal outcome, not an error.
	CheckLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64) (*CheckResult, error)

	// TriggerPanic raises a panic alert unconditionally. The alert record is
	// created even when the user has no reachable contacts.
	TriggerPanic(ctx context.Context, userID uuid.UUID, latitude, longitude float64) (*entity.Alert, error)
}
