package usecase

import (
	"context"
	"time"
)

// SweeperUsecase defines the interface for the expiration sweep
type SweeperUsecase interface {
	// SweepExpired archives every active geofence whose expiry is at or
	// before now and feeds each resulting sample to the anomaly scorer.
	// Per-geofence failures are logged and skipped; the count of
	// successfully archived geofences is returned.
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}
