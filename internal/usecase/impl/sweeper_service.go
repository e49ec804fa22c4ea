package impl

import (
	"context"
	"log/slog"
	"time"

	"guardian/internal/domain/repository"
	"guardian/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sweeperService implements the SweeperUsecase interface. It is the sole
// owner of the expiry-driven active-to-archived transition.
type sweeperService struct {
	txManager    repository.TransactionManager
	geofenceRepo repository.GeofenceRepository
	anomaly      usecase.AnomalyUsecase
	logger       *slog.Logger
}

// SweeperServiceParams holds dependencies for SweeperService, injected by Fx.
type SweeperServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	GeofenceRepo repository.GeofenceRepository
	Anomaly      usecase.AnomalyUsecase
	Logger       *slog.Logger
}

// NewSweeperService is the constructor for sweeperService.
func NewSweeperService(params SweeperServiceParams) usecase.SweeperUsecase {
	return &sweeperService{
		txManager:    params.TxManager,
		geofenceRepo: params.GeofenceRepo,
		anomaly:      params.Anomaly,
		logger:       params.Logger,
	}
}

// SweepExpired archives every expired geofence and feeds each resulting
// sample to the anomaly scorer. One geofence failing never aborts the batch.
func (srv *sweeperService) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	fences, err := srv.geofenceRepo.FindExpired(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list expired geofences")
	}

	archived := 0
	for _, fence := range fences {
		// A fence that has not expired yet must never be archived, whatever
		// the listing returned.
		if !fence.Expired(now) {
			continue
		}

		_, sample, err := archiveGeofence(ctx, srv.txManager, fence.ID, now)
		if err != nil {
			if errors.Is(err, repository.ErrGeofenceNotActive) {
				// Another writer archived it first; nothing left to do here.
				continue
			}

			srv.logger.Error("failed to archive expired geofence",
				slog.String("geofence_id", fence.ID.String()),
				slog.String("user_id", fence.UserID.String()),
				slog.Any("error", err))

			continue
		}
		archived++

		if _, err := srv.anomaly.ScoreSample(ctx, sample); err != nil {
			srv.logger.Error("failed to score archived geofence",
				slog.String("geofence_id", fence.ID.String()),
				slog.Any("error", err))
		}
	}

	return archived, nil
}
