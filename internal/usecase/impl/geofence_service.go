package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// geofenceService implements the GeofenceUsecase interface.
type geofenceService struct {
	txManager    repository.TransactionManager
	geofenceRepo repository.GeofenceRepository
	historyRepo  repository.HistoryRepository
	logger       *slog.Logger
}

// GeofenceServiceParams holds dependencies for GeofenceService, injected by Fx.
type GeofenceServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	GeofenceRepo repository.GeofenceRepository
	HistoryRepo  repository.HistoryRepository
	Logger       *slog.Logger
}

// NewGeofenceService is the constructor for geofenceService.
func NewGeofenceService(params GeofenceServiceParams) usecase.GeofenceUsecase {
	return &geofenceService{
		txManager:    params.TxManager,
		geofenceRepo: params.GeofenceRepo,
		historyRepo:  params.HistoryRepo,
		logger:       params.Logger,
	}
}

func (srv *geofenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateGeofence validates the input and activates a new geofence for the user.
func (srv *geofenceService) CreateGeofence(ctx context.Context, userID uuid.UUID, input usecase.CreateGeofenceInput) (*entity.Geofence, error) {
	if input.Radius < entity.MinRadiusMeters || input.Radius > entity.MaxRadiusMeters {
		return nil, domainerrors.ErrInvalidRadius
	}

	duration := entity.DurationCategory(input.Duration)
	if !duration.Valid() {
		return nil, domainerrors.ErrInvalidDuration
	}

	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude or longitude out of range")
	}

	now := time.Now()
	fence := &entity.Geofence{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      input.Name,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Radius:    input.Radius,
		Duration:  duration,
		IsActive:  true,
		Weather:   input.Weather,
		CreatedAt: now,
		ExpiresAt: now.Add(duration.Hours()),
	}

	if err := srv.geofenceRepo.CreateActive(ctx, fence); err != nil {
		if errors.Is(err, repository.ErrActiveGeofenceExists) {
			return nil, domainerrors.ErrActiveGeofenceExists
		}

		return nil, err
	}

	srv.log(ctx).Info("geofence activated",
		slog.String("geofence_id", fence.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("duration_hours", input.Duration),
		slog.Float64("radius_m", input.Radius))

	return fence, nil
}

// GetActiveGeofence retrieves the user's currently active geofence.
func (srv *geofenceService) GetActiveGeofence(ctx context.Context, userID uuid.UUID) (*entity.Geofence, error) {
	fence, err := srv.geofenceRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrGeofenceNotFound) {
			return nil, domainerrors.ErrGeofenceNotFound
		}

		return nil, err
	}

	return fence, nil
}

// DeleteGeofence archives the user's geofence immediately. When the sweeper
// archived the geofence first, the existing history record is returned so the
// operation stays idempotent from the caller's point of view.
func (srv *geofenceService) DeleteGeofence(ctx context.Context, userID, geofenceID uuid.UUID) (*entity.GeofenceHistory, error) {
	fence, err := srv.geofenceRepo.FindByID(ctx, geofenceID)
	if err != nil {
		if errors.Is(err, repository.ErrGeofenceNotFound) {
			return srv.findArchived(ctx, userID, geofenceID)
		}

		return nil, err
	}

	if fence.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	history, _, err := archiveGeofence(ctx, srv.txManager, geofenceID, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrGeofenceNotActive) {
			return srv.findArchived(ctx, userID, geofenceID)
		}

		return nil, err
	}

	srv.log(ctx).Info("geofence archived by user",
		slog.String("geofence_id", geofenceID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("cross_count", history.CrossCount))

	return history, nil
}

// findArchived resolves a delete against a geofence that is no longer live.
func (srv *geofenceService) findArchived(ctx context.Context, userID, geofenceID uuid.UUID) (*entity.GeofenceHistory, error) {
	history, err := srv.historyRepo.FindByGeofence(ctx, userID, geofenceID)
	if err != nil {
		if errors.Is(err, repository.ErrHistoryNotFound) {
			return nil, domainerrors.ErrGeofenceNotFound
		}

		return nil, err
	}

	return history, nil
}

// ListHistory retrieves the user's archived geofences with pagination.
func (srv *geofenceService) ListHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.GeofenceHistory, int64, error) {
	histories, err := srv.historyRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := srv.historyRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return histories, total, nil
}
