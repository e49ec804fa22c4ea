package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/geo"
	"guardian/internal/domain/repository"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// safetyService implements the SafetyUsecase interface.
type safetyService struct {
	geofenceRepo repository.GeofenceRepository
	contactRepo  repository.ContactRepository
	alertRepo    repository.AlertRepository
	dispatcher   usecase.AlertDispatcher
	logger       *slog.Logger
}

// SafetyServiceParams holds dependencies for SafetyService, injected by Fx.
type SafetyServiceParams struct {
	fx.In

	GeofenceRepo repository.GeofenceRepository
	ContactRepo  repository.ContactRepository
	AlertRepo    repository.AlertRepository
	Dispatcher   usecase.AlertDispatcher
	Logger       *slog.Logger
}

// NewSafetyService is the constructor for safetyService.
func NewSafetyService(params SafetyServiceParams) usecase.SafetyUsecase {
	return &safetyService{
		geofenceRepo: params.GeofenceRepo,
		contactRepo:  params.ContactRepo,
		alertRepo:    params.AlertRepo,
		dispatcher:   params.Dispatcher,
		logger:       params.Logger,
	}
}

func (srv *safetyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckLocation evaluates one location sample against the user's active geofence.
func (srv *safetyService) CheckLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64) (*usecase.CheckResult, error) {
	fence, err := srv.geofenceRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrGeofenceNotFound) {
			return &usecase.CheckResult{Outcome: usecase.OutcomeNoActiveFence}, nil
		}

		return nil, err
	}

	sample := orb.Point{longitude, latitude}
	center := orb.Point{fence.Longitude, fence.Latitude}
	distance := geo.Distance(sample, center)

	if distance <= fence.Radius {
		return &usecase.CheckResult{
			Outcome:  usecase.OutcomeInside,
			Fence:    fence,
			Distance: distance,
		}, nil
	}

	if err := srv.geofenceRepo.RecordCrossing(ctx, fence.ID); err != nil {
		if errors.Is(err, repository.ErrGeofenceNotActive) {
			// The sweeper archived the geofence between the lookup and the
			// crossing. The loser of that race raises no alert.
			return &usecase.CheckResult{Outcome: usecase.OutcomeNoActiveFence}, nil
		}

		return nil, err
	}
	fence.CrossCount++

	alert := &entity.Alert{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    entity.AlertGeofenceBreach,
		Message: breachMessage(fence, distance),
		Location: &entity.Location{
			Latitude:  latitude,
			Longitude: longitude,
		},
		GeofenceID: &fence.ID,
		CreatedAt:  time.Now(),
	}

	if err := srv.raiseAlert(ctx, alert); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("geofence breach recorded",
		slog.String("geofence_id", fence.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Float64("distance_m", distance),
		slog.Int("cross_count", fence.CrossCount))

	return &usecase.CheckResult{
		Outcome:  usecase.OutcomeOutside,
		Fence:    fence,
		Distance: distance,
		Alert:    alert,
	}, nil
}

// TriggerPanic raises a panic alert unconditionally.
func (srv *safetyService) TriggerPanic(ctx context.Context, userID uuid.UUID, latitude, longitude float64) (*entity.Alert, error) {
	alert := &entity.Alert{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    entity.AlertPanicButton,
		Message: panicMessage(),
		Location: &entity.Location{
			Latitude:  latitude,
			Longitude: longitude,
		},
		CreatedAt: time.Now(),
	}

	if err := srv.raiseAlert(ctx, alert); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("panic alert raised",
		slog.String("user_id", userID.String()),
		slog.Int("contacts_notified", len(alert.SentTo)))

	return alert, nil
}

// raiseAlert dispatches the alert to the user's active contacts and persists
// it with the per-contact outcomes. Delivery failures never fail the
// operation; the operation succeeds once the alert row is durable.
func (srv *safetyService) raiseAlert(ctx context.Context, alert *entity.Alert) error {
	contacts, err := srv.contactRepo.FindActiveByUser(ctx, alert.UserID)
	if err != nil {
		srv.log(ctx).Error("failed to load contacts for dispatch",
			slog.String("user_id", alert.UserID.String()),
			slog.Any("error", err))
		contacts = nil
	}

	alert.SentTo = srv.dispatcher.Dispatch(ctx, alert, contacts)

	return srv.alertRepo.Create(ctx, alert)
}
