package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// fallbackConfidence is recorded when the scorer is unreachable and the
// sample defaults to a normal classification.
const fallbackConfidence = 0.5

// anomalyService implements the AnomalyUsecase interface.
type anomalyService struct {
	sampleRepo  repository.SampleRepository
	historyRepo repository.HistoryRepository
	contactRepo repository.ContactRepository
	alertRepo   repository.AlertRepository
	scorer      service.AnomalyScorer
	dispatcher  usecase.AlertDispatcher
	logger      *slog.Logger
}

// AnomalyServiceParams holds dependencies for AnomalyService, injected by Fx.
type AnomalyServiceParams struct {
	fx.In

	SampleRepo  repository.SampleRepository
	HistoryRepo repository.HistoryRepository
	ContactRepo repository.ContactRepository
	AlertRepo   repository.AlertRepository
	Scorer      service.AnomalyScorer
	Dispatcher  usecase.AlertDispatcher
	Logger      *slog.Logger
}

// NewAnomalyService is the constructor for anomalyService.
func NewAnomalyService(params AnomalyServiceParams) usecase.AnomalyUsecase {
	return &anomalyService{
		sampleRepo:  params.SampleRepo,
		historyRepo: params.HistoryRepo,
		contactRepo: params.ContactRepo,
		alertRepo:   params.AlertRepo,
		scorer:      params.Scorer,
		dispatcher:  params.Dispatcher,
		logger:      params.Logger,
	}
}

func (srv *anomalyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ScoreSample runs the anomaly scorer over a feature sample and writes the
// verdict back. A scorer failure degrades to the fallback verdict rather
// than blocking the caller.
func (srv *anomalyService) ScoreSample(ctx context.Context, sample *entity.ClassifierSample) (*entity.ClassifierResult, error) {
	score, err := srv.scorer.Score(ctx, sample)
	if err != nil {
		srv.log(ctx).Warn("anomaly scorer unavailable, using fallback verdict",
			slog.String("sample_id", sample.ID.String()),
			slog.Any("error", err))

		score = &service.ScoreResult{
			Prediction: entity.PredictionNormal,
			Confidence: fallbackConfidence,
		}
	}

	result := &entity.ClassifierResult{
		Prediction: score.Prediction,
		Confidence: score.Confidence,
		AnalyzedAt: time.Now(),
	}

	if err := srv.sampleRepo.SetScore(ctx, sample.ID, result.Prediction, result.Confidence); err != nil {
		return nil, err
	}

	if err := srv.historyRepo.SetAnalysis(ctx, sample.GeofenceID, result); err != nil {
		// The sample verdict is already durable; a missing history row is
		// logged rather than failing the scoring.
		srv.log(ctx).Error("failed to record analysis on history",
			slog.String("geofence_id", sample.GeofenceID.String()),
			slog.Any("error", err))
	}

	sample.Prediction = result.Prediction
	sample.Confidence = result.Confidence

	if result.Prediction == entity.PredictionAnomalous {
		srv.raiseAnomalyAlert(ctx, sample, result)
	}

	return result, nil
}

// AnalyzeGeofence re-scores the sample captured for an archived geofence.
func (srv *anomalyService) AnalyzeGeofence(ctx context.Context, userID, geofenceID uuid.UUID) (*entity.ClassifierResult, error) {
	sample, err := srv.sampleRepo.FindByGeofence(ctx, userID, geofenceID)
	if err != nil {
		if errors.Is(err, repository.ErrSampleNotFound) {
			return nil, domainerrors.ErrSampleNotFound
		}

		return nil, err
	}

	return srv.ScoreSample(ctx, sample)
}

// ListSamples retrieves the user's feature samples with pagination.
func (srv *anomalyService) ListSamples(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ClassifierSample, int64, error) {
	samples, err := srv.sampleRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := srv.sampleRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return samples, total, nil
}

// raiseAnomalyAlert dispatches and records an ml_anomaly alert. Failures are
// logged; an undeliverable alert must not fail the scoring pipeline.
func (srv *anomalyService) raiseAnomalyAlert(ctx context.Context, sample *entity.ClassifierSample, result *entity.ClassifierResult) {
	alert := &entity.Alert{
		ID:         uuid.New(),
		UserID:     sample.UserID,
		Type:       entity.AlertMLAnomaly,
		Message:    anomalyMessage(result.Confidence),
		GeofenceID: &sample.GeofenceID,
		CreatedAt:  time.Now(),
	}

	contacts, err := srv.contactRepo.FindActiveByUser(ctx, sample.UserID)
	if err != nil {
		srv.log(ctx).Error("failed to load contacts for anomaly dispatch",
			slog.String("user_id", sample.UserID.String()),
			slog.Any("error", err))
		contacts = nil
	}

	alert.SentTo = srv.dispatcher.Dispatch(ctx, alert, contacts)

	if err := srv.alertRepo.Create(ctx, alert); err != nil {
		srv.log(ctx).Error("failed to record anomaly alert",
			slog.String("user_id", sample.UserID.String()),
			slog.String("geofence_id", sample.GeofenceID.String()),
			slog.Any("error", err))

		return
	}

	srv.log(ctx).Info("anomaly alert raised",
		slog.String("user_id", sample.UserID.String()),
		slog.String("geofence_id", sample.GeofenceID.String()),
		slog.Float64("confidence", result.Confidence))
}
