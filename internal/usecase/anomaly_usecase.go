package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// AnomalyUsecase defines the interface for anomaly scoring use cases
type AnomalyUsecase interface {
	// ScoreSample runs the anomaly scorer over a feature sample, writes the
	// verdict back onto the sample and its history record, and raises an
	// ml_anomaly alert when the pattern is judged anomalous. A scorer that is
	// unreachable yields the fallback verdict instead of an error.
	ScoreSample(ctx context.Context, sample *entity.ClassifierSample) (*entity.ClassifierResult, error)

	// AnalyzeGeofence re-scores the sample captured for an archived geofence
	// the user owns.
	AnalyzeGeofence(ctx context.Context, userID, geofenceID uuid.UUID) (*entity.ClassifierResult, error)

	// ListSamples retrieves the user's feature samples with pagination,
	// newest first, together with the total count.
	ListSamples(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ClassifierSample, int64, error)
}
