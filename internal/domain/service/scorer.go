package service

import (
	"context"

	"guardian/internal/domain/entity"
)

// ScoreResult is the anomaly scorer's classification of one feature sample.
type ScoreResult struct {
	Prediction entity.Prediction `json:"prediction"`
	Confidence float64           `json:"confidence"` // In [0, 1].
	Details    map[string]any    `json:"details,omitempty"`
}

// AnomalyScorer judges whether a geofence's usage pattern is unusual. The
// scorer is an external collaborator; callers must tolerate it being
// unreachable and fall back to a normal classification.
type AnomalyScorer interface {
	Score(ctx context.Context, sample *entity.ClassifierSample) (*ScoreResult, error)
}
