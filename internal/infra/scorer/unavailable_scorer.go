package scorer

import (
	"context"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"

	"github.com/pkg/errors"
)

// unavailableScorer is used when no classifier endpoint is configured. Every
// call fails, which the anomaly service turns into its fallback verdict.
type unavailableScorer struct{}

// NewUnavailableScorer is the constructor for unavailableScorer.
func NewUnavailableScorer() service.AnomalyScorer {
	return unavailableScorer{}
}

// Score always reports the scorer as unavailable.
func (unavailableScorer) Score(_ context.Context, _ *entity.ClassifierSample) (*service.ScoreResult, error) {
	return nil, errors.New("anomaly scorer is not configured")
}
