// Package scorer contains the client for the external anomaly classifier.
package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"guardian/config"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"

	"github.com/pkg/errors"
)

// predictRequest is the feature row posted to the classifier.
type predictRequest struct {
	CrossCount  int      `json:"cross_count"`
	Duration    int      `json:"duration"`
	Temperature *float64 `json:"temperature,omitempty"`
	Condition   string   `json:"condition,omitempty"`
	DayOfWeek   int      `json:"day_of_week"`
	TimeOfDay   string   `json:"time_of_day"`
}

// predictResponse mirrors the classifier's JSON output.
type predictResponse struct {
	Prediction string         `json:"prediction"`
	Confidence float64        `json:"confidence"`
	Details    map[string]any `json:"details,omitempty"`
}

// httpScorer implements service.AnomalyScorer against an HTTP classifier
// exposing a POST /predict endpoint.
type httpScorer struct {
	baseURL string
	client  *http.Client
}

// NewHTTPScorer is the constructor for httpScorer.
func NewHTTPScorer(cfg *config.ScorerConfig) service.AnomalyScorer {
	return &httpScorer{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Score posts the sample's features and decodes the verdict.
func (s *httpScorer) Score(ctx context.Context, sample *entity.ClassifierSample) (*service.ScoreResult, error) {
	req := predictRequest{
		CrossCount: sample.CrossCount,
		Duration:   int(sample.Duration),
		DayOfWeek:  sample.DayOfWeek,
		TimeOfDay:  string(sample.TimeOfDay),
	}
	if sample.Weather != nil {
		temperature := sample.Weather.Temperature
		req.Temperature = &temperature
		req.Condition = sample.Weather.Condition
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode predict request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build predict request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "predict request failed")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("classifier responded with status %d", resp.StatusCode)
	}

	var decoded predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "failed to decode predict response")
	}

	prediction := entity.Prediction(decoded.Prediction)
	if prediction != entity.PredictionNormal && prediction != entity.PredictionAnomalous {
		return nil, errors.Errorf("classifier returned unknown prediction %q", decoded.Prediction)
	}

	return &service.ScoreResult{
		Prediction: prediction,
		Confidence: decoded.Confidence,
		Details:    decoded.Details,
	}, nil
}
