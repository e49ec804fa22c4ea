package scorer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scorerSample() *entity.ClassifierSample {
	return &entity.ClassifierSample{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		GeofenceID: uuid.New(),
		CrossCount: 4,
		Duration:   entity.Duration12h,
		Weather:    &entity.WeatherSnapshot{Temperature: 27.5, Condition: "rain"},
		DayOfWeek:  3,
		TimeOfDay:  entity.TimeEvening,
	}
}

func TestHTTPScorer_Score(t *testing.T) {
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prediction":"anomalous","confidence":0.91,"details":{"pattern":"unusual_hours"}}`))
	}))
	defer server.Close()

	client := NewHTTPScorer(&config.ScorerConfig{BaseURL: server.URL, Timeout: 5 * time.Second})

	result, err := client.Score(context.Background(), scorerSample())
	require.NoError(t, err)
	assert.Equal(t, entity.PredictionAnomalous, result.Prediction)
	assert.Equal(t, 0.91, result.Confidence)
	assert.Equal(t, "unusual_hours", result.Details["pattern"])

	assert.Equal(t, float64(4), gotBody["cross_count"])
	assert.Equal(t, float64(12), gotBody["duration"])
	assert.Equal(t, 27.5, gotBody["temperature"])
	assert.Equal(t, "rain", gotBody["condition"])
	assert.Equal(t, float64(3), gotBody["day_of_week"])
	assert.Equal(t, "evening", gotBody["time_of_day"])
}

func TestHTTPScorer_Score_NoWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "temperature")
		assert.NotContains(t, body, "condition")

		_, _ = w.Write([]byte(`{"prediction":"normal","confidence":0.99}`))
	}))
	defer server.Close()

	client := NewHTTPScorer(&config.ScorerConfig{BaseURL: server.URL, Timeout: 5 * time.Second})

	sample := scorerSample()
	sample.Weather = nil

	result, err := client.Score(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, entity.PredictionNormal, result.Prediction)
}

func TestHTTPScorer_Score_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPScorer(&config.ScorerConfig{BaseURL: server.URL, Timeout: 5 * time.Second})

	_, err := client.Score(context.Background(), scorerSample())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestHTTPScorer_Score_UnknownPrediction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"prediction":"sideways","confidence":0.5}`))
	}))
	defer server.Close()

	client := NewHTTPScorer(&config.ScorerConfig{BaseURL: server.URL, Timeout: 5 * time.Second})

	_, err := client.Score(context.Background(), scorerSample())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown prediction")
}

func TestHTTPScorer_Score_Unreachable(t *testing.T) {
	client := NewHTTPScorer(&config.ScorerConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})

	_, err := client.Score(context.Background(), scorerSample())
	require.Error(t, err)
}

func TestUnavailableScorer_Score(t *testing.T) {
	client := NewUnavailableScorer()

	_, err := client.Score(context.Background(), scorerSample())
	require.Error(t, err)
}
