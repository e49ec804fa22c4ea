// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prediction is the classifier's verdict over an archived geofence's usage pattern.
type Prediction string

// Possible classifier predictions.
const (
	PredictionNormal    Prediction = "normal"
	PredictionAnomalous Prediction = "anomalous"
)

// ClassifierResult carries the anomaly scorer's output once an archived geofence
// has been analyzed.
type ClassifierResult struct {
	Prediction Prediction `json:"prediction"`
	Confidence float64    `json:"confidence"` // In [0, 1].
	AnalyzedAt time.Time  `json:"analyzed_at"`
}

// GeofenceHistory is a point-in-time copy of a geofence's terminal state, written
// exactly once when the geofence expires or is deleted. Immutable except for the
// classifier result, which is filled in after scoring.
type GeofenceHistory struct {
	ID         uuid.UUID         `json:"id"`          // The Global Unique Identifier (GUID) for the history record.
	UserID     uuid.UUID         `json:"user_id"`     // The ID of the user who owned the geofence.
	GeofenceID uuid.UUID         `json:"geofence_id"` // The ID the geofence had while live.
	Name       string            `json:"name"`
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
	Radius     float64           `json:"radius"`
	Duration   DurationCategory  `json:"duration"`
	CrossCount int               `json:"cross_count"`
	Weather    *WeatherSnapshot  `json:"weather,omitempty"`
	Analysis   *ClassifierResult `json:"analysis,omitempty"` // Set once the anomaly scorer has run.
	CreatedAt  time.Time         `json:"created_at"`         // When the geofence was originally created.
	ExpiresAt  time.Time         `json:"expires_at"`         // The geofence's scheduled expiry.
	ArchivedAt time.Time         `json:"archived_at"`        // When the archival actually happened.
}
