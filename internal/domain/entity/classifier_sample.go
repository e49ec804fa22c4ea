// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeOfDay is the coarse time bucket a geofence ended its life in.
type TimeOfDay string

// Possible time-of-day buckets.
const (
	TimeMorning   TimeOfDay = "morning"   // 05:00-11:59
	TimeAfternoon TimeOfDay = "afternoon" // 12:00-16:59
	TimeEvening   TimeOfDay = "evening"   // 17:00-20:59
	TimeNight     TimeOfDay = "night"     // 21:00-04:59
)

// TimeOfDayBucket maps an instant to its bucket.
func TimeOfDayBucket(t time.Time) TimeOfDay {
	switch hour := t.Hour(); {
	case hour >= 5 && hour < 12:
		return TimeMorning
	case hour >= 12 && hour < 17:
		return TimeAfternoon
	case hour >= 17 && hour < 21:
		return TimeEvening
	default:
		return TimeNight
	}
}

// ClassifierSample is the feature row captured when a geofence is archived,
// consumed by the anomaly scorer. Prediction and Confidence are written back
// once the sample has been scored.
type ClassifierSample struct {
	ID                uuid.UUID        `json:"id"`          // The Global Unique Identifier (GUID) for the sample.
	UserID            uuid.UUID        `json:"user_id"`     // The ID of the user the sample belongs to.
	GeofenceID        uuid.UUID        `json:"geofence_id"` // The geofence the features were measured on.
	GeofenceCreatedAt time.Time        `json:"geofence_created_at"`
	CapturedAt        time.Time        `json:"captured_at"` // When the sample was taken (at expiry or deletion).
	CrossCount        int              `json:"cross_count"`
	Duration          DurationCategory `json:"duration"`
	Weather           *WeatherSnapshot `json:"weather,omitempty"`
	DayOfWeek         int              `json:"day_of_week"` // 0-6, Sunday-Saturday.
	TimeOfDay         TimeOfDay        `json:"time_of_day"`
	Prediction        Prediction       `json:"prediction"` // Defaults to normal until scored.
	Confidence        float64          `json:"confidence"`
	CreatedAt         time.Time        `json:"created_at"`
}
