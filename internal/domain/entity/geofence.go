// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Radius bounds for a geofence, in meters.
const (
	MinRadiusMeters = 50
	MaxRadiusMeters = 5000
)

// DurationCategory is the fixed set of lifetimes a geofence can be created with.
type DurationCategory int

// Allowed duration categories, in hours.
const (
	Duration6h  DurationCategory = 6
	Duration12h DurationCategory = 12
	Duration24h DurationCategory = 24
)

// Valid reports whether the category is one of the allowed values.
func (d DurationCategory) Valid() bool {
	switch d {
	case Duration6h, Duration12h, Duration24h:
		return true
	}

	return false
}

// Hours returns the category as a time.Duration.
func (d DurationCategory) Hours() time.Duration {
	return time.Duration(d) * time.Hour
}

// WeatherSnapshot is an optional weather observation captured when a geofence is created.
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"` // Degrees Celsius.
	Condition   string  `json:"condition"`   // Free-form condition label, e.g. "clear", "rain".
}

// Geofence represents a user's circular safety boundary with a fixed active lifetime.
// A user may have at most one active geofence at any time.
type Geofence struct {
	ID         uuid.UUID        `json:"id"`          // The Global Unique Identifier (GUID) for the geofence.
	UserID     uuid.UUID        `json:"user_id"`     // The ID of the user who owns this geofence.
	Name       string           `json:"name"`        // Human-readable label for the geofence.
	Latitude   float64          `json:"latitude"`    // The geographic latitude of the center.
	Longitude  float64          `json:"longitude"`   // The geographic longitude of the center.
	Radius     float64          `json:"radius"`      // Radius in meters, bounded [50, 5000].
	Duration   DurationCategory `json:"duration"`    // Active lifetime category (6h/12h/24h).
	IsActive   bool             `json:"is_active"`   // True until the geofence expires or is deleted; never flips back.
	CrossCount int              `json:"cross_count"` // Number of recorded breaches; mutated only by the breach evaluator.
	Weather    *WeatherSnapshot `json:"weather,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	ExpiresAt  time.Time        `json:"expires_at"` // Always CreatedAt + Duration.
}

// Expired reports whether the geofence is past its expiry at the given instant.
func (g *Geofence) Expired(now time.Time) bool {
	return !g.ExpiresAt.After(now)
}
