// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertType identifies what triggered an alert.
type AlertType string

// Possible alert types.
const (
	AlertGeofenceBreach AlertType = "geofence_breach"
	AlertPanicButton    AlertType = "panic_button"
	AlertMLAnomaly      AlertType = "ml_anomaly"
)

// Valid reports whether the type is one of the known values.
func (t AlertType) Valid() bool {
	switch t {
	case AlertGeofenceBreach, AlertPanicButton, AlertMLAnomaly:
		return true
	}

	return false
}

// DeliveryMethod records which channel(s) reached a contact.
type DeliveryMethod string

// Possible delivery methods. MethodBoth is used only when more than one
// channel succeeded for the same contact.
const (
	MethodEmail DeliveryMethod = "email"
	MethodSMS   DeliveryMethod = "sms"
	MethodBoth  DeliveryMethod = "both"
)

// DeliveryStatus is the per-contact outcome of a dispatch.
type DeliveryStatus string

// Possible delivery statuses.
const (
	DeliverySent   DeliveryStatus = "sent"
	DeliveryFailed DeliveryStatus = "failed"
)

// DeliveryAttempt records the outcome of dispatching one alert to one contact.
type DeliveryAttempt struct {
	ContactID uuid.UUID      `json:"contact_id"`
	Method    DeliveryMethod `json:"method"`
	Status    DeliveryStatus `json:"status"`
}

// Location is a latitude/longitude pair attached to an alert.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Alert is an immutable record of one triggering event (breach, panic press or
// anomaly detection) together with the delivery outcome per contact.
type Alert struct {
	ID         uuid.UUID         `json:"id"`      // The Global Unique Identifier (GUID) for the alert.
	UserID     uuid.UUID         `json:"user_id"` // The ID of the user the alert concerns.
	Type       AlertType         `json:"type"`
	Message    string            `json:"message"`
	Location   *Location         `json:"location,omitempty"`    // The sample location, when the trigger had one.
	GeofenceID *uuid.UUID        `json:"geofence_id,omitempty"` // The geofence involved, when any.
	SentTo     []DeliveryAttempt `json:"sent_to"`
	CreatedAt  time.Time         `json:"created_at"`
}
