// Package service defines interfaces for external collaborators consumed by
// the use case layer.
package service

import "context"

// AlertPayload is the channel-independent content of one outbound alert.
type AlertPayload struct {
	Type    string // Alert type, e.g. "geofence_breach".
	Subject string // Channel subject line (email) / priority framing.
	Message string // Human-readable alert text.
}

// EmailSender delivers an alert over email. Implementations are fire-and-forget
// with a boolean/error outcome; no delivery receipts are modeled.
type EmailSender interface {
	SendAlertEmail(ctx context.Context, to string, payload AlertPayload) error
}

// SMSSender delivers an alert over SMS.
type SMSSender interface {
	SendAlertSMS(ctx context.Context, to string, payload AlertPayload) error
}
