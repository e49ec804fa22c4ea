package impl

import (
	"fmt"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
	"guardian/internal/util"
)

// Channel subject lines per alert type. The panic subject is deliberately the
// loudest; receiving apps often surface only the subject.
var alertSubjects = map[entity.AlertType]string{
	entity.AlertGeofenceBreach: "Geofence Breach Alert",
	entity.AlertPanicButton:    "PANIC BUTTON ACTIVATED",
	entity.AlertMLAnomaly:      "Anomalous Behavior Detected",
}

// breachMessage is the alert text recorded and dispatched when a location
// sample falls outside the active geofence.
func breachMessage(fence *entity.Geofence, distance float64) string {
	return fmt.Sprintf("User breached geofence: %s (%s from center)", fence.Name, util.FormatDistance(distance))
}

// panicMessage is the alert text for a panic button press.
func panicMessage() string {
	return "Panic button activated! User may be in danger."
}

// anomalyMessage is the alert text for an anomalous classifier verdict.
func anomalyMessage(confidence float64) string {
	return fmt.Sprintf("Anomalous behavior detected in geofence activity. Confidence: %.2f%%", confidence*100)
}

// payloadFor builds the channel-independent payload for one alert.
func payloadFor(alert *entity.Alert) service.AlertPayload {
	subject, ok := alertSubjects[alert.Type]
	if !ok {
		subject = "Security Alert"
	}

	return service.AlertPayload{
		Type:    string(alert.Type),
		Subject: subject,
		Message: alert.Message,
	}
}
