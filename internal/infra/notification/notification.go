// Package notification provides the email and SMS transports used to reach
// trusted contacts.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"guardian/config"
	"guardian/internal/domain/service"

	"github.com/pkg/errors"
)

// Transport selector values carried in the dispatch configuration.
const (
	TransportSMTP    = "smtp"
	TransportTwilio  = "twilio"
	TransportLogging = "logging"
)

// NewEmailSender builds the email transport selected by configuration.
func NewEmailSender(cfg *config.Config, logger *slog.Logger) (service.EmailSender, error) {
	switch cfg.Dispatch.EmailTransport {
	case TransportSMTP:
		if cfg.SMTP == nil {
			return nil, errors.New("smtp email transport selected but smtp config is missing")
		}

		return NewSMTPSender(cfg.SMTP), nil
	case TransportLogging:
		return NewLoggingEmailSender(logger), nil
	default:
		return nil, errors.Errorf("unknown email transport: %s", cfg.Dispatch.EmailTransport)
	}
}

// NewSMSSender builds the SMS transport selected by configuration.
func NewSMSSender(cfg *config.Config, logger *slog.Logger) (service.SMSSender, error) {
	switch cfg.Dispatch.SMSTransport {
	case TransportTwilio:
		if cfg.Twilio == nil {
			return nil, errors.New("twilio sms transport selected but twilio config is missing")
		}

		return NewTwilioSender(cfg.Twilio), nil
	case TransportLogging:
		return NewLoggingSMSSender(logger), nil
	default:
		return nil, errors.Errorf("unknown sms transport: %s", cfg.Dispatch.SMSTransport)
	}
}

// alertBody renders the uniform plain-text body shared by both channels.
func alertBody(payload service.AlertPayload) string {
	return fmt.Sprintf(
		"Alert Type: %s\nMessage: %s\nTime: %s\n\nPlease check on the person immediately and ensure their safety.",
		strings.ToUpper(strings.ReplaceAll(payload.Type, "_", " ")),
		payload.Message,
		time.Now().Format(time.RFC1123),
	)
}

// sendWithContext runs a blocking provider call in a goroutine so the
// caller's deadline is honored even though the underlying client has no
// context support.
func sendWithContext(ctx context.Context, send func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- send()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
