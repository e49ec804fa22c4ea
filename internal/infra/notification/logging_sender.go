package notification

import (
	"context"
	"log/slog"

	"guardian/internal/domain/service"
)

// loggingEmailSender logs alert emails instead of delivering them. Selected
// explicitly by configuration, typically in development.
type loggingEmailSender struct {
	logger *slog.Logger
}

// NewLoggingEmailSender is the constructor for loggingEmailSender.
func NewLoggingEmailSender(logger *slog.Logger) service.EmailSender {
	return &loggingEmailSender{logger: logger}
}

// SendAlertEmail logs the alert and reports success.
func (s *loggingEmailSender) SendAlertEmail(_ context.Context, to string, payload service.AlertPayload) error {
	s.logger.Info("alert email (logging transport)",
		slog.String("to", to),
		slog.String("type", payload.Type),
		slog.String("subject", payload.Subject),
		slog.String("message", payload.Message))

	return nil
}

// loggingSMSSender logs alert SMS instead of delivering them.
type loggingSMSSender struct {
	logger *slog.Logger
}

// NewLoggingSMSSender is the constructor for loggingSMSSender.
func NewLoggingSMSSender(logger *slog.Logger) service.SMSSender {
	return &loggingSMSSender{logger: logger}
}

// SendAlertSMS logs the alert and reports success.
func (s *loggingSMSSender) SendAlertSMS(_ context.Context, to string, payload service.AlertPayload) error {
	s.logger.Info("alert sms (logging transport)",
		slog.String("to", to),
		slog.String("type", payload.Type),
		slog.String("message", payload.Message))

	return nil
}
