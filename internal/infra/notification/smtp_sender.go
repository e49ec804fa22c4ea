package notification

import (
	"context"

	"guardian/config"
	"guardian/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// smtpSender delivers alert emails over plain SMTP.
type smtpSender struct {
	cfg *config.SMTPConfig
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(cfg *config.SMTPConfig) service.EmailSender {
	return &smtpSender{cfg: cfg}
}

// SendAlertEmail sends one alert email to the given address.
func (s *smtpSender) SendAlertEmail(ctx context.Context, to string, payload service.AlertPayload) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", payload.Subject)
	m.SetBody("text/plain", alertBody(payload))

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	err := sendWithContext(ctx, func() error {
		return dialer.DialAndSend(m)
	})
	if err != nil {
		return errors.Wrap(err, "failed to send alert email")
	}

	return nil
}
