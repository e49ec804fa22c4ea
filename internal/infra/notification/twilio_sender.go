package notification

import (
	"context"
	"strings"

	"guardian/config"
	"guardian/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// twilioSender delivers alert SMS through the Twilio REST API.
type twilioSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSender is the constructor for twilioSender.
func NewTwilioSender(cfg *config.TwilioConfig) service.SMSSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &twilioSender{
		client: client,
		from:   cfg.FromNumber,
	}
}

// SendAlertSMS sends one alert SMS to the given number.
func (s *twilioSender) SendAlertSMS(ctx context.Context, to string, payload service.AlertPayload) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(cleanMobile(to))
	params.SetFrom(s.from)
	params.SetBody(payload.Subject + ": " + payload.Message)

	err := sendWithContext(ctx, func() error {
		_, err := s.client.Api.CreateMessage(params)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to send alert sms")
	}

	return nil
}

// cleanMobile strips formatting characters commonly pasted into numbers.
func cleanMobile(mobile string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

	return replacer.Replace(mobile)
}
