package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"guardian/config"
	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"

	"go.uber.org/fx"
)

// alertDispatcher fans alerts out to contacts over the configured channels.
type alertDispatcher struct {
	email          service.EmailSender
	sms            service.SMSSender
	channelTimeout time.Duration
	logger         *slog.Logger
}

// AlertDispatcherParams holds dependencies for the dispatcher, injected by Fx.
type AlertDispatcherParams struct {
	fx.In

	Email  service.EmailSender
	SMS    service.SMSSender
	Config *config.Config
	Logger *slog.Logger
}

// NewAlertDispatcher is the constructor for alertDispatcher.
func NewAlertDispatcher(params AlertDispatcherParams) usecase.AlertDispatcher {
	return &alertDispatcher{
		email:          params.Email,
		sms:            params.SMS,
		channelTimeout: params.Config.Dispatch.ChannelTimeout,
		logger:         params.Logger,
	}
}

func (d *alertDispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// Dispatch attempts delivery to every contact concurrently. Each contact's
// channels are tried independently; a failing or slow provider costs only
// that attempt. The returned slice holds one entry per contact that had at
// least one channel to try, in the input order.
func (d *alertDispatcher) Dispatch(ctx context.Context, alert *entity.Alert, contacts []*entity.Contact) []entity.DeliveryAttempt {
	payload := payloadFor(alert)

	results := make([]*entity.DeliveryAttempt, len(contacts))

	var wg sync.WaitGroup
	for i, contact := range contacts {
		if contact.Email == "" && contact.Mobile == "" {
			// Unreachable contacts cannot be attempted at all.
			continue
		}

		wg.Add(1)
		go func(i int, contact *entity.Contact) {
			defer wg.Done()
			attempt := d.dispatchContact(ctx, payload, contact)
			results[i] = &attempt
		}(i, contact)
	}
	wg.Wait()

	attempts := make([]entity.DeliveryAttempt, 0, len(contacts))
	for _, result := range results {
		if result != nil {
			attempts = append(attempts, *result)
		}
	}

	return attempts
}

// dispatchContact tries every channel the contact has and aggregates the
// outcome. Method is "both" only when more than one channel succeeded; a
// contact whose every attempted channel failed is still recorded, with the
// attempted channels as the method.
func (d *alertDispatcher) dispatchContact(ctx context.Context, payload service.AlertPayload, contact *entity.Contact) entity.DeliveryAttempt {
	var (
		emailAttempted, emailSent bool
		smsAttempted, smsSent     bool
	)

	if contact.Email != "" {
		emailAttempted = true
		emailSent = d.sendEmail(ctx, contact, payload)
	}

	if contact.Mobile != "" {
		smsAttempted = true
		smsSent = d.sendSMS(ctx, contact, payload)
	}

	attempt := entity.DeliveryAttempt{ContactID: contact.ID}

	switch {
	case emailSent && smsSent:
		attempt.Method = entity.MethodBoth
		attempt.Status = entity.DeliverySent
	case emailSent:
		attempt.Method = entity.MethodEmail
		attempt.Status = entity.DeliverySent
	case smsSent:
		attempt.Method = entity.MethodSMS
		attempt.Status = entity.DeliverySent
	default:
		attempt.Status = entity.DeliveryFailed
		switch {
		case emailAttempted && smsAttempted:
			attempt.Method = entity.MethodBoth
		case emailAttempted:
			attempt.Method = entity.MethodEmail
		default:
			attempt.Method = entity.MethodSMS
		}
	}

	return attempt
}

func (d *alertDispatcher) sendEmail(ctx context.Context, contact *entity.Contact, payload service.AlertPayload) bool {
	sendCtx, cancel := context.WithTimeout(ctx, d.channelTimeout)
	defer cancel()

	if err := d.email.SendAlertEmail(sendCtx, contact.Email, payload); err != nil {
		d.log(ctx).Warn("alert email delivery failed",
			slog.String("contact_id", contact.ID.String()),
			slog.String("alert_type", payload.Type),
			slog.Any("error", err))

		return false
	}

	return true
}

func (d *alertDispatcher) sendSMS(ctx context.Context, contact *entity.Contact, payload service.AlertPayload) bool {
	sendCtx, cancel := context.WithTimeout(ctx, d.channelTimeout)
	defer cancel()

	if err := d.sms.SendAlertSMS(sendCtx, contact.Mobile, payload); err != nil {
		d.log(ctx).Warn("alert sms delivery failed",
			slog.String("contact_id", contact.ID.String()),
			slog.String("alert_type", payload.Type),
			slog.Any("error", err))

		return false
	}

	return true
}
