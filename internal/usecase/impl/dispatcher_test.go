package impl

import (
	"context"
	"testing"
	"time"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
	mockSvc "guardian/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(email *mockSvc.MockEmailSender, sms *mockSvc.MockSMSSender) *alertDispatcher {
	return NewAlertDispatcher(AlertDispatcherParams{
		Email:  email,
		SMS:    sms,
		Config: testDispatchConfig(),
		Logger: testLogger(),
	}).(*alertDispatcher)
}

func testAlert(alertType entity.AlertType) *entity.Alert {
	return &entity.Alert{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Type:      alertType,
		Message:   "test alert message",
		CreatedAt: time.Now(),
	}
}

func TestAlertDispatcher_Dispatch_BothChannelsSucceed(t *testing.T) {
	mockEmail := mockSvc.NewMockEmailSender(t)
	mockSMS := mockSvc.NewMockSMSSender(t)
	dispatcher := newTestDispatcher(mockEmail, mockSMS)

	ctx := context.Background()
	alert := testAlert(entity.AlertPanicButton)
	contact := &entity.Contact{
		ID:     uuid.New(),
		Name:   "Alice",
		Email:  "alice@example.com",
		Mobile: "+886912345678",
	}

	expectedPayload := service.AlertPayload{
		Type:    "panic_button",
		Subject: "PANIC BUTTON ACTIVATED",
		Message: alert.Message,
	}

	mockEmail.EXPECT().
		SendAlertEmail(mock.Anything, "alice@example.com", expectedPayload).
		Return(nil)

	mockSMS.EXPECT().
		SendAlertSMS(mock.Anything, "+886912345678", expectedPayload).
		Return(nil)

	attempts := dispatcher.Dispatch(ctx, alert, []*entity.Contact{contact})
	require.Len(t, attempts, 1)
	assert.Equal(t, contact.ID, attempts[0].ContactID)
	assert.Equal(t, entity.MethodBoth, attempts[0].Method)
	assert.Equal(t, entity.DeliverySent, attempts[0].Status)
}

func TestAlertDispatcher_Dispatch_EmailFailsSMSDelivers(t *testing.T) {
	mockEmail := mockSvc.NewMockEmailSender(t)
	mockSMS := mockSvc.NewMockSMSSender(t)
	dispatcher := newTestDispatcher(mockEmail, mockSMS)

	ctx := context.Background()
	alert := testAlert(entity.AlertGeofenceBreach)
	contact := &entity.Contact{
		ID:     uuid.New(),
		Name:   "Bob",
		Email:  "bob@example.com",
		Mobile: "+886987654321",
	}

	mockEmail.EXPECT().
		SendAlertEmail(mock.Anything, "bob@example.com", mock.AnythingOfType("service.AlertPayload")).
		Return(errors.New("smtp connection refused"))

	mockSMS.EXPECT().
		SendAlertSMS(mock.Anything, "+886987654321", mock.AnythingOfType("service.AlertPayload")).
		Return(nil)

	attempts := dispatcher.Dispatch(ctx, alert, []*entity.Contact{contact})
	require.Len(t, attempts, 1)
	assert.Equal(t, entity.MethodSMS, attempts[0].Method)
	assert.Equal(t, entity.DeliverySent, attempts[0].Status)
}

func TestAlertDispatcher_Dispatch_AllChannelsFail(t *testing.T) {
	mockEmail := mockSvc.NewMockEmailSender(t)
	mockSMS := mockSvc.NewMockSMSSender(t)
	dispatcher := newTestDispatcher(mockEmail, mockSMS)

	ctx := context.Background()
	alert := testAlert(entity.AlertGeofenceBreach)
	contact := &entity.Contact{
		ID:     uuid.New(),
		Name:   "Carol",
		Email:  "carol@example.com",
		Mobile: "+886955555555",
	}

	mockEmail.EXPECT().
		SendAlertEmail(mock.Anything, "carol@example.com", mock.AnythingOfType("service.AlertPayload")).
		Return(errors.New("smtp connection refused"))

	mockSMS.EXPECT().
		SendAlertSMS(mock.Anything, "+886955555555", mock.AnythingOfType("service.AlertPayload")).
		Return(errors.New("twilio unavailable"))

	attempts := dispatcher.Dispatch(ctx, alert, []*entity.Contact{contact})
	require.Len(t, attempts, 1)
	assert.Equal(t, contact.ID, attempts[0].ContactID)
	assert.Equal(t, entity.MethodBoth, attempts[0].Method)
	assert.Equal(t, entity.DeliveryFailed, attempts[0].Status)
}

func TestAlertDispatcher_Dispatch_SingleChannelContacts(t *testing.T) {
	mockEmail := mockSvc.NewMockEmailSender(t)
	mockSMS := mockSvc.NewMockSMSSender(t)
	dispatcher := newTestDispatcher(mockEmail, mockSMS)

	ctx := context.Background()
	alert := testAlert(entity.AlertMLAnomaly)
	emailOnly := &entity.Contact{
		ID:    uuid.New(),
		Name:  "Dave",
		Email: "dave@example.com",
	}
	smsOnly := &entity.Contact{
		ID:     uuid.New(),
		Name:   "Erin",
		Mobile: "+886933333333",
	}

	mockEmail.EXPECT().
		SendAlertEmail(mock.Anything, "dave@example.com", mock.AnythingOfType("service.AlertPayload")).
		Return(nil)

	mockSMS.EXPECT().
		SendAlertSMS(mock.Anything, "+886933333333", mock.AnythingOfType("service.AlertPayload")).
		Return(errors.New("invalid number"))

	attempts := dispatcher.Dispatch(ctx, alert, []*entity.Contact{emailOnly, smsOnly})
	require.Len(t, attempts, 2)

	assert.Equal(t, emailOnly.ID, attempts[0].ContactID)
	assert.Equal(t, entity.MethodEmail, attempts[0].Method)
	assert.Equal(t, entity.DeliverySent, attempts[0].Status)

	assert.Equal(t, smsOnly.ID, attempts[1].ContactID)
	assert.Equal(t, entity.MethodSMS, attempts[1].Method)
	assert.Equal(t, entity.DeliveryFailed, attempts[1].Status)
}

func TestAlertDispatcher_Dispatch_SkipsUnreachableContacts(t *testing.T) {
	mockEmail := mockSvc.NewMockEmailSender(t)
	mockSMS := mockSvc.NewMockSMSSender(t)
	dispatcher := newTestDispatcher(mockEmail, mockSMS)

	ctx := context.Background()
	alert := testAlert(entity.AlertPanicButton)
	unreachable := &entity.Contact{
		ID:   uuid.New(),
		Name: "Frank",
	}
	reachable := &entity.Contact{
		ID:    uuid.New(),
		Name:  "Grace",
		Email: "grace@example.com",
	}

	mockEmail.EXPECT().
		SendAlertEmail(mock.Anything, "grace@example.com", mock.AnythingOfType("service.AlertPayload")).
		Return(nil)

	attempts := dispatcher.Dispatch(ctx, alert, []*entity.Contact{unreachable, reachable})
	require.Len(t, attempts, 1)
	assert.Equal(t, reachable.ID, attempts[0].ContactID)
}

func TestAlertDispatcher_Dispatch_NoContacts(t *testing.T) {
	mockEmail := mockSvc.NewMockEmailSender(t)
	mockSMS := mockSvc.NewMockSMSSender(t)
	dispatcher := newTestDispatcher(mockEmail, mockSMS)

	attempts := dispatcher.Dispatch(context.Background(), testAlert(entity.AlertPanicButton), nil)
	assert.Empty(t, attempts)
}
