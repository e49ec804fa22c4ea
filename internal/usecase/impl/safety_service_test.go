package impl

import (
	"context"
	"testing"
	"time"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"
	mockRepo "guardian/internal/mocks/repository"
	mockUC "guardian/internal/mocks/usecase"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type safetyServiceMocks struct {
	geofenceRepo *mockRepo.MockGeofenceRepository
	contactRepo  *mockRepo.MockContactRepository
	alertRepo    *mockRepo.MockAlertRepository
	dispatcher   *mockUC.MockAlertDispatcher
}

func newTestSafetyService(t *testing.T) (usecase.SafetyUsecase, safetyServiceMocks) {
	mocks := safetyServiceMocks{
		geofenceRepo: mockRepo.NewMockGeofenceRepository(t),
		contactRepo:  mockRepo.NewMockContactRepository(t),
		alertRepo:    mockRepo.NewMockAlertRepository(t),
		dispatcher:   mockUC.NewMockAlertDispatcher(t),
	}

	service := NewSafetyService(SafetyServiceParams{
		GeofenceRepo: mocks.geofenceRepo,
		ContactRepo:  mocks.contactRepo,
		AlertRepo:    mocks.alertRepo,
		Dispatcher:   mocks.dispatcher,
		Logger:       testLogger(),
	})

	return service, mocks
}

// activeFence builds a fence centered on Taipei 101 with a 100m radius.
func activeFence(userID uuid.UUID) *entity.Geofence {
	now := time.Now()

	return &entity.Geofence{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Evening run",
		Latitude:  25.0330,
		Longitude: 121.5654,
		Radius:    100,
		Duration:  entity.Duration6h,
		IsActive:  true,
		CreatedAt: now,
		ExpiresAt: now.Add(6 * time.Hour),
	}
}

func TestSafetyService_CheckLocation_NoActiveFence(t *testing.T) {
	service, mocks := newTestSafetyService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.geofenceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, repository.ErrGeofenceNotFound)

	result, err := service.CheckLocation(ctx, userID, 25.0330, 121.5654)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeNoActiveFence, result.Outcome)
	assert.Nil(t, result.Alert)
}

func TestSafetyService_CheckLocation_Inside(t *testing.T) {
	service, mocks := newTestSafetyService(t)

	ctx := context.Background()
	userID := uuid.New()
	fence := activeFence(userID)

	mocks.geofenceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(fence, nil)

	// Sample at the exact center.
	result, err := service.CheckLocation(ctx, userID, fence.Latitude, fence.Longitude)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeInside, result.Outcome)
	assert.Equal(t, fence, result.Fence)
	assert.Zero(t, result.Distance)
	assert.Nil(t, result.Alert)
	assert.Zero(t, fence.CrossCount)
}

func TestSafetyService_CheckLocation_BoundaryIsInside(t *testing.T) {
	service, mocks := newTestSafetyService(t)

	ctx := context.Background()
	userID := uuid.New()
	fence := activeFence(userID)

	mocks.geofenceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(fence, nil)

	// Roughly 90m north of center, within the 100m radius.
	result, err := service.CheckLocation(ctx, userID, fence.Latitude+0.0008, fence.Longitude)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeInside, result.Outcome)
	assert.InDelta(t, 89, result.Distance, 2)
}

func TestSafetyService_CheckLocation_Outside(t *testing.T) {
	service, mocks := newTestSafetyService(t)

	ctx := context.Background()
	userID := uuid.New()
	fence := activeFence(userID)
	contacts := []*entity.Contact{
		{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"},
	}
	attempts := []entity.DeliveryAttempt{
		{ContactID: contacts[0].ID, Method: entity.MethodEmail, Status: entity.DeliverySent},
	}

	mocks.geofenceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(fence, nil)

	mocks.geofenceRepo.EXPECT().
		RecordCrossing(ctx, fence.ID).
		Return(nil)

	mocks.contactRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(contacts, nil)

	mocks.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*entity.Alert"), contacts).
		Return(attempts)

	mocks.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Return(nil)

	// Roughly 1.1km north of center.
	result, err := service.CheckLocation(ctx, userID, fence.Latitude+0.01, fence.Longitude)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeOutside, result.Outcome)
	assert.Greater(t, result.Distance, fence.Radius)
	assert.Equal(t, 1, fence.CrossCount)

	require.NotNil(t, result.Alert)
	assert.Equal(t, entity.AlertGeofenceBreach, result.Alert.Type)
	assert.Equal(t, userID, result.Alert.UserID)
	assert.Contains(t, result.Alert.Message, "User breached geofence: Evening run")
	require.NotNil(t, result.Alert.GeofenceID)
	assert.Equal(t, fence.ID, *result.Alert.GeofenceID)
	require.NotNil(t, result.Alert.Location)
	assert.Equal(t, fence.Latitude+0.01, result.Alert.Location.Latitude)
	assert.Equal(t, attempts, result.Alert.SentTo)
}

func TestSafetyService_CheckLocation_ArchivedDuringCheck(t *testing.T) {
	service, mocks := newTestSafetyService(t)

	ctx := context.Background()
	userID := uuid.New()
	fence := activeFence(userID)

	mocks.geofenceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(fence, nil)

	mocks.geofenceRepo.EXPECT().
		RecordCrossing(ctx, fence.ID).
		Return(repository.ErrGeofenceNotActive)

	// The sweeper won the race; no alert is raised.
	result, err := service.CheckLocation(ctx, userID, fence.Latitude+0.01, fence.Longitude)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeNoActiveFence, result.Outcome)
	assert.Nil(t, result.Alert)
}

func TestSafetyService_TriggerPanic(t *testing.T) {
	service, mocks := newTestSafetyService(t)

	ctx := context.Background()
	userID := uuid.New()
	contacts := []*entity.Contact{
		{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"},
		{ID: uuid.New(), Name: "Bob", Mobile: "+886912345678"},
	}
	attempts := []entity.DeliveryAttempt{
		{ContactID: contacts[0].ID, Method: entity.MethodEmail, Status: entity.DeliverySent},
		{ContactID: contacts[1].ID, Method: entity.MethodSMS, Status: entity.DeliveryFailed},
	}

	mocks.contactRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(contacts, nil)

	mocks.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*entity.Alert"), contacts).
		Return(attempts)

	mocks.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Return(nil)

	alert, err := service.TriggerPanic(ctx, userID, 25.0330, 121.5654)
	require.NoError(t, err)
	assert.Equal(t, entity.AlertPanicButton, alert.Type)
	assert.Equal(t, "Panic button activated! User may be in danger.", alert.Message)
	assert.Nil(t, alert.GeofenceID)
	require.NotNil(t, alert.Location)
	assert.Equal(t, 25.0330, alert.Location.Latitude)
	assert.Equal(t, attempts, alert.SentTo)
}

func TestSafetyService_TriggerPanic_ContactLoadFailure(t *testing.T) {
	service, mocks := newTestSafetyService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.contactRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, errors.New("connection reset"))

	// The alert is still recorded, with nobody reached.
	mocks.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*entity.Alert"), mock.Anything).
		Run(func(_ context.Context, _ *entity.Alert, contacts []*entity.Contact) {
			assert.Nil(t, contacts)
		}).
		Return([]entity.DeliveryAttempt{})

	mocks.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Return(nil)

	alert, err := service.TriggerPanic(ctx, userID, 25.0330, 121.5654)
	require.NoError(t, err)
	assert.Empty(t, alert.SentTo)
}

func TestSafetyService_TriggerPanic_PersistFailure(t *testing.T) {
	service, mocks := newTestSafetyService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.contactRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.Contact{}, nil)

	mocks.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*entity.Alert"), mock.Anything).
		Return([]entity.DeliveryAttempt{})

	mocks.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Return(errors.New("insert failed"))

	alert, err := service.TriggerPanic(ctx, userID, 25.0330, 121.5654)
	require.Error(t, err)
	assert.Nil(t, alert)
}
