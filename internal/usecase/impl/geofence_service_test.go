package impl

import (
	"context"
	"testing"
	"time"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	mockRepo "guardian/internal/mocks/repository"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type geofenceServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	geofenceRepo *mockRepo.MockGeofenceRepository
	historyRepo  *mockRepo.MockHistoryRepository
	sampleRepo   *mockRepo.MockSampleRepository
}

func newTestGeofenceService(t *testing.T) (usecase.GeofenceUsecase, geofenceServiceMocks) {
	mocks := geofenceServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		geofenceRepo: mockRepo.NewMockGeofenceRepository(t),
		historyRepo:  mockRepo.NewMockHistoryRepository(t),
		sampleRepo:   mockRepo.NewMockSampleRepository(t),
	}

	service := NewGeofenceService(GeofenceServiceParams{
		TxManager:    mocks.txManager,
		GeofenceRepo: mocks.geofenceRepo,
		HistoryRepo:  mocks.historyRepo,
		Logger:       testLogger(),
	})

	return service, mocks
}

// expectTransaction makes the transaction manager run the callback against a
// factory that hands back the test's own repository mocks.
func expectTransaction(t *testing.T, mocks geofenceServiceMocks) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewGeofenceRepository().Return(mocks.geofenceRepo).Maybe()
	factory.EXPECT().NewHistoryRepository().Return(mocks.historyRepo).Maybe()
	factory.EXPECT().NewSampleRepository().Return(mocks.sampleRepo).Maybe()

	mocks.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestGeofenceService_CreateGeofence(t *testing.T) {
	service, mocks := newTestGeofenceService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.CreateGeofenceInput{
		Name:      "Night shift",
		Latitude:  25.0330,
		Longitude: 121.5654,
		Radius:    250,
		Duration:  12,
		Weather:   &entity.WeatherSnapshot{Temperature: 28.5, Condition: "clear"},
	}

	mocks.geofenceRepo.EXPECT().
		CreateActive(ctx, mock.AnythingOfType("*entity.Geofence")).
		Return(nil)

	fence, err := service.CreateGeofence(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, userID, fence.UserID)
	assert.Equal(t, "Night shift", fence.Name)
	assert.Equal(t, entity.Duration12h, fence.Duration)
	assert.True(t, fence.IsActive)
	assert.Zero(t, fence.CrossCount)
	assert.Equal(t, fence.CreatedAt.Add(12*time.Hour), fence.ExpiresAt)
	require.NotNil(t, fence.Weather)
	assert.Equal(t, "clear", fence.Weather.Condition)
}

func TestGeofenceService_CreateGeofence_InvalidRadius(t *testing.T) {
	service, _ := newTestGeofenceService(t)

	ctx := context.Background()
	userID := uuid.New()

	for _, radius := range []float64{49, 5001, 0, -10} {
		_, err := service.CreateGeofence(ctx, userID, usecase.CreateGeofenceInput{
			Name:      "Bad radius",
			Latitude:  25.0330,
			Longitude: 121.5654,
			Radius:    radius,
			Duration:  6,
		})
		require.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
	}
}

func TestGeofenceService_CreateGeofence_InvalidDuration(t *testing.T) {
	service, _ := newTestGeofenceService(t)

	_, err := service.CreateGeofence(context.Background(), uuid.New(), usecase.CreateGeofenceInput{
		Name:      "Bad duration",
		Latitude:  25.0330,
		Longitude: 121.5654,
		Radius:    100,
		Duration:  8,
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidDuration)
}

func TestGeofenceService_CreateGeofence_ActiveFenceExists(t *testing.T) {
	service, mocks := newTestGeofenceService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.geofenceRepo.EXPECT().
		CreateActive(ctx, mock.AnythingOfType("*entity.Geofence")).
		Return(repository.ErrActiveGeofenceExists)

	_, err := service.CreateGeofence(ctx, userID, usecase.CreateGeofenceInput{
		Name:      "Second fence",
		Latitude:  25.0330,
		Longitude: 121.5654,
		Radius:    100,
		Duration:  6,
	})
	require.ErrorIs(t, err, domainerrors.ErrActiveGeofenceExists)
}

func TestGeofenceService_GetActiveGeofence_NotFound(t *testing.T) {
	service, mocks := newTestGeofenceService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.geofenceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, repository.ErrGeofenceNotFound)

	_, err := service.GetActiveGeofence(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrGeofenceNotFound)
}

func TestGeofenceService_DeleteGeofence(t *testing.T) {
	service, mocks := newTestGeofenceService(t)

	ctx := context.Background()
	userID := uuid.New()
	fence := activeFence(userID)
	fence.CrossCount = 3

	mocks.geofenceRepo.EXPECT().
		FindByID(ctx, fence.ID).
		Return(fence, nil)

	expectTransaction(t, mocks)

	mocks.geofenceRepo.EXPECT().
		FindByIDForUpdate(ctx, fence.ID).
		Return(fence, nil)

	mocks.geofenceRepo.EXPECT().
		Delete(ctx, fence.ID).
		Return(nil)

	mocks.historyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.GeofenceHistory")).
		Return(nil)

	mocks.sampleRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ClassifierSample")).
		Run(func(_ context.Context, sample *entity.ClassifierSample) {
			assert.Equal(t, fence.ID, sample.GeofenceID)
			assert.Equal(t, 3, sample.CrossCount)
			assert.Equal(t, int(fence.CreatedAt.Weekday()), sample.DayOfWeek)
			assert.Equal(t, entity.PredictionNormal, sample.Prediction)
		}).
		Return(nil)

	history, err := service.DeleteGeofence(ctx, userID, fence.ID)
	require.NoError(t, err)
	assert.Equal(t, fence.ID, history.GeofenceID)
	assert.Equal(t, fence.Name, history.Name)
	assert.Equal(t, 3, history.CrossCount)
	assert.WithinDuration(t, time.Now(), history.ArchivedAt, time.Minute)
}

func TestGeofenceService_DeleteGeofence_CrossingLandsBeforeLock(t *testing.T) {
	service, mocks := newTestGeofenceService(t)

	ctx := context.Background()
	userID := uuid.New()
	fence := activeFence(userID)
	fence.CrossCount = 3

	// A breach is recorded between the ownership check and the transaction
	// taking the row lock. The locked re-read sees the increment, so the
	// archived copy must carry it.
	locked := *fence
	locked.CrossCount = 4

	mocks.geofenceRepo.EXPECT().
		FindByID(ctx, fence.ID).
		Return(fence, nil)

	expectTransaction(t, mocks)

	mocks.geofenceRepo.EXPECT().
		FindByIDForUpdate(ctx, fence.ID).
		Return(&locked, nil)

	mocks.geofenceRepo.EXPECT().
		Delete(ctx, fence.ID).
		Return(nil)

	mocks.historyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.GeofenceHistory")).
		Return(nil)

	mocks.sampleRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ClassifierSample")).
		Run(func(_ context.Context, sample *entity.ClassifierSample) {
			assert.Equal(t, 4, sample.CrossCount)
		}).
		Return(nil)

	history, err := service.DeleteGeofence(ctx, userID, fence.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, history.CrossCount)
}

func TestGeofenceService_DeleteGeofence_Forbidden(t *testing.T) {
	service, mocks := newTestGeofenceService(t)

	ctx := context.Background()
	owner := uuid.New()
	fence := activeFence(owner)

	mocks.geofenceRepo.EXPECT().
		FindByID(ctx, fence.ID).
		Return(fence, nil)

	_, err := service.DeleteGeofence(ctx, uuid.New(), fence.ID)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestGeofenceService_DeleteGeofence_AlreadyArchived(t *testing.T) {
	service, mocks := newTestGeofenceService(t)

	ctx := context.Background()
	userID := uuid.New()
	geofenceID := uuid.New()
	archived := &entity.GeofenceHistory{
		ID:         uuid.New(),
		UserID:     userID,
		GeofenceID: geofenceID,
		Name:       "Evening run",
	}

	mocks.geofenceRepo.EXPECT().
		FindByID(ctx, geofenceID).
		Return(nil, repository.ErrGeofenceNotFound)

	mocks.historyRepo.EXPECT().
		FindByGeofence(ctx, userID, geofenceID).
		Return(archived, nil)

	history, err := service.DeleteGeofence(ctx, userID, geofenceID)
	require.NoError(t, err)
	assert.Equal(t, archived, history)
}

func TestGeofenceService_DeleteGeofence_LostRaceToSweeper(t *testing.T) {
	service, mocks := newTestGeofenceService(t)

	ctx := context.Background()
	userID := uuid.New()
	fence := activeFence(userID)
	archived := &entity.GeofenceHistory{
		ID:         uuid.New(),
		UserID:     userID,
		GeofenceID: fence.ID,
	}

	// The fence is live at first read but the sweeper archives it before the
	// transaction takes the row lock.
	mocks.geofenceRepo.EXPECT().
		FindByID(ctx, fence.ID).
		Return(fence, nil)

	expectTransaction(t, mocks)

	mocks.geofenceRepo.EXPECT().
		FindByIDForUpdate(ctx, fence.ID).
		Return(nil, repository.ErrGeofenceNotFound)

	mocks.historyRepo.EXPECT().
		FindByGeofence(ctx, userID, fence.ID).
		Return(archived, nil)

	history, err := service.DeleteGeofence(ctx, userID, fence.ID)
	require.NoError(t, err)
	assert.Equal(t, archived, history)
}

func TestGeofenceService_DeleteGeofence_NeverExisted(t *testing.T) {
	service, mocks := newTestGeofenceService(t)

	ctx := context.Background()
	userID := uuid.New()
	geofenceID := uuid.New()

	mocks.geofenceRepo.EXPECT().
		FindByID(ctx, geofenceID).
		Return(nil, repository.ErrGeofenceNotFound)

	mocks.historyRepo.EXPECT().
		FindByGeofence(ctx, userID, geofenceID).
		Return(nil, repository.ErrHistoryNotFound)

	_, err := service.DeleteGeofence(ctx, userID, geofenceID)
	require.ErrorIs(t, err, domainerrors.ErrGeofenceNotFound)
}

func TestGeofenceService_ListHistory(t *testing.T) {
	service, mocks := newTestGeofenceService(t)

	ctx := context.Background()
	userID := uuid.New()
	histories := []*entity.GeofenceHistory{
		{ID: uuid.New(), UserID: userID, Name: "Evening run"},
		{ID: uuid.New(), UserID: userID, Name: "Night shift"},
	}

	mocks.historyRepo.EXPECT().
		FindByUser(ctx, userID, 20, 0).
		Return(histories, nil)

	mocks.historyRepo.EXPECT().
		CountByUser(ctx, userID).
		Return(int64(7), nil)

	result, total, err := service.ListHistory(ctx, userID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, histories, result)
	assert.Equal(t, int64(7), total)
}

func TestGeofenceService_ListHistory_RepoError(t *testing.T) {
	service, mocks := newTestGeofenceService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.historyRepo.EXPECT().
		FindByUser(ctx, userID, 20, 0).
		Return(nil, errors.New("connection reset"))

	_, _, err := service.ListHistory(ctx, userID, 20, 0)
	require.Error(t, err)
}
