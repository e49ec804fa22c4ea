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

type sweeperServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	geofenceRepo *mockRepo.MockGeofenceRepository
	historyRepo  *mockRepo.MockHistoryRepository
	sampleRepo   *mockRepo.MockSampleRepository
	anomaly      *mockUC.MockAnomalyUsecase
}

func newTestSweeperService(t *testing.T) (usecase.SweeperUsecase, sweeperServiceMocks) {
	mocks := sweeperServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		geofenceRepo: mockRepo.NewMockGeofenceRepository(t),
		historyRepo:  mockRepo.NewMockHistoryRepository(t),
		sampleRepo:   mockRepo.NewMockSampleRepository(t),
		anomaly:      mockUC.NewMockAnomalyUsecase(t),
	}

	svc := NewSweeperService(SweeperServiceParams{
		TxManager:    mocks.txManager,
		GeofenceRepo: mocks.geofenceRepo,
		Anomaly:      mocks.anomaly,
		Logger:       testLogger(),
	})

	return svc, mocks
}

// expectSweepTransactions routes every transaction through a factory backed
// by the test's repository mocks.
func expectSweepTransactions(t *testing.T, mocks sweeperServiceMocks) {
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

func expiredFence(now time.Time) *entity.Geofence {
	created := now.Add(-7 * time.Hour)

	return &entity.Geofence{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Name:      "Expired fence",
		Latitude:  25.0330,
		Longitude: 121.5654,
		Radius:    100,
		Duration:  entity.Duration6h,
		IsActive:  true,
		CreatedAt: created,
		ExpiresAt: created.Add(6 * time.Hour),
	}
}

func TestSweeperService_SweepExpired_NothingExpired(t *testing.T) {
	svc, mocks := newTestSweeperService(t)

	ctx := context.Background()
	now := time.Now()

	mocks.geofenceRepo.EXPECT().
		FindExpired(ctx, now).
		Return([]*entity.Geofence{}, nil)

	archived, err := svc.SweepExpired(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, archived)
}

func TestSweeperService_SweepExpired_ArchivesAndScores(t *testing.T) {
	svc, mocks := newTestSweeperService(t)

	ctx := context.Background()
	now := time.Now()
	fence := expiredFence(now)

	mocks.geofenceRepo.EXPECT().
		FindExpired(ctx, now).
		Return([]*entity.Geofence{fence}, nil)

	expectSweepTransactions(t, mocks)

	mocks.geofenceRepo.EXPECT().
		FindByIDForUpdate(ctx, fence.ID).
		Return(fence, nil)

	mocks.geofenceRepo.EXPECT().
		Delete(ctx, fence.ID).
		Return(nil)

	mocks.historyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.GeofenceHistory")).
		Run(func(_ context.Context, history *entity.GeofenceHistory) {
			assert.Equal(t, fence.ID, history.GeofenceID)
			assert.Equal(t, now, history.ArchivedAt)
		}).
		Return(nil)

	mocks.sampleRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ClassifierSample")).
		Return(nil)

	mocks.anomaly.EXPECT().
		ScoreSample(ctx, mock.AnythingOfType("*entity.ClassifierSample")).
		Run(func(_ context.Context, sample *entity.ClassifierSample) {
			assert.Equal(t, fence.ID, sample.GeofenceID)
			assert.Equal(t, now, sample.CapturedAt)
		}).
		Return(&entity.ClassifierResult{Prediction: entity.PredictionNormal, Confidence: 0.9}, nil)

	archived, err := svc.SweepExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, archived)
}

func TestSweeperService_SweepExpired_OneFailureDoesNotAbortBatch(t *testing.T) {
	svc, mocks := newTestSweeperService(t)

	ctx := context.Background()
	now := time.Now()
	deletedUnderneath := expiredFence(now)
	healthy := expiredFence(now)

	mocks.geofenceRepo.EXPECT().
		FindExpired(ctx, now).
		Return([]*entity.Geofence{deletedUnderneath, healthy}, nil)

	expectSweepTransactions(t, mocks)

	// First fence was archived by the user mid-sweep.
	mocks.geofenceRepo.EXPECT().
		FindByIDForUpdate(ctx, deletedUnderneath.ID).
		Return(nil, repository.ErrGeofenceNotFound)

	mocks.geofenceRepo.EXPECT().
		FindByIDForUpdate(ctx, healthy.ID).
		Return(healthy, nil)

	mocks.geofenceRepo.EXPECT().
		Delete(ctx, healthy.ID).
		Return(nil)

	mocks.historyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.GeofenceHistory")).
		Return(nil)

	mocks.sampleRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ClassifierSample")).
		Return(nil)

	mocks.anomaly.EXPECT().
		ScoreSample(ctx, mock.AnythingOfType("*entity.ClassifierSample")).
		Return(&entity.ClassifierResult{Prediction: entity.PredictionNormal, Confidence: 0.9}, nil)

	archived, err := svc.SweepExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, archived)
}

func TestSweeperService_SweepExpired_SkipsFenceNotYetExpired(t *testing.T) {
	svc, mocks := newTestSweeperService(t)

	ctx := context.Background()
	now := time.Now()
	stillLive := expiredFence(now)
	stillLive.ExpiresAt = now.Add(time.Hour)

	mocks.geofenceRepo.EXPECT().
		FindExpired(ctx, now).
		Return([]*entity.Geofence{stillLive}, nil)

	archived, err := svc.SweepExpired(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, archived)
}

func TestSweeperService_SweepExpired_ScoringFailureStillCountsArchive(t *testing.T) {
	svc, mocks := newTestSweeperService(t)

	ctx := context.Background()
	now := time.Now()
	fence := expiredFence(now)

	mocks.geofenceRepo.EXPECT().
		FindExpired(ctx, now).
		Return([]*entity.Geofence{fence}, nil)

	expectSweepTransactions(t, mocks)

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
		Return(nil)

	mocks.anomaly.EXPECT().
		ScoreSample(ctx, mock.AnythingOfType("*entity.ClassifierSample")).
		Return(nil, errors.New("scorer exploded"))

	archived, err := svc.SweepExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, archived)
}

func TestSweeperService_SweepExpired_ListFailure(t *testing.T) {
	svc, mocks := newTestSweeperService(t)

	ctx := context.Background()
	now := time.Now()

	mocks.geofenceRepo.EXPECT().
		FindExpired(ctx, now).
		Return(nil, errors.New("connection reset"))

	_, err := svc.SweepExpired(ctx, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list expired geofences")
}
