package impl

import (
	"context"
	"testing"
	"time"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	mockRepo "guardian/internal/mocks/repository"
	mockSvc "guardian/internal/mocks/service"
	mockUC "guardian/internal/mocks/usecase"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type anomalyServiceMocks struct {
	sampleRepo  *mockRepo.MockSampleRepository
	historyRepo *mockRepo.MockHistoryRepository
	contactRepo *mockRepo.MockContactRepository
	alertRepo   *mockRepo.MockAlertRepository
	scorer      *mockSvc.MockAnomalyScorer
	dispatcher  *mockUC.MockAlertDispatcher
}

func newTestAnomalyService(t *testing.T) (usecase.AnomalyUsecase, anomalyServiceMocks) {
	mocks := anomalyServiceMocks{
		sampleRepo:  mockRepo.NewMockSampleRepository(t),
		historyRepo: mockRepo.NewMockHistoryRepository(t),
		contactRepo: mockRepo.NewMockContactRepository(t),
		alertRepo:   mockRepo.NewMockAlertRepository(t),
		scorer:      mockSvc.NewMockAnomalyScorer(t),
		dispatcher:  mockUC.NewMockAlertDispatcher(t),
	}

	svc := NewAnomalyService(AnomalyServiceParams{
		SampleRepo:  mocks.sampleRepo,
		HistoryRepo: mocks.historyRepo,
		ContactRepo: mocks.contactRepo,
		AlertRepo:   mocks.alertRepo,
		Scorer:      mocks.scorer,
		Dispatcher:  mocks.dispatcher,
		Logger:      testLogger(),
	})

	return svc, mocks
}

func testSample(userID uuid.UUID) *entity.ClassifierSample {
	created := time.Now().Add(-6 * time.Hour)

	return &entity.ClassifierSample{
		ID:                uuid.New(),
		UserID:            userID,
		GeofenceID:        uuid.New(),
		GeofenceCreatedAt: created,
		CapturedAt:        time.Now(),
		CrossCount:        2,
		Duration:          entity.Duration6h,
		DayOfWeek:         int(created.Weekday()),
		TimeOfDay:         entity.TimeOfDayBucket(created),
		Prediction:        entity.PredictionNormal,
	}
}

func TestAnomalyService_ScoreSample_Normal(t *testing.T) {
	svc, mocks := newTestAnomalyService(t)

	ctx := context.Background()
	sample := testSample(uuid.New())

	mocks.scorer.EXPECT().
		Score(ctx, sample).
		Return(&service.ScoreResult{Prediction: entity.PredictionNormal, Confidence: 0.97}, nil)

	mocks.sampleRepo.EXPECT().
		SetScore(ctx, sample.ID, entity.PredictionNormal, 0.97).
		Return(nil)

	mocks.historyRepo.EXPECT().
		SetAnalysis(ctx, sample.GeofenceID, mock.AnythingOfType("*entity.ClassifierResult")).
		Return(nil)

	result, err := svc.ScoreSample(ctx, sample)
	require.NoError(t, err)
	assert.Equal(t, entity.PredictionNormal, result.Prediction)
	assert.Equal(t, 0.97, result.Confidence)
	assert.Equal(t, entity.PredictionNormal, sample.Prediction)
	assert.Equal(t, 0.97, sample.Confidence)
}

func TestAnomalyService_ScoreSample_ScorerUnavailable(t *testing.T) {
	svc, mocks := newTestAnomalyService(t)

	ctx := context.Background()
	sample := testSample(uuid.New())

	mocks.scorer.EXPECT().
		Score(ctx, sample).
		Return(nil, errors.New("connection refused"))

	// The fallback verdict is recorded as if the scorer had answered.
	mocks.sampleRepo.EXPECT().
		SetScore(ctx, sample.ID, entity.PredictionNormal, 0.5).
		Return(nil)

	mocks.historyRepo.EXPECT().
		SetAnalysis(ctx, sample.GeofenceID, mock.AnythingOfType("*entity.ClassifierResult")).
		Return(nil)

	result, err := svc.ScoreSample(ctx, sample)
	require.NoError(t, err)
	assert.Equal(t, entity.PredictionNormal, result.Prediction)
	assert.Equal(t, 0.5, result.Confidence)
}

func TestAnomalyService_ScoreSample_AnomalousRaisesAlert(t *testing.T) {
	svc, mocks := newTestAnomalyService(t)

	ctx := context.Background()
	userID := uuid.New()
	sample := testSample(userID)
	contacts := []*entity.Contact{
		{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"},
	}

	mocks.scorer.EXPECT().
		Score(ctx, sample).
		Return(&service.ScoreResult{Prediction: entity.PredictionAnomalous, Confidence: 0.91}, nil)

	mocks.sampleRepo.EXPECT().
		SetScore(ctx, sample.ID, entity.PredictionAnomalous, 0.91).
		Return(nil)

	mocks.historyRepo.EXPECT().
		SetAnalysis(ctx, sample.GeofenceID, mock.AnythingOfType("*entity.ClassifierResult")).
		Return(nil)

	mocks.contactRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(contacts, nil)

	mocks.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*entity.Alert"), contacts).
		Return([]entity.DeliveryAttempt{
			{ContactID: contacts[0].ID, Method: entity.MethodEmail, Status: entity.DeliverySent},
		})

	mocks.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Run(func(_ context.Context, alert *entity.Alert) {
			assert.Equal(t, entity.AlertMLAnomaly, alert.Type)
			assert.Equal(t, userID, alert.UserID)
			assert.Equal(t, "Anomalous behavior detected in geofence activity. Confidence: 91.00%", alert.Message)
			require.NotNil(t, alert.GeofenceID)
			assert.Equal(t, sample.GeofenceID, *alert.GeofenceID)
			assert.Len(t, alert.SentTo, 1)
		}).
		Return(nil)

	result, err := svc.ScoreSample(ctx, sample)
	require.NoError(t, err)
	assert.Equal(t, entity.PredictionAnomalous, result.Prediction)
}

func TestAnomalyService_ScoreSample_AlertPersistFailureDoesNotFailScoring(t *testing.T) {
	svc, mocks := newTestAnomalyService(t)

	ctx := context.Background()
	userID := uuid.New()
	sample := testSample(userID)

	mocks.scorer.EXPECT().
		Score(ctx, sample).
		Return(&service.ScoreResult{Prediction: entity.PredictionAnomalous, Confidence: 0.88}, nil)

	mocks.sampleRepo.EXPECT().
		SetScore(ctx, sample.ID, entity.PredictionAnomalous, 0.88).
		Return(nil)

	mocks.historyRepo.EXPECT().
		SetAnalysis(ctx, sample.GeofenceID, mock.AnythingOfType("*entity.ClassifierResult")).
		Return(nil)

	mocks.contactRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.Contact{}, nil)

	mocks.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*entity.Alert"), mock.Anything).
		Return([]entity.DeliveryAttempt{})

	mocks.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Return(errors.New("insert failed"))

	result, err := svc.ScoreSample(ctx, sample)
	require.NoError(t, err)
	assert.Equal(t, entity.PredictionAnomalous, result.Prediction)
}

func TestAnomalyService_ScoreSample_SetScoreFailure(t *testing.T) {
	svc, mocks := newTestAnomalyService(t)

	ctx := context.Background()
	sample := testSample(uuid.New())

	mocks.scorer.EXPECT().
		Score(ctx, sample).
		Return(&service.ScoreResult{Prediction: entity.PredictionNormal, Confidence: 0.8}, nil)

	mocks.sampleRepo.EXPECT().
		SetScore(ctx, sample.ID, entity.PredictionNormal, 0.8).
		Return(errors.New("update failed"))

	_, err := svc.ScoreSample(ctx, sample)
	require.Error(t, err)
}

func TestAnomalyService_ScoreSample_MissingHistoryIsTolerated(t *testing.T) {
	svc, mocks := newTestAnomalyService(t)

	ctx := context.Background()
	sample := testSample(uuid.New())

	mocks.scorer.EXPECT().
		Score(ctx, sample).
		Return(&service.ScoreResult{Prediction: entity.PredictionNormal, Confidence: 0.8}, nil)

	mocks.sampleRepo.EXPECT().
		SetScore(ctx, sample.ID, entity.PredictionNormal, 0.8).
		Return(nil)

	mocks.historyRepo.EXPECT().
		SetAnalysis(ctx, sample.GeofenceID, mock.AnythingOfType("*entity.ClassifierResult")).
		Return(repository.ErrHistoryNotFound)

	result, err := svc.ScoreSample(ctx, sample)
	require.NoError(t, err)
	assert.Equal(t, entity.PredictionNormal, result.Prediction)
}

func TestAnomalyService_AnalyzeGeofence(t *testing.T) {
	svc, mocks := newTestAnomalyService(t)

	ctx := context.Background()
	userID := uuid.New()
	sample := testSample(userID)

	mocks.sampleRepo.EXPECT().
		FindByGeofence(ctx, userID, sample.GeofenceID).
		Return(sample, nil)

	mocks.scorer.EXPECT().
		Score(ctx, sample).
		Return(&service.ScoreResult{Prediction: entity.PredictionNormal, Confidence: 0.93}, nil)

	mocks.sampleRepo.EXPECT().
		SetScore(ctx, sample.ID, entity.PredictionNormal, 0.93).
		Return(nil)

	mocks.historyRepo.EXPECT().
		SetAnalysis(ctx, sample.GeofenceID, mock.AnythingOfType("*entity.ClassifierResult")).
		Return(nil)

	result, err := svc.AnalyzeGeofence(ctx, userID, sample.GeofenceID)
	require.NoError(t, err)
	assert.Equal(t, 0.93, result.Confidence)
}

func TestAnomalyService_AnalyzeGeofence_SampleNotFound(t *testing.T) {
	svc, mocks := newTestAnomalyService(t)

	ctx := context.Background()
	userID := uuid.New()
	geofenceID := uuid.New()

	mocks.sampleRepo.EXPECT().
		FindByGeofence(ctx, userID, geofenceID).
		Return(nil, repository.ErrSampleNotFound)

	_, err := svc.AnalyzeGeofence(ctx, userID, geofenceID)
	require.ErrorIs(t, err, domainerrors.ErrSampleNotFound)
}

func TestAnomalyService_ListSamples(t *testing.T) {
	svc, mocks := newTestAnomalyService(t)

	ctx := context.Background()
	userID := uuid.New()
	samples := []*entity.ClassifierSample{testSample(userID), testSample(userID)}

	mocks.sampleRepo.EXPECT().
		FindByUser(ctx, userID, 20, 0).
		Return(samples, nil)

	mocks.sampleRepo.EXPECT().
		CountByUser(ctx, userID).
		Return(int64(2), nil)

	result, total, err := svc.ListSamples(ctx, userID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, samples, result)
	assert.Equal(t, int64(2), total)
}
