package impl

import (
	"context"
	"testing"
	"time"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	mockRepo "guardian/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertService_ListAlerts(t *testing.T) {
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	service := NewAlertService(mockAlertRepo)

	ctx := context.Background()
	userID := uuid.New()
	alerts := []*entity.Alert{
		{ID: uuid.New(), UserID: userID, Type: entity.AlertPanicButton, CreatedAt: time.Now()},
		{ID: uuid.New(), UserID: userID, Type: entity.AlertGeofenceBreach, CreatedAt: time.Now().Add(-time.Hour)},
	}

	mockAlertRepo.EXPECT().
		FindByUser(ctx, userID, (*entity.AlertType)(nil), 20, 0).
		Return(alerts, nil)

	mockAlertRepo.EXPECT().
		CountByUser(ctx, userID, (*entity.AlertType)(nil)).
		Return(int64(2), nil)

	result, total, err := service.ListAlerts(ctx, userID, nil, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, alerts, result)
	assert.Equal(t, int64(2), total)
}

func TestAlertService_ListAlerts_FilterByType(t *testing.T) {
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	service := NewAlertService(mockAlertRepo)

	ctx := context.Background()
	userID := uuid.New()
	panicType := entity.AlertPanicButton

	mockAlertRepo.EXPECT().
		FindByUser(ctx, userID, &panicType, 10, 10).
		Return([]*entity.Alert{}, nil)

	mockAlertRepo.EXPECT().
		CountByUser(ctx, userID, &panicType).
		Return(int64(0), nil)

	result, total, err := service.ListAlerts(ctx, userID, &panicType, 10, 10)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Zero(t, total)
}

func TestAlertService_ListAlerts_InvalidType(t *testing.T) {
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	service := NewAlertService(mockAlertRepo)

	badType := entity.AlertType("tornado_warning")

	_, _, err := service.ListAlerts(context.Background(), uuid.New(), &badType, 20, 0)
	require.ErrorIs(t, err, domainerrors.ErrInvalidAlertType)
}
