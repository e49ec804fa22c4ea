package impl

import (
	"context"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/usecase"

	"github.com/google/uuid"
)

// alertService implements the AlertUsecase interface.
type alertService struct {
	alertRepo repository.AlertRepository
}

// NewAlertService is the constructor for alertService.
func NewAlertService(alertRepo repository.AlertRepository) usecase.AlertUsecase {
	return &alertService{
		alertRepo: alertRepo,
	}
}

// ListAlerts retrieves a user's alerts with pagination, newest first.
func (srv *alertService) ListAlerts(ctx context.Context, userID uuid.UUID, alertType *entity.AlertType, limit, offset int) ([]*entity.Alert, int64, error) {
	if alertType != nil && !alertType.Valid() {
		return nil, 0, domainerrors.ErrInvalidAlertType
	}

	alerts, err := srv.alertRepo.FindByUser(ctx, userID, alertType, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := srv.alertRepo.CountByUser(ctx, userID, alertType)
	if err != nil {
		return nil, 0, err
	}

	return alerts, total, nil
}
