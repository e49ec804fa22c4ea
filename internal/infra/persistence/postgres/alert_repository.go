// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// Create persists a new alert together with its delivery attempts. GORM
// cascades the association insert, so the alert row and its delivery rows
// land in one statement batch.
func (repo *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	alertM := fromAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user, geofence, or contact reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required alert information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt

	return nil
}

// FindByUser retrieves a user's alerts newest-first, optionally filtered by type.
func (repo *alertRepository) FindByUser(ctx context.Context, userID uuid.UUID, alertType *entity.AlertType, limit, offset int) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	query := repo.db.WithContext(ctx).
		Preload("Deliveries").
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if alertType != nil {
		query = query.Where("type = ?", string(*alertType))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by user")
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

// CountByUser returns the number of alerts matching the same filter.
func (repo *alertRepository) CountByUser(ctx context.Context, userID uuid.UUID, alertType *entity.AlertType) (int64, error) {
	var count int64

	query := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("user_id = ?", userID)

	if alertType != nil {
		query = query.Where("type = ?", string(*alertType))
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count alerts")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAlertDomain converts a GORM AlertModel to a domain Alert entity.
func toAlertDomain(data *model.AlertModel) *entity.Alert {
	if data == nil {
		return nil
	}

	alert := &entity.Alert{
		ID:         data.ID,
		UserID:     data.UserID,
		Type:       entity.AlertType(data.Type),
		Message:    data.Message,
		GeofenceID: data.GeofenceID,
		CreatedAt:  data.CreatedAt,
	}

	if data.Latitude != nil && data.Longitude != nil {
		alert.Location = &entity.Location{
			Latitude:  *data.Latitude,
			Longitude: *data.Longitude,
		}
	}

	alert.SentTo = make([]entity.DeliveryAttempt, 0, len(data.Deliveries))
	for _, deliveryM := range data.Deliveries {
		alert.SentTo = append(alert.SentTo, entity.DeliveryAttempt{
			ContactID: deliveryM.ContactID,
			Method:    entity.DeliveryMethod(deliveryM.Method),
			Status:    entity.DeliveryStatus(deliveryM.Status),
		})
	}

	return alert
}

// fromAlertDomain converts a domain Alert entity to a GORM AlertModel.
func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	if data == nil {
		return nil
	}

	alertM := &model.AlertModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Type:       string(data.Type),
		Message:    data.Message,
		GeofenceID: data.GeofenceID,
		CreatedAt:  data.CreatedAt,
	}

	if data.Location != nil {
		latitude := data.Location.Latitude
		longitude := data.Location.Longitude
		alertM.Latitude = &latitude
		alertM.Longitude = &longitude
	}

	alertM.Deliveries = make([]model.AlertDeliveryModel, 0, len(data.SentTo))
	for _, attempt := range data.SentTo {
		alertM.Deliveries = append(alertM.Deliveries, model.AlertDeliveryModel{
			ContactID: attempt.ContactID,
			Method:    string(attempt.Method),
			Status:    string(attempt.Status),
		})
	}

	return alertM
}
