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

// historyRepository implements the repository.HistoryRepository interface.
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepository{
		db: db,
	}
}

// Create persists a new history record. The unique index on geofence_id makes
// duplicate archival attempts fail loudly instead of silently doubling history.
func (repo *historyRepository) Create(ctx context.Context, history *entity.GeofenceHistory) error {
	historyM := fromHistoryDomain(history)

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("geofence already archived")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required history information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create geofence history")
	}

	history.ID = historyM.ID

	return nil
}

// FindByUser retrieves a user's history records, newest archival first.
func (repo *historyRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.GeofenceHistory, error) {
	var historyModels []*model.GeofenceHistoryModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("archived_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&historyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find geofence history by user")
	}

	histories := make([]*entity.GeofenceHistory, 0, len(historyModels))
	for _, historyM := range historyModels {
		histories = append(histories, toHistoryDomain(historyM))
	}

	return histories, nil
}

// FindByGeofence retrieves the history record for a specific live-geofence ID.
func (repo *historyRepository) FindByGeofence(ctx context.Context, userID, geofenceID uuid.UUID) (*entity.GeofenceHistory, error) {
	var historyM model.GeofenceHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND geofence_id = ?", userID, geofenceID).
		First(&historyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHistoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find geofence history")
	}

	return toHistoryDomain(&historyM), nil
}

// SetAnalysis records the classifier result on an archived geofence.
func (repo *historyRepository) SetAnalysis(ctx context.Context, geofenceID uuid.UUID, result *entity.ClassifierResult) error {
	updates := map[string]interface{}{
		"prediction":  string(result.Prediction),
		"confidence":  result.Confidence,
		"analyzed_at": result.AnalyzedAt,
	}

	dbResult := repo.db.WithContext(ctx).
		Model(&model.GeofenceHistoryModel{}).
		Where("geofence_id = ?", geofenceID).
		Updates(updates)

	if dbResult.Error != nil {
		return errors.Wrap(dbResult.Error, "failed to set history analysis")
	}

	if dbResult.RowsAffected == 0 {
		return repository.ErrHistoryNotFound
	}

	return nil
}

// CountByUser returns the total number of history records for a user.
func (repo *historyRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GeofenceHistoryModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count geofence history")
	}

	return count, nil
}

// --- Mapper Functions ---

// toHistoryDomain converts a GORM GeofenceHistoryModel to a domain GeofenceHistory entity.
func toHistoryDomain(data *model.GeofenceHistoryModel) *entity.GeofenceHistory {
	if data == nil {
		return nil
	}

	history := &entity.GeofenceHistory{
		ID:         data.ID,
		UserID:     data.UserID,
		GeofenceID: data.GeofenceID,
		Name:       data.Name,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Radius:     data.Radius,
		Duration:   entity.DurationCategory(data.Duration),
		CrossCount: data.CrossCount,
		CreatedAt:  data.CreatedAt,
		ExpiresAt:  data.ExpiresAt,
		ArchivedAt: data.ArchivedAt,
	}

	if data.Temperature != nil {
		history.Weather = &entity.WeatherSnapshot{
			Temperature: *data.Temperature,
			Condition:   data.Condition,
		}
	}

	if data.Prediction != nil && data.Confidence != nil && data.AnalyzedAt != nil {
		history.Analysis = &entity.ClassifierResult{
			Prediction: entity.Prediction(*data.Prediction),
			Confidence: *data.Confidence,
			AnalyzedAt: *data.AnalyzedAt,
		}
	}

	return history
}

// fromHistoryDomain converts a domain GeofenceHistory entity to a GORM GeofenceHistoryModel.
func fromHistoryDomain(data *entity.GeofenceHistory) *model.GeofenceHistoryModel {
	if data == nil {
		return nil
	}

	historyM := &model.GeofenceHistoryModel{
		ID:         data.ID,
		UserID:     data.UserID,
		GeofenceID: data.GeofenceID,
		Name:       data.Name,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Radius:     data.Radius,
		Duration:   int(data.Duration),
		CrossCount: data.CrossCount,
		CreatedAt:  data.CreatedAt,
		ExpiresAt:  data.ExpiresAt,
		ArchivedAt: data.ArchivedAt,
	}

	if data.Weather != nil {
		temperature := data.Weather.Temperature
		historyM.Temperature = &temperature
		historyM.Condition = data.Weather.Condition
	}

	if data.Analysis != nil {
		prediction := string(data.Analysis.Prediction)
		confidence := data.Analysis.Confidence
		analyzedAt := data.Analysis.AnalyzedAt
		historyM.Prediction = &prediction
		historyM.Confidence = &confidence
		historyM.AnalyzedAt = &analyzedAt
	}

	return historyM
}
