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

// sampleRepository implements the repository.SampleRepository interface.
type sampleRepository struct {
	db *gorm.DB
}

// NewSampleRepository is the constructor for sampleRepository.
func NewSampleRepository(db *gorm.DB) repository.SampleRepository {
	return &sampleRepository{
		db: db,
	}
}

// Create persists a new feature sample.
func (repo *sampleRepository) Create(ctx context.Context, sample *entity.ClassifierSample) error {
	sampleM := fromSampleDomain(sample)

	if err := repo.db.WithContext(ctx).Create(sampleM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required sample information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create classifier sample")
	}

	sample.ID = sampleM.ID
	sample.CreatedAt = sampleM.CreatedAt

	return nil
}

// FindByGeofence retrieves the sample captured for a specific geofence.
func (repo *sampleRepository) FindByGeofence(ctx context.Context, userID, geofenceID uuid.UUID) (*entity.ClassifierSample, error) {
	var sampleM model.ClassifierSampleModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND geofence_id = ?", userID, geofenceID).
		First(&sampleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSampleNotFound
		}

		return nil, errors.Wrap(err, "failed to find classifier sample")
	}

	return toSampleDomain(&sampleM), nil
}

// FindByUser retrieves a user's samples, newest first.
func (repo *sampleRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ClassifierSample, error) {
	var sampleModels []*model.ClassifierSampleModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&sampleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find classifier samples by user")
	}

	samples := make([]*entity.ClassifierSample, 0, len(sampleModels))
	for _, sampleM := range sampleModels {
		samples = append(samples, toSampleDomain(sampleM))
	}

	return samples, nil
}

// CountByUser returns the total number of samples for a user.
func (repo *sampleRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ClassifierSampleModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count classifier samples")
	}

	return count, nil
}

// SetScore writes the classifier verdict back onto a sample.
func (repo *sampleRepository) SetScore(ctx context.Context, sampleID uuid.UUID, prediction entity.Prediction, confidence float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ClassifierSampleModel{}).
		Where("id = ?", sampleID).
		Updates(map[string]interface{}{
			"prediction": string(prediction),
			"confidence": confidence,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set sample score")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSampleNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSampleDomain converts a GORM ClassifierSampleModel to a domain ClassifierSample entity.
func toSampleDomain(data *model.ClassifierSampleModel) *entity.ClassifierSample {
	if data == nil {
		return nil
	}

	sample := &entity.ClassifierSample{
		ID:                data.ID,
		UserID:            data.UserID,
		GeofenceID:        data.GeofenceID,
		GeofenceCreatedAt: data.GeofenceCreatedAt,
		CapturedAt:        data.CapturedAt,
		CrossCount:        data.CrossCount,
		Duration:          entity.DurationCategory(data.Duration),
		DayOfWeek:         data.DayOfWeek,
		TimeOfDay:         entity.TimeOfDay(data.TimeOfDay),
		Prediction:        entity.Prediction(data.Prediction),
		Confidence:        data.Confidence,
		CreatedAt:         data.CreatedAt,
	}

	if data.Temperature != nil {
		sample.Weather = &entity.WeatherSnapshot{
			Temperature: *data.Temperature,
			Condition:   data.Condition,
		}
	}

	return sample
}

// fromSampleDomain converts a domain ClassifierSample entity to a GORM ClassifierSampleModel.
func fromSampleDomain(data *entity.ClassifierSample) *model.ClassifierSampleModel {
	if data == nil {
		return nil
	}

	sampleM := &model.ClassifierSampleModel{
		ID:                data.ID,
		UserID:            data.UserID,
		GeofenceID:        data.GeofenceID,
		GeofenceCreatedAt: data.GeofenceCreatedAt,
		CapturedAt:        data.CapturedAt,
		CrossCount:        data.CrossCount,
		Duration:          int(data.Duration),
		DayOfWeek:         data.DayOfWeek,
		TimeOfDay:         string(data.TimeOfDay),
		Prediction:        string(data.Prediction),
		Confidence:        data.Confidence,
		CreatedAt:         data.CreatedAt,
	}

	if data.Weather != nil {
		temperature := data.Weather.Temperature
		sampleM.Temperature = &temperature
		sampleM.Condition = data.Weather.Condition
	}

	return sampleM
}
