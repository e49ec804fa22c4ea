// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// geofenceRepository implements the repository.GeofenceRepository interface.
type geofenceRepository struct {
	db *gorm.DB
}

// NewGeofenceRepository is the constructor for geofenceRepository.
func NewGeofenceRepository(db *gorm.DB) repository.GeofenceRepository {
	return &geofenceRepository{
		db: db,
	}
}

// CreateActive persists a new active geofence. The partial unique index on
// (user_id) WHERE is_active backs the application-level pre-check, so two
// racing creates cannot both commit.
func (repo *geofenceRepository) CreateActive(ctx context.Context, fence *entity.Geofence) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.GeofenceModel{}).
		Where("user_id = ? AND is_active = ?", fence.UserID, true).
		Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check for active geofence")
	}
	if count > 0 {
		return repository.ErrActiveGeofenceExists
	}

	fenceM := fromGeofenceDomain(fence)

	if err := repo.db.WithContext(ctx).Create(fenceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrActiveGeofenceExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required geofence information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create geofence")
	}

	// Update the entity with generated values
	fence.ID = fenceM.ID
	fence.CreatedAt = fenceM.CreatedAt

	return nil
}

// FindActiveByUser retrieves the user's active geofence.
func (repo *geofenceRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Geofence, error) {
	var fenceM model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&fenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGeofenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find active geofence")
	}

	return toGeofenceDomain(&fenceM), nil
}

// FindByID retrieves a geofence by its unique ID.
func (repo *geofenceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Geofence, error) {
	var fenceM model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&fenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGeofenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find geofence by ID")
	}

	return toGeofenceDomain(&fenceM), nil
}

// FindByIDForUpdate retrieves a geofence by ID with SELECT ... FOR UPDATE,
// holding the row lock until the surrounding transaction ends. A crossing
// committed after this read cannot slip between the snapshot and the
// conditioned delete.
func (repo *geofenceRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Geofence, error) {
	var fenceM model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&fenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGeofenceNotFound
		}

		return nil, errors.Wrap(err, "failed to lock geofence for archival")
	}

	return toGeofenceDomain(&fenceM), nil
}

// RecordCrossing atomically increments the cross count, conditioned on the
// fence still being active. RowsAffected 0 means the sweeper (or a delete)
// archived the fence first; the crossing is then not recorded.
func (repo *geofenceRepository) RecordCrossing(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GeofenceModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("cross_count", gorm.Expr("cross_count + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record crossing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGeofenceNotActive
	}

	return nil
}

// FindExpired retrieves all active geofences due for archival at the given instant.
func (repo *geofenceRepository) FindExpired(ctx context.Context, now time.Time) ([]*entity.Geofence, error) {
	var fenceModels []*model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND expires_at <= ?", true, now).
		Find(&fenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expired geofences")
	}

	fences := make([]*entity.Geofence, 0, len(fenceModels))
	for _, fenceM := range fenceModels {
		fences = append(fences, toGeofenceDomain(fenceM))
	}

	return fences, nil
}

// Delete removes the live row, conditioned on it still being active. The
// conditioned delete is the compare-and-swap that serializes archival against
// concurrent crossings and double sweeps: whichever update commits first wins.
func (repo *geofenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		Delete(&model.GeofenceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete geofence")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGeofenceNotActive
	}

	return nil
}

// --- Mapper Functions ---

// toGeofenceDomain converts a GORM GeofenceModel to a domain Geofence entity.
func toGeofenceDomain(data *model.GeofenceModel) *entity.Geofence {
	if data == nil {
		return nil
	}

	fence := &entity.Geofence{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Radius:     data.Radius,
		Duration:   entity.DurationCategory(data.Duration),
		IsActive:   data.IsActive,
		CrossCount: data.CrossCount,
		CreatedAt:  data.CreatedAt,
		ExpiresAt:  data.ExpiresAt,
	}

	if data.Temperature != nil {
		fence.Weather = &entity.WeatherSnapshot{
			Temperature: *data.Temperature,
			Condition:   data.Condition,
		}
	}

	return fence
}

// fromGeofenceDomain converts a domain Geofence entity to a GORM GeofenceModel.
func fromGeofenceDomain(data *entity.Geofence) *model.GeofenceModel {
	if data == nil {
		return nil
	}

	fenceM := &model.GeofenceModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Radius:     data.Radius,
		Duration:   int(data.Duration),
		IsActive:   data.IsActive,
		CrossCount: data.CrossCount,
		CreatedAt:  data.CreatedAt,
		ExpiresAt:  data.ExpiresAt,
	}

	if data.Weather != nil {
		temperature := data.Weather.Temperature
		fenceM.Temperature = &temperature
		fenceM.Condition = data.Weather.Condition
	}

	return fenceM
}
