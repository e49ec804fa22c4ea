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

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// Create persists a new contact.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required contact information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// FindByID retrieves a contact by its unique ID.
func (repo *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var contactM model.ContactModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by ID")
	}

	return toContactDomain(&contactM), nil
}

// FindByUser retrieves all contacts belonging to a user.
func (repo *contactRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error) {
	return repo.findByUser(ctx, userID, false)
}

// FindActiveByUser retrieves the user's active contacts, the dispatch set.
func (repo *contactRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error) {
	return repo.findByUser(ctx, userID, true)
}

func (repo *contactRepository) findByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Contact, error) {
	var contactModels []*model.ContactModel

	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Order("created_at ASC").Find(&contactModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find contacts by user")
	}

	contacts := make([]*entity.Contact, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts, nil
}

// Update persists changes to an existing contact.
func (repo *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	result := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("id = ?", contact.ID).
		Updates(map[string]interface{}{
			"name":      contactM.Name,
			"email":     contactM.Email,
			"mobile":    contactM.Mobile,
			"is_active": contactM.IsActive,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update contact")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// Delete removes a contact.
func (repo *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContactModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete contact")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toContactDomain converts a GORM ContactModel to a domain Contact entity.
func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Email:     data.Email,
		Mobile:    data.Mobile,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromContactDomain converts a domain Contact entity to a GORM ContactModel.
func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Email:     data.Email,
		Mobile:    data.Mobile,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
