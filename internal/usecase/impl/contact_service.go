package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(contactRepo repository.ContactRepository, logger *slog.Logger) usecase.ContactUsecase {
	return &contactService{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateContact registers a new emergency contact.
func (srv *contactService) CreateContact(ctx context.Context, userID uuid.UUID, input usecase.ContactInput) (*entity.Contact, error) {
	now := time.Now()
	contact := &entity.Contact{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      input.Name,
		Email:     input.Email,
		Mobile:    input.Mobile,
		IsActive:  input.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := contact.Validate(); err != nil {
		return nil, domainerrors.ErrContactUnreachable
	}

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("contact created",
		slog.String("contact_id", contact.ID.String()),
		slog.String("user_id", userID.String()))

	return contact, nil
}

// ListContacts retrieves all of the user's contacts.
func (srv *contactService) ListContacts(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error) {
	return srv.contactRepo.FindByUser(ctx, userID)
}

// UpdateContact replaces the mutable fields of a contact the user owns.
func (srv *contactService) UpdateContact(ctx context.Context, userID, contactID uuid.UUID, input usecase.ContactInput) (*entity.Contact, error) {
	contact, err := srv.findOwned(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}

	contact.Name = input.Name
	contact.Email = input.Email
	contact.Mobile = input.Mobile
	contact.IsActive = input.IsActive
	contact.UpdatedAt = time.Now()

	if err := contact.Validate(); err != nil {
		return nil, domainerrors.ErrContactUnreachable
	}

	if err := srv.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// DeleteContact removes a contact the user owns.
func (srv *contactService) DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error {
	if _, err := srv.findOwned(ctx, userID, contactID); err != nil {
		return err
	}

	return srv.contactRepo.Delete(ctx, contactID)
}

// findOwned loads a contact and enforces ownership.
func (srv *contactService) findOwned(ctx context.Context, userID, contactID uuid.UUID) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrContactNotFound
		}

		return nil, err
	}

	if contact.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return contact, nil
}
