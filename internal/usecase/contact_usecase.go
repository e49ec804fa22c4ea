package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// ContactInput carries the mutable fields of an emergency contact.
type ContactInput struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
	IsActive bool   `json:"is_active"`
}

// ContactUsecase defines the interface for emergency contact management use cases
type ContactUsecase interface {
	// CreateContact registers a new emergency contact. At least one of email
	// or mobile must be provided.
	CreateContact(ctx context.Context, userID uuid.UUID, input ContactInput) (*entity.Contact, error)

	// ListContacts retrieves all of the user's contacts, active or not.
	ListContacts(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error)

	// UpdateContact replaces the mutable fields of a contact the user owns.
	UpdateContact(ctx context.Context, userID, contactID uuid.UUID, input ContactInput) (*entity.Contact, error)

	// DeleteContact removes a contact the user owns.
	DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error
}
