// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrContactNotFound is returned when a contact is not found.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository defines the interface for trusted-contact database operations.
type ContactRepository interface {
	// Create persists a new contact.
	Create(ctx context.Context, contact *entity.Contact) error

	// FindByID retrieves a contact by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)

	// FindByUser retrieves all contacts belonging to a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error)

	// FindActiveByUser retrieves the user's active contacts, the dispatch set.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error)

	// Update persists changes to an existing contact.
	Update(ctx context.Context, contact *entity.Contact) error

	// Delete removes a contact.
	Delete(ctx context.Context, id uuid.UUID) error
}
