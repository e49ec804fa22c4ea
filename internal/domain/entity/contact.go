// Package entity contains the core business objects of the project.
package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrContactUnreachable is returned when a contact has neither an email address
// nor a mobile number.
var ErrContactUnreachable = errors.New("contact must have at least one of email or mobile")

// Contact represents a trusted person who receives safety alerts on behalf of a user.
type Contact struct {
	ID        uuid.UUID `json:"id"`      // The Global Unique Identifier (GUID) for the contact.
	UserID    uuid.UUID `json:"user_id"` // The ID of the user who owns this contact.
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`  // Optional email address.
	Mobile    string    `json:"mobile,omitempty"` // Optional mobile number in E.164-ish form.
	IsActive  bool      `json:"is_active"`        // Inactive contacts are excluded from dispatch.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate enforces the reachability invariant: at least one of email or mobile
// must be present.
func (c *Contact) Validate() error {
	if c.Email == "" && c.Mobile == "" {
		return ErrContactUnreachable
	}

	return nil
}
