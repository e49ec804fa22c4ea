package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactModel is the GORM-specific struct for the 'contacts' table.
// A database check constraint mirrors the entity invariant that at least one
// of email/mobile is present.
type ContactModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:text"`
	Mobile    string    `gorm:"type:text"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
