// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceModel is the GORM-specific struct for the 'geofences' table.
// Only live fences exist here; archival moves the terminal state into
// 'geofence_history' and removes the row.
type GeofenceModel struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	// The partial unique index on (user_id) WHERE is_active is the
	// database-level guarantee behind the one-active-fence-per-user rule.
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_geofences_user_active,where:is_active"`
	Name      string    `gorm:"type:text;not null"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	Radius    float64   `gorm:"not null"`
	// Duration is the category in hours (6/12/24).
	Duration    int      `gorm:"not null"`
	IsActive    bool     `gorm:"not null;default:true"`
	CrossCount  int      `gorm:"not null;default:0"`
	Temperature *float64 `gorm:"type:decimal(5,2)"`
	Condition   string   `gorm:"type:text"`
	CreatedAt   time.Time
	ExpiresAt   time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (GeofenceModel) TableName() string {
	return "geofences"
}
