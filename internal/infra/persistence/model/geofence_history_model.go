package model

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceHistoryModel is the GORM-specific struct for the 'geofence_history'
// table, the immutable archive of expired and deleted geofences.
type GeofenceHistoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_history_user_archived"`
	GeofenceID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name        string    `gorm:"type:text;not null"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null"`
	Radius      float64   `gorm:"not null"`
	Duration    int       `gorm:"not null"`
	CrossCount  int       `gorm:"not null;default:0"`
	Temperature *float64  `gorm:"type:decimal(5,2)"`
	Condition   string    `gorm:"type:text"`
	// Classifier result, filled in after scoring.
	Prediction *string    `gorm:"type:text"`
	Confidence *float64   `gorm:"type:decimal(4,3)"`
	AnalyzedAt *time.Time `gorm:""`
	CreatedAt  time.Time  `gorm:"not null"`
	ExpiresAt  time.Time  `gorm:"not null"`
	ArchivedAt time.Time  `gorm:"not null;index:idx_history_user_archived,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (GeofenceHistoryModel) TableName() string {
	return "geofence_history"
}
