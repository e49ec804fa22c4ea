package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassifierSampleModel is the GORM-specific struct for the
// 'classifier_samples' table, the feature rows fed to the anomaly scorer.
type ClassifierSampleModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index:idx_samples_user_created"`
	GeofenceID        uuid.UUID `gorm:"type:uuid;not null;index"`
	GeofenceCreatedAt time.Time `gorm:"not null"`
	CapturedAt        time.Time `gorm:"not null"`
	CrossCount        int       `gorm:"not null"`
	Duration          int       `gorm:"not null"`
	Temperature       *float64  `gorm:"type:decimal(5,2)"`
	Condition         string    `gorm:"type:text"`
	DayOfWeek         int       `gorm:"not null"`
	TimeOfDay         string    `gorm:"type:text;not null"`
	Prediction        string    `gorm:"type:text;not null;default:'normal'"`
	Confidence        float64   `gorm:"type:decimal(4,3);not null;default:0"`
	CreatedAt         time.Time `gorm:"index:idx_samples_user_created,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (ClassifierSampleModel) TableName() string {
	return "classifier_samples"
}
