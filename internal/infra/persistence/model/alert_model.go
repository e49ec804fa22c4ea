package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertModel is the GORM-specific struct for the 'alerts' table.
type AlertModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_alerts_user_created"`
	Type       string     `gorm:"type:text;not null;index"`
	Message    string     `gorm:"type:text;not null"`
	Latitude   *float64   `gorm:"type:decimal(10,8)"`
	Longitude  *float64   `gorm:"type:decimal(11,8)"`
	GeofenceID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time  `gorm:"index:idx_alerts_user_created,sort:desc"`

	Deliveries []AlertDeliveryModel `gorm:"foreignKey:AlertID"`
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}

// AlertDeliveryModel is the GORM-specific struct for the 'alert_deliveries'
// table. One row per contact the alert was dispatched to.
type AlertDeliveryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AlertID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ContactID uuid.UUID `gorm:"type:uuid;not null"`
	Method    string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:text;not null;default:'sent'"`
}

// TableName explicitly sets the table name for GORM.
func (AlertDeliveryModel) TableName() string {
	return "alert_deliveries"
}
