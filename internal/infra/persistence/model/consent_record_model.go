package model

import (
	"time"

	"github.com/google/uuid"
)

// ConsentRecordModel is the GORM-specific struct for the append-only 'location_consents' table.
type ConsentRecordModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_location_consents_user_time"`
	ConsentGiven bool      `gorm:"not null"`
	Timestamp    time.Time `gorm:"not null;index:idx_location_consents_user_time"`
	Latitude     *float64  `gorm:"type:decimal(10,8)"`
	Longitude    *float64  `gorm:"type:decimal(11,8)"`
}

// TableName explicitly sets the table name for GORM.
func (ConsentRecordModel) TableName() string {
	return "location_consents"
}
