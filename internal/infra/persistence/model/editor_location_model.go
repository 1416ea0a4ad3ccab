package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EditorLocationModel is the GORM-specific struct for the 'editor_locations' table.
// The 'location' geography column is written with PostGIS functions and is not mapped here.
type EditorLocationModel struct {
	EditorID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Latitude          float64   `gorm:"type:decimal(10,8);not null;index:idx_editor_locations_lat_lng"`
	Longitude         float64   `gorm:"type:decimal(11,8);not null;index:idx_editor_locations_lat_lng"`
	City              string    `gorm:"type:varchar(120);not null;default:''"`
	State             string    `gorm:"type:varchar(120);not null;default:''"`
	Country           string    `gorm:"type:varchar(120);not null;default:''"`
	CountryCode       string    `gorm:"type:char(2);not null;default:'';index"`
	VisibilityEnabled bool      `gorm:"not null;default:false;index"`
	VisibilityLevel   string    `gorm:"type:varchar(16);not null;default:'city'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (EditorLocationModel) TableName() string {
	return "editor_locations"
}

// EditorProfileModel is a read-only projection of the profile service's 'editor_profiles' table.
type EditorProfileModel struct {
	EditorID    uuid.UUID                   `gorm:"type:uuid;primary_key"`
	DisplayName string                      `gorm:"type:varchar(255)"`
	AvatarURL   string                      `gorm:"type:text"`
	Rating      float64                     `gorm:"type:decimal(3,2)"`
	ReviewCount int                         `gorm:"not null;default:0"`
	HourlyRate  float64                     `gorm:"type:decimal(10,2)"`
	Skills      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Available   bool                        `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (EditorProfileModel) TableName() string {
	return "editor_profiles"
}

// EditorCandidateRow is the scan target of the candidate search join.
type EditorCandidateRow struct {
	EditorLocationModel

	DisplayName *string
	AvatarURL   *string
	Rating      *float64
	ReviewCount *int
	HourlyRate  *float64
	Skills      datatypes.JSONSlice[string]
	Available   *bool
}
