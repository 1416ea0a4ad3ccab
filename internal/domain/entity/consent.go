package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConsentRecord is an immutable audit entry for a location sharing decision.
type ConsentRecord struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	ConsentGiven      bool      `json:"consent_given"`
	Timestamp         time.Time `json:"timestamp"`
	LocationAtConsent *GeoPoint `json:"location_at_consent,omitempty"`
}
