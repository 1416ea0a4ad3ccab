// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"editorradar/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordConsentInput is the seeker's answer to the location prompt
type RecordConsentInput struct {
	ConsentGiven bool
	UserLocation *entity.GeoPoint
}

// SessionUsecase drives the seeker's discovery session and the consent audit log.
type SessionUsecase interface {
	// StartSession opens (or reopens) the seeker's session. A seeker who granted consent
	// before goes straight to searching; otherwise consent is requested.
	StartSession(ctx context.Context, userID uuid.UUID) (*entity.DiscoverySession, error)
	GetSession(ctx context.Context, userID uuid.UUID) (*entity.DiscoverySession, error)
	// RecordConsent appends a consent record and moves the session to granted or skipped.
	// Audit failures are logged and never returned.
	RecordConsent(ctx context.Context, userID uuid.UUID, input *RecordConsentInput) (*entity.DiscoverySession, error)
}
