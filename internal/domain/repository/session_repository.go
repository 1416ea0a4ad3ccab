package repository

import (
	"context"
	"errors"

	"editorradar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a seeker has no live discovery session.
var ErrSessionNotFound = errors.New("discovery session not found")

// SessionRepository stores one discovery session per seeker with a time-to-live.
type SessionRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*entity.DiscoverySession, error)
	Save(ctx context.Context, session *entity.DiscoverySession) error
	Delete(ctx context.Context, userID uuid.UUID) error
}
