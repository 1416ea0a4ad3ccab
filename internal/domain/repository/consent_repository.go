package repository

import (
	"context"
	"errors"

	"editorradar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrConsentNotFound is returned when a user has never answered the consent prompt.
var ErrConsentNotFound = errors.New("consent record not found")

// ConsentRepository is an append-only audit log of consent decisions.
type ConsentRepository interface {
	Append(ctx context.Context, record *entity.ConsentRecord) error
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.ConsentRecord, error)
}
