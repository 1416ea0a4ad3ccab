package repository

import (
	"context"
	"errors"

	"editorradar/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrEditorLocationNotFound is returned when no location record exists for an editor.
	ErrEditorLocationNotFound = errors.New("editor location not found")
)

// EditorLocationRepository defines the interface for editor location persistence.
type EditorLocationRepository interface {
	// FindByEditorID returns the editor's record or ErrEditorLocationNotFound.
	FindByEditorID(ctx context.Context, editorID uuid.UUID) (*entity.EditorLocation, error)

	// Upsert inserts or replaces the record keyed by EditorID.
	Upsert(ctx context.Context, location *entity.EditorLocation) error

	// FindCandidatesWithin returns enabled editors whose true location may be within radiusKm
	// of center, joined with their profile summary. Results are a superset; callers apply exact
	// distance and visibility rules.
	FindCandidatesWithin(ctx context.Context, center entity.GeoPoint, radiusKm float64) ([]*entity.EditorCandidate, error)
}
