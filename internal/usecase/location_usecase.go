package usecase

import (
	"context"

	"editorradar/internal/domain/entity"

	"github.com/google/uuid"
)

// VisibilityInput carries the editor's visibility choice. Nil fields keep the stored value.
type VisibilityInput struct {
	Enabled *bool
	Level   *entity.VisibilityLevel
}

// UpdateSettingsInput is a partial update of the editor's location record
type UpdateSettingsInput struct {
	City        *string
	State       *string
	Country     *string
	// CountryCode is an ISO 3166-1 alpha-2 code; country-level visibility compares it.
	CountryCode *string
	Visibility  *VisibilityInput
	Coordinates *entity.GeoPoint
}

// LocationUsecase defines the editor's own location settings operations
type LocationUsecase interface {
	GetSettings(ctx context.Context, editorID uuid.UUID) (*entity.EditorLocation, error)
	// UpdateSettings applies the input to the editor's record, creating it when coordinates are given.
	UpdateSettings(ctx context.Context, editorID uuid.UUID, input *UpdateSettingsInput) (*entity.EditorLocation, error)
}
