package service

import (
	"context"
	"errors"

	"editorradar/internal/domain/entity"
)

// ErrGeocoderUnavailable is returned when reverse geocoding is disabled or unreachable.
var ErrGeocoderUnavailable = errors.New("geocoder unavailable")

// Geocoder resolves coordinates to a place. Callers must treat every error as
// "unknown place" and fall back to manual entry.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, point entity.GeoPoint) (*entity.Place, error)
}
