package usecase

import (
	"context"

	"editorradar/internal/domain/entity"

	"github.com/google/uuid"
)

// SearchNearbyInput is a seeker's nearby query. Nil coordinates mean "use the session center".
type SearchNearbyInput struct {
	Latitude      *float64
	Longitude     *float64
	RadiusKm      *float64 // nil selects the configured default
	MinRating     float64
	Skills        []string
	AvailableOnly bool
	SortBy        entity.SortBy
	Limit         int
	CountryCode   string // ISO 3166-1 alpha-2, optional; resolved by reverse geocoding when empty
}

// SearchNearbyOutput is the ranked, obfuscated result list
type SearchNearbyOutput struct {
	Count         int                    `json:"count"`
	Editors       []*entity.SearchResult `json:"editors"`
	Center        entity.GeoPoint        `json:"center"`
	RadiusKm      float64                `json:"radius_km"`
	UsingFallback bool                   `json:"using_fallback"`
}

// DiscoveryUsecase answers nearby editor queries
type DiscoveryUsecase interface {
	SearchNearby(ctx context.Context, seekerID uuid.UUID, input *SearchNearbyInput) (*SearchNearbyOutput, error)
}
