package entity

import "github.com/google/uuid"

// SortBy selects the ordering of search results.
type SortBy string

const (
	SortByDistance  SortBy = "distance"
	SortByRating    SortBy = "rating"
	SortByPriceLow  SortBy = "price_low"
	SortByPriceHigh SortBy = "price_high"
)

// IsValid checks if the SortBy is a known value.
func (s SortBy) IsValid() bool {
	switch s {
	case SortByDistance, SortByRating, SortByPriceLow, SortByPriceHigh:
		return true
	default:
		return false
	}
}

// SearchFilters narrows down candidates before ranking.
type SearchFilters struct {
	MinRating     float64
	Skills        []string
	AvailableOnly bool
	SortBy        SortBy
}

// SearchQuery is built per request and never persisted.
type SearchQuery struct {
	SeekerLocation GeoPoint
	// SeekerCountryCode is an ISO 3166-1 alpha-2 code, empty when it could not be resolved.
	SeekerCountryCode string
	RadiusKm          float64
	Filters           SearchFilters
	Limit             int
	// Salt comes from the server-side discovery session.
	Salt string
}

// SearchResult is what a seeker sees for one editor.
type SearchResult struct {
	EditorID        uuid.UUID      `json:"editor_id"`
	Profile         ProfileSummary `json:"profile"`
	DistanceKm      float64        `json:"distance_km"`
	DisplayPosition GeoPoint       `json:"display_position"`
}
