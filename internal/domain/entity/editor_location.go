package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// VisibilityLevel is the granularity an editor is willing to be discovered at.
type VisibilityLevel string

const (
	VisibilityCity    VisibilityLevel = "city"
	VisibilityRegion  VisibilityLevel = "region"
	VisibilityCountry VisibilityLevel = "country"
)

// IsValid checks if the VisibilityLevel is a known value.
func (l VisibilityLevel) IsValid() bool {
	switch l {
	case VisibilityCity, VisibilityRegion, VisibilityCountry:
		return true
	default:
		return false
	}
}

func (l VisibilityLevel) String() string {
	return string(l)
}

// Visibility is the editor's opt-in and granularity choice.
type Visibility struct {
	Enabled bool            `json:"enabled"`
	Level   VisibilityLevel `json:"level"`
}

// EditorLocation holds an editor's true location and discovery settings.
// The Location field is never sent to seekers. CountryCode is the upper-case
// ISO 3166-1 alpha-2 code; Country is a display name only.
type EditorLocation struct {
	EditorID    uuid.UUID  `json:"editor_id"`
	Location    GeoPoint   `json:"location"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	Country     string     `json:"country"`
	CountryCode string     `json:"country_code"`
	Visibility  Visibility `json:"visibility"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SameCountry reports whether the record is in the country with the given ISO 3166-1 alpha-2 code.
// An empty or malformed code on either side never matches.
func (r *EditorLocation) SameCountry(countryCode string) bool {
	want := NormalizeCountryCode(countryCode)
	if want == "" {
		return false
	}

	return NormalizeCountryCode(r.CountryCode) == want
}

// NormalizeCountryCode upper-cases a two-letter country code and returns "" for anything else.
func NormalizeCountryCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		return ""
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return ""
		}
	}

	return code
}

// ProfileSummary is the read-only slice of an editor profile shown next to search results.
type ProfileSummary struct {
	DisplayName string   `json:"display_name"`
	AvatarURL   string   `json:"avatar_url,omitempty"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	HourlyRate  float64  `json:"hourly_rate"`
	Skills      []string `json:"skills"`
	Available   bool     `json:"available"`
}

// HasSkills reports whether every wanted skill is present, case-insensitively.
func (p ProfileSummary) HasSkills(wanted []string) bool {
	for _, w := range wanted {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}

		found := false
		for _, s := range p.Skills {
			if strings.EqualFold(strings.TrimSpace(s), w) {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// EditorCandidate pairs a location record with its profile summary for ranking.
type EditorCandidate struct {
	Location *EditorLocation
	Profile  ProfileSummary
}
