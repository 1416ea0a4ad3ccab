package visibility

import (
	"math"
	"testing"

	"editorradar/internal/domain/entity"
	"editorradar/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mumbai = entity.GeoPoint{Lat: 19.076, Lng: 72.877}

func recordAt(t *testing.T, km float64, level entity.VisibilityLevel, enabled bool) *entity.EditorLocation {
	t.Helper()

	loc, err := geo.OffsetPoint(mumbai, 0, km)
	require.NoError(t, err)

	return &entity.EditorLocation{
		EditorID:    uuid.New(),
		Location:    loc,
		Country:     "India",
		CountryCode: "IN",
		Visibility:  entity.Visibility{Enabled: enabled, Level: level},
	}
}

func TestPolicy_IsEligible(t *testing.T) {
	t.Parallel()

	policy := NewPolicy(nil)

	tests := []struct {
		name     string
		km       float64
		level    entity.VisibilityLevel
		enabled  bool
		radius   float64
		country  string
		eligible bool
	}{
		{"city inside cap", 5, entity.VisibilityCity, true, 25, "IN", true},
		{"city beyond cap with large radius", 40, entity.VisibilityCity, true, 100, "IN", false},
		{"city beyond requested radius", 20, entity.VisibilityCity, true, 10, "IN", false},
		{"region inside cap", 80, entity.VisibilityRegion, true, 100, "IN", true},
		{"region beyond requested radius", 80, entity.VisibilityRegion, true, 50, "IN", false},
		{"disabled at 1km", 1, entity.VisibilityCity, false, 100, "IN", false},
		{"country same code", 90, entity.VisibilityCountry, true, 100, "IN", true},
		{"country lower case code", 90, entity.VisibilityCountry, true, 100, "in", true},
		{"country other code", 5, entity.VisibilityCountry, true, 100, "NP", false},
		{"country name is not a code", 5, entity.VisibilityCountry, true, 100, "India", false},
		{"country unknown seeker country", 5, entity.VisibilityCountry, true, 100, "", false},
		{"country ignores requested radius", 90, entity.VisibilityCountry, true, 10, "IN", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			record := recordAt(t, tt.km, tt.level, tt.enabled)
			got, err := policy.IsEligible(record, mumbai, tt.country, tt.radius)
			require.NoError(t, err)
			assert.Equal(t, tt.eligible, got)
		})
	}
}

func TestPolicy_CityNeverBeyond25Km(t *testing.T) {
	t.Parallel()

	policy := NewPolicy(nil)
	for _, km := range []float64{25.5, 30, 60, 99} {
		record := recordAt(t, km, entity.VisibilityCity, true)
		for _, radius := range []float64{1, 25, 50, 100} {
			ok, err := policy.IsEligible(record, mumbai, "IN", radius)
			require.NoError(t, err)
			assert.False(t, ok, "km=%v radius=%v", km, radius)
		}
	}
}

func TestPolicy_MaxRadiusKm(t *testing.T) {
	t.Parallel()

	policy := NewPolicy(Caps{entity.VisibilityCity: 10})

	assert.InDelta(t, 10.0, policy.MaxRadiusKm(entity.VisibilityCity, 50), 1e-9)
	assert.InDelta(t, 5.0, policy.MaxRadiusKm(entity.VisibilityCity, 5), 1e-9)
	assert.InDelta(t, 100.0, policy.MaxRadiusKm(entity.VisibilityRegion, 100), 1e-9)
	assert.True(t, math.IsInf(policy.MaxRadiusKm(entity.VisibilityCountry, 50), 1))
}

func TestPolicy_InvalidSeeker(t *testing.T) {
	t.Parallel()

	record := recordAt(t, 1, entity.VisibilityCity, true)
	_, err := NewPolicy(nil).IsEligible(record, entity.GeoPoint{Lat: 100}, "IN", 10)
	require.ErrorIs(t, err, geo.ErrInvalidInput)
}

func TestPolicy_CountryMatchIgnoresDisplayLanguage(t *testing.T) {
	t.Parallel()

	policy := NewPolicy(nil)
	for _, name := range []string{"India", "Indien", "भारत"} {
		record := recordAt(t, 10, entity.VisibilityCountry, true)
		record.Country = name

		assert.True(t, policy.Allows(record, 10, "IN", 50), "display name %q", name)
	}
}
