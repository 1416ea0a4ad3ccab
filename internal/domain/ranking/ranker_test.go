package ranking

import (
	"testing"

	"editorradar/internal/domain/entity"
	"editorradar/internal/domain/geo"
	"editorradar/internal/domain/obfuscation"
	"editorradar/internal/domain/visibility"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mumbai = entity.GeoPoint{Lat: 19.076, Lng: 72.877}

type candidateOpt func(c *entity.EditorCandidate)

func withRating(r float64) candidateOpt {
	return func(c *entity.EditorCandidate) { c.Profile.Rating = r }
}

func withRate(v float64) candidateOpt {
	return func(c *entity.EditorCandidate) { c.Profile.HourlyRate = v }
}

func withLevel(l entity.VisibilityLevel) candidateOpt {
	return func(c *entity.EditorCandidate) { c.Location.Visibility.Level = l }
}

func disabled() candidateOpt {
	return func(c *entity.EditorCandidate) { c.Location.Visibility.Enabled = false }
}

func unavailable() candidateOpt {
	return func(c *entity.EditorCandidate) { c.Profile.Available = false }
}

func withSkills(s ...string) candidateOpt {
	return func(c *entity.EditorCandidate) { c.Profile.Skills = s }
}

func withID(id string) candidateOpt {
	return func(c *entity.EditorCandidate) { c.Location.EditorID = uuid.MustParse(id) }
}

func candidateAt(t *testing.T, km, bearing float64, opts ...candidateOpt) *entity.EditorCandidate {
	t.Helper()

	loc, err := geo.OffsetPoint(mumbai, bearing, km)
	require.NoError(t, err)

	c := &entity.EditorCandidate{
		Location: &entity.EditorLocation{
			EditorID:    uuid.New(),
			Location:    loc,
			City:        "Mumbai",
			Country:     "India",
			CountryCode: "IN",
			Visibility:  entity.Visibility{Enabled: true, Level: entity.VisibilityCity},
		},
		Profile: entity.ProfileSummary{
			DisplayName: "editor",
			Rating:      4.0,
			Available:   true,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func newTestRanker() *Ranker {
	return NewRanker(visibility.NewPolicy(nil), obfuscation.NewEngine(), DefaultOptions())
}

func query(radius float64, sortBy entity.SortBy) *entity.SearchQuery {
	return &entity.SearchQuery{
		SeekerLocation:    mumbai,
		SeekerCountryCode: "IN",
		RadiusKm:          radius,
		Filters:           entity.SearchFilters{SortBy: sortBy},
	}
}

func TestRanker_MumbaiCityScenario(t *testing.T) {
	t.Parallel()

	near := candidateAt(t, 5, 0.3)
	far := candidateAt(t, 40, 2.1)

	results, err := newTestRanker().Rank(query(25, entity.SortByDistance), []*entity.EditorCandidate{far, near})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, near.Location.EditorID, results[0].EditorID)
	assert.InDelta(t, 5.0, results[0].DistanceKm, 0.1)
}

func TestRanker_DisabledEditorNeverAppears(t *testing.T) {
	t.Parallel()

	hidden := candidateAt(t, 1, 0, disabled(), withLevel(entity.VisibilityRegion))
	r := newTestRanker()

	for _, radius := range []float64{1.5, 10, 25, 50, 100} {
		results, err := r.Rank(query(radius, entity.SortByDistance), []*entity.EditorCandidate{hidden})
		require.NoError(t, err)
		assert.Empty(t, results)
	}
}

func TestRanker_InvalidQuery(t *testing.T) {
	t.Parallel()

	r := newTestRanker()
	c := []*entity.EditorCandidate{candidateAt(t, 1, 0)}

	tests := []struct {
		name  string
		query *entity.SearchQuery
	}{
		{"negative radius", query(-5, entity.SortByDistance)},
		{"zero radius", query(0, entity.SortByDistance)},
		{"radius above max", query(150, entity.SortByDistance)},
		{"radius below min", query(0.5, entity.SortByDistance)},
		{"unknown sort", query(10, entity.SortBy("popularity"))},
		{"latitude out of range", &entity.SearchQuery{SeekerLocation: entity.GeoPoint{Lat: 91}, RadiusKm: 10}},
		{"longitude out of range", &entity.SearchQuery{SeekerLocation: entity.GeoPoint{Lng: -200}, RadiusKm: 10}},
		{"negative min rating", &entity.SearchQuery{SeekerLocation: mumbai, RadiusKm: 10, Filters: entity.SearchFilters{MinRating: -1}}},
		{"nil query", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			results, err := r.Rank(tt.query, c)
			require.ErrorIs(t, err, ErrInvalidQuery)
			assert.Nil(t, results)
		})
	}
}

func TestRanker_EmptyResultIsNotAnError(t *testing.T) {
	t.Parallel()

	results, err := newTestRanker().Rank(query(10, entity.SortByDistance), nil)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRanker_SortByDistanceTiesByEditorID(t *testing.T) {
	t.Parallel()

	// Two editors sharing a building are at exactly the same distance.
	a := candidateAt(t, 3, 1.0, withID("00000000-0000-0000-0000-00000000000b"))
	b := candidateAt(t, 3, 1.0, withID("00000000-0000-0000-0000-00000000000a"))
	closest := candidateAt(t, 1, 0)

	results, err := newTestRanker().Rank(query(10, entity.SortByDistance), []*entity.EditorCandidate{a, closest, b})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, closest.Location.EditorID, results[0].EditorID)
	assert.Equal(t, b.Location.EditorID, results[1].EditorID)
	assert.Equal(t, a.Location.EditorID, results[2].EditorID)
}

func TestRanker_SortByRatingTiesByDistance(t *testing.T) {
	t.Parallel()

	farHigh := candidateAt(t, 8, 0, withRating(4.9))
	nearMid := candidateAt(t, 2, 1, withRating(4.5))
	farMid := candidateAt(t, 6, 2, withRating(4.5))

	results, err := newTestRanker().Rank(query(20, entity.SortByRating), []*entity.EditorCandidate{farMid, nearMid, farHigh})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, farHigh.Location.EditorID, results[0].EditorID)
	assert.Equal(t, nearMid.Location.EditorID, results[1].EditorID)
	assert.Equal(t, farMid.Location.EditorID, results[2].EditorID)
}

func TestRanker_SortByPrice(t *testing.T) {
	t.Parallel()

	cheap := candidateAt(t, 9, 0, withRate(20))
	pricey := candidateAt(t, 1, 1, withRate(80))
	midNear := candidateAt(t, 2, 2, withRate(50))
	midFar := candidateAt(t, 7, 3, withRate(50))
	all := []*entity.EditorCandidate{pricey, midFar, cheap, midNear}

	low, err := newTestRanker().Rank(query(20, entity.SortByPriceLow), all)
	require.NoError(t, err)
	require.Len(t, low, 4)
	assert.Equal(t, cheap.Location.EditorID, low[0].EditorID)
	assert.Equal(t, midNear.Location.EditorID, low[1].EditorID)
	assert.Equal(t, midFar.Location.EditorID, low[2].EditorID)
	assert.Equal(t, pricey.Location.EditorID, low[3].EditorID)

	high, err := newTestRanker().Rank(query(20, entity.SortByPriceHigh), all)
	require.NoError(t, err)
	require.Len(t, high, 4)
	assert.Equal(t, pricey.Location.EditorID, high[0].EditorID)
	assert.Equal(t, midNear.Location.EditorID, high[1].EditorID)
	assert.Equal(t, midFar.Location.EditorID, high[2].EditorID)
	assert.Equal(t, cheap.Location.EditorID, high[3].EditorID)
}

func TestRanker_Filters(t *testing.T) {
	t.Parallel()

	lowRated := candidateAt(t, 1, 0, withRating(3.0), withSkills("color grading"))
	busy := candidateAt(t, 2, 1, withRating(4.8), unavailable(), withSkills("color grading"))
	noSkill := candidateAt(t, 3, 2, withRating(4.8), withSkills("sound design"))
	match := candidateAt(t, 4, 3, withRating(4.8), withSkills("Color Grading", "motion graphics"))

	q := query(20, entity.SortByDistance)
	q.Filters.MinRating = 4.0
	q.Filters.AvailableOnly = true
	q.Filters.Skills = []string{"color grading"}

	results, err := newTestRanker().Rank(q, []*entity.EditorCandidate{lowRated, busy, noSkill, match})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, match.Location.EditorID, results[0].EditorID)
}

func TestRanker_CountryLevelUsesCountryNotCap(t *testing.T) {
	t.Parallel()

	national := candidateAt(t, 60, 0, withLevel(entity.VisibilityCountry))

	results, err := newTestRanker().Rank(query(100, entity.SortByDistance), []*entity.EditorCandidate{national})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	q := query(100, entity.SortByDistance)
	q.SeekerCountryCode = "PK"
	results, err = newTestRanker().Rank(q, []*entity.EditorCandidate{national})
	require.NoError(t, err)
	assert.Empty(t, results)

	// The query radius still applies.
	results, err = newTestRanker().Rank(query(50, entity.SortByDistance), []*entity.EditorCandidate{national})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRanker_DisplayPositionInvariants(t *testing.T) {
	t.Parallel()

	var candidates []*entity.EditorCandidate
	for i := range 40 {
		candidates = append(candidates, candidateAt(t, float64(i%20)+0.5, float64(i)*0.7, withLevel(entity.VisibilityRegion)))
	}

	for _, radius := range []float64{5, 25, 100} {
		results, err := newTestRanker().Rank(query(radius, entity.SortByDistance), candidates)
		require.NoError(t, err)
		require.NotEmpty(t, results)

		for _, res := range results {
			d, err := geo.DistanceKm(mumbai, res.DisplayPosition)
			require.NoError(t, err)
			assert.LessOrEqual(t, d, radius)

			for _, c := range candidates {
				if c.Location.EditorID == res.EditorID {
					assert.NotEqual(t, c.Location.Location, res.DisplayPosition)
				}
			}
		}
	}
}

func TestRanker_RepeatedQueryIsIdentical(t *testing.T) {
	t.Parallel()

	candidates := []*entity.EditorCandidate{
		candidateAt(t, 3, 0, withRating(4.2)),
		candidateAt(t, 7, 1, withRating(4.9)),
		candidateAt(t, 12, 2, withRating(4.9)),
	}
	r := newTestRanker()

	first, err := r.Rank(query(25, entity.SortByRating), candidates)
	require.NoError(t, err)
	second, err := r.Rank(query(25, entity.SortByRating), candidates)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRanker_SaltChangesDisplayNotOrder(t *testing.T) {
	t.Parallel()

	candidates := []*entity.EditorCandidate{candidateAt(t, 3, 0), candidateAt(t, 7, 1)}
	r := newTestRanker()

	plain, err := r.Rank(query(25, entity.SortByDistance), candidates)
	require.NoError(t, err)

	q := query(25, entity.SortByDistance)
	q.Salt = "session-salt"
	salted, err := r.Rank(q, candidates)
	require.NoError(t, err)

	require.Len(t, salted, 2)
	for i := range plain {
		assert.Equal(t, plain[i].EditorID, salted[i].EditorID)
		assert.Equal(t, plain[i].DistanceKm, salted[i].DistanceKm)
		assert.NotEqual(t, plain[i].DisplayPosition, salted[i].DisplayPosition)
	}
}

func TestRanker_Limit(t *testing.T) {
	t.Parallel()

	var candidates []*entity.EditorCandidate
	for i := range 10 {
		candidates = append(candidates, candidateAt(t, float64(i)+1, 0))
	}

	q := query(25, entity.SortByDistance)
	q.Limit = 3
	results, err := newTestRanker().Rank(q, candidates)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, candidates[0].Location.EditorID, results[0].EditorID)
}
