package obfuscation

import (
	"fmt"
	"math"
	"testing"

	"editorradar/internal/domain/entity"
	"editorradar/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mumbai = entity.GeoPoint{Lat: 19.076, Lng: 72.877}

func TestEngine_Seed(t *testing.T) {
	t.Parallel()

	e := NewEngine()
	// 'a'+'b'+'c' = 97+98+99
	assert.Equal(t, uint64(294), e.Seed("abc"))
	assert.Equal(t, e.Seed("editor-42"), e.Seed("editor-42"))

	salted := e.WithSalt("session-1")
	assert.Equal(t, salted.Seed("abc"), salted.Seed("abc"))
	assert.NotEqual(t, salted.Seed("abc"), e.WithSalt("session-2").Seed("abc"))
}

func TestBearingAndRatio(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.0, Bearing(0), 1e-12)
	assert.InDelta(t, GoldenAngleDeg*math.Pi/180, Bearing(1), 1e-12)
	assert.InDelta(t, math.Mod(2*GoldenAngleDeg, 360)*math.Pi/180, Bearing(2), 1e-12)

	assert.InDelta(t, 0.30, Ratio(0), 1e-12)
	assert.InDelta(t, 0.30, Ratio(100), 1e-12)
	assert.InDelta(t, 0.795, Ratio(99), 1e-12)
	assert.InDelta(t, 0.55, Ratio(250), 1e-12)
}

func TestEngine_DisplayPosition_Deterministic(t *testing.T) {
	t.Parallel()

	e := NewEngine()
	id := uuid.NewString()

	first, err := e.DisplayPosition(id, mumbai, 25)
	require.NoError(t, err)
	for range 5 {
		again, err := e.DisplayPosition(id, mumbai, 25)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEngine_DisplayPosition_StaysInMiddleBand(t *testing.T) {
	t.Parallel()

	e := NewEngine()
	centers := []entity.GeoPoint{mumbai, {Lat: 0, Lng: 0}, {Lat: -33.87, Lng: 151.21}, {Lat: 52.52, Lng: 13.4}}
	radii := []float64{1, 10, 25, 100}

	for i := range 200 {
		id := fmt.Sprintf("editor-%03d", i)
		for _, c := range centers {
			for _, r := range radii {
				p, err := e.DisplayPosition(id, c, r)
				require.NoError(t, err)

				d, err := geo.DistanceKm(c, p)
				require.NoError(t, err)
				assert.LessOrEqual(t, d, r, "id=%s center=%v radius=%v", id, c, r)
				assert.GreaterOrEqual(t, d, 0.29*r, "id=%s center=%v radius=%v", id, c, r)
			}
		}
	}
}

func TestEngine_DisplayPosition_MovesWithRadiusAndCenter(t *testing.T) {
	t.Parallel()

	e := NewEngine()
	id := uuid.NewString()

	a, err := e.DisplayPosition(id, mumbai, 25)
	require.NoError(t, err)
	b, err := e.DisplayPosition(id, mumbai, 50)
	require.NoError(t, err)
	c, err := e.DisplayPosition(id, entity.GeoPoint{Lat: 19.2, Lng: 72.9}, 25)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestEngine_DisplayPosition_InvalidInput(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	_, err := e.DisplayPosition("", mumbai, 10)
	require.ErrorIs(t, err, geo.ErrInvalidInput)

	_, err = e.DisplayPosition("x", mumbai, 0)
	require.ErrorIs(t, err, geo.ErrInvalidInput)

	_, err = e.DisplayPosition("x", entity.GeoPoint{Lat: math.NaN()}, 10)
	require.ErrorIs(t, err, geo.ErrInvalidInput)
}

func TestEngine_DisplayPositionAvoiding(t *testing.T) {
	t.Parallel()

	e := NewEngine()
	id := "editor-7"

	collision, err := e.DisplayPosition(id, mumbai, 25)
	require.NoError(t, err)

	p, err := e.DisplayPositionAvoiding(id, mumbai, 25, collision)
	require.NoError(t, err)
	assert.NotEqual(t, collision, p)

	d, err := geo.DistanceKm(mumbai, p)
	require.NoError(t, err)
	assert.LessOrEqual(t, d, 25.0)

	// Without a collision the result is the plain display position.
	same, err := e.DisplayPositionAvoiding(id, mumbai, 25, mumbai)
	require.NoError(t, err)
	assert.Equal(t, collision, same)
}
