package postgres

import (
	"editorradar/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// boundingBox is a lat/lng window around a search center. When the window
// crosses the antimeridian MinLng is greater than MaxLng.
type boundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

func newBoundingBox(center entity.GeoPoint, radiusKm float64) boundingBox {
	b := geo.NewBoundAroundPoint(center.Orb(), radiusKm*1000)

	return fromOrbBound(b)
}

func fromOrbBound(b orb.Bound) boundingBox {
	return boundingBox{
		MinLat: b.Min.Lat(),
		MaxLat: b.Max.Lat(),
		MinLng: b.Min.Lon(),
		MaxLng: b.Max.Lon(),
	}
}

func (b boundingBox) wrapsAntimeridian() bool {
	return b.MinLng > b.MaxLng
}

// clause renders the box as a SQL predicate over latitude/longitude columns,
// using the composite lat/lng index before the PostGIS distance check runs.
func (b boundingBox) clause(alias string) (string, []any) {
	lat := alias + ".latitude"
	lng := alias + ".longitude"

	if b.wrapsAntimeridian() {
		return lat + " BETWEEN ? AND ? AND (" + lng + " >= ? OR " + lng + " <= ?)",
			[]any{b.MinLat, b.MaxLat, b.MinLng, b.MaxLng}
	}

	return lat + " BETWEEN ? AND ? AND " + lng + " BETWEEN ? AND ?",
		[]any{b.MinLat, b.MaxLat, b.MinLng, b.MaxLng}
}
