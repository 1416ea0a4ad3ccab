// Package obfuscation places editors at a stable display position inside the
// seeker's search circle, independent of where they really are.
package obfuscation

import (
	"fmt"
	"hash/fnv"
	"math"

	"editorradar/internal/domain/entity"
	"editorradar/internal/domain/geo"
)

const (
	// GoldenAngleDeg spreads consecutive seeds around the circle without clustering.
	GoldenAngleDeg = 137.50776405003785

	minRatio  = 0.30
	ratioSpan = 0.50
)

// Engine computes display positions. The zero value is the unsalted engine.
type Engine struct {
	salt string
}

// NewEngine returns an unsalted engine.
func NewEngine() *Engine {
	return &Engine{}
}

// WithSalt returns a copy of the engine that mixes salt into every seed.
func (e *Engine) WithSalt(salt string) *Engine {
	return &Engine{salt: salt}
}

// Seed derives the integer seed for an editor.
// Unsalted seeds are the sum of the ID's character codes.
func (e *Engine) Seed(editorID string) uint64 {
	if e.salt == "" {
		var sum uint64
		for _, r := range editorID {
			sum += uint64(r)
		}

		return sum
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(e.salt))
	_, _ = h.Write([]byte{':'})
	_, _ = h.Write([]byte(editorID))

	// Keep the seed small enough that seed*GoldenAngleDeg stays exact in a float64.
	return h.Sum64() % (1 << 32)
}

// Bearing returns the display bearing in radians for a seed.
func Bearing(seed uint64) float64 {
	deg := math.Mod(float64(seed)*GoldenAngleDeg, 360)

	return deg * math.Pi / 180
}

// Ratio returns the fraction of the radius used for a seed, in [0.30, 0.80).
func Ratio(seed uint64) float64 {
	return minRatio + float64(seed%100)/100*ratioSpan
}

// DisplayPosition returns where an editor is drawn for a search centered on center with radiusKm.
func (e *Engine) DisplayPosition(editorID string, center entity.GeoPoint, radiusKm float64) (entity.GeoPoint, error) {
	return e.displayPosition(editorID, center, radiusKm, 0)
}

// DisplayPositionAvoiding is DisplayPosition, except that the bearing is advanced by further
// golden-angle steps while the result would coincide with avoid.
func (e *Engine) DisplayPositionAvoiding(editorID string, center entity.GeoPoint, radiusKm float64, avoid entity.GeoPoint) (entity.GeoPoint, error) {
	const maxSteps = 8

	for step := 0; step < maxSteps; step++ {
		p, err := e.displayPosition(editorID, center, radiusKm, step)
		if err != nil {
			return entity.GeoPoint{}, err
		}
		if !samePoint(p, avoid) {
			return p, nil
		}
	}

	return entity.GeoPoint{}, fmt.Errorf("%w: no distinct display position for %s", geo.ErrInvalidInput, editorID)
}

func (e *Engine) displayPosition(editorID string, center entity.GeoPoint, radiusKm float64, step int) (entity.GeoPoint, error) {
	if editorID == "" {
		return entity.GeoPoint{}, fmt.Errorf("%w: empty editor id", geo.ErrInvalidInput)
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return entity.GeoPoint{}, fmt.Errorf("%w: radius %v", geo.ErrInvalidInput, radiusKm)
	}

	seed := e.Seed(editorID)
	bearing := Bearing(seed + uint64(step))

	return geo.OffsetPoint(center, bearing, radiusKm*Ratio(seed))
}

// samePoint treats coordinates within about a centimetre as equal.
func samePoint(a, b entity.GeoPoint) bool {
	const eps = 1e-7

	return math.Abs(a.Lat-b.Lat) < eps && math.Abs(a.Lng-b.Lng) < eps
}
