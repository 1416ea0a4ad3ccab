// Package visibility enforces each editor's opt-in and granularity choice.
package visibility

import (
	"math"

	"editorradar/internal/domain/entity"
	"editorradar/internal/domain/geo"
)

// Unbounded marks a granularity without a distance cap.
const Unbounded = 0

// Caps maps a granularity to its maximum discoverable distance in km.
type Caps map[entity.VisibilityLevel]float64

// DefaultCaps returns city=25, region=100 and an unbounded country level.
func DefaultCaps() Caps {
	return Caps{
		entity.VisibilityCity:    25,
		entity.VisibilityRegion:  100,
		entity.VisibilityCountry: Unbounded,
	}
}

// Policy decides whether an editor may be shown for a query.
type Policy struct {
	caps Caps
}

// NewPolicy builds a policy. Levels missing from caps fall back to the defaults.
func NewPolicy(caps Caps) *Policy {
	merged := DefaultCaps()
	for level, km := range caps {
		if level.IsValid() && km >= 0 {
			merged[level] = km
		}
	}

	return &Policy{caps: merged}
}

// MaxRadiusKm is the effective radius for a level given the requested one.
// It returns +Inf when neither bounds the distance.
func (p *Policy) MaxRadiusKm(level entity.VisibilityLevel, requestedRadiusKm float64) float64 {
	limit := math.Inf(1)
	if requestedRadiusKm > 0 {
		limit = requestedRadiusKm
	}

	if level == entity.VisibilityCountry {
		// Country-level editors are bounded by country, not by the granularity table.
		if c := p.caps[level]; c > 0 {
			return math.Min(limit, c)
		}

		return math.Inf(1)
	}

	if c, ok := p.caps[level]; ok && c > 0 {
		return math.Min(limit, c)
	}

	return limit
}

// Allows applies the policy to a precomputed true distance.
func (p *Policy) Allows(record *entity.EditorLocation, distanceKm float64, seekerCountry string, requestedRadiusKm float64) bool {
	if record == nil || !record.Visibility.Enabled || !record.Visibility.Level.IsValid() {
		return false
	}

	if record.Visibility.Level == entity.VisibilityCountry && !record.SameCountry(seekerCountry) {
		return false
	}

	return distanceKm <= p.MaxRadiusKm(record.Visibility.Level, requestedRadiusKm)
}

// IsEligible computes the true distance from the seeker and applies the policy.
func (p *Policy) IsEligible(record *entity.EditorLocation, seeker entity.GeoPoint, seekerCountry string, requestedRadiusKm float64) (bool, error) {
	if record == nil || !record.Visibility.Enabled {
		return false, nil
	}

	distance, err := geo.DistanceKm(seeker, record.Location)
	if err != nil {
		return false, err
	}

	return p.Allows(record, distance, seekerCountry, requestedRadiusKm), nil
}
