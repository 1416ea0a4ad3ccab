// Package ranking filters, orders and obfuscates editor candidates for a seeker query.
package ranking

import (
	"fmt"
	"math"
	"sort"

	"editorradar/internal/domain/entity"
	"editorradar/internal/domain/geo"
	"editorradar/internal/domain/obfuscation"
	"editorradar/internal/domain/visibility"
	"editorradar/internal/errors"
)

// ErrInvalidQuery is returned for malformed queries before any distance is computed.
var ErrInvalidQuery = errors.New("invalid search query")

// Options bounds the queries the ranker accepts.
type Options struct {
	MinRadiusKm  float64
	MaxRadiusKm  float64
	DefaultLimit int
	MaxLimit     int
}

// DefaultOptions returns radius [1, 100] km and a limit of 50 (max 200).
func DefaultOptions() Options {
	return Options{
		MinRadiusKm:  1,
		MaxRadiusKm:  100,
		DefaultLimit: 50,
		MaxLimit:     200,
	}
}

// Ranker is safe for concurrent use; it holds no mutable state.
type Ranker struct {
	policy *visibility.Policy
	engine *obfuscation.Engine
	opts   Options
}

// NewRanker wires the policy and obfuscation engine. Zero option fields take defaults.
func NewRanker(policy *visibility.Policy, engine *obfuscation.Engine, opts Options) *Ranker {
	def := DefaultOptions()
	if opts.MinRadiusKm <= 0 {
		opts.MinRadiusKm = def.MinRadiusKm
	}
	if opts.MaxRadiusKm <= 0 {
		opts.MaxRadiusKm = def.MaxRadiusKm
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = def.DefaultLimit
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = def.MaxLimit
	}
	if policy == nil {
		policy = visibility.NewPolicy(nil)
	}
	if engine == nil {
		engine = obfuscation.NewEngine()
	}

	return &Ranker{policy: policy, engine: engine, opts: opts}
}

// Options returns the effective bounds.
func (r *Ranker) Options() Options {
	return r.opts
}

// Validate checks a query without touching any candidate.
func (r *Ranker) Validate(query *entity.SearchQuery) error {
	if query == nil {
		return fmt.Errorf("%w: missing query", ErrInvalidQuery)
	}
	if err := geo.ValidatePoint(query.SeekerLocation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	if math.IsNaN(query.RadiusKm) || query.RadiusKm <= 0 {
		return fmt.Errorf("%w: radius must be positive", ErrInvalidQuery)
	}
	if query.RadiusKm < r.opts.MinRadiusKm || query.RadiusKm > r.opts.MaxRadiusKm {
		return fmt.Errorf("%w: radius must be between %g and %g km", ErrInvalidQuery, r.opts.MinRadiusKm, r.opts.MaxRadiusKm)
	}
	if math.IsNaN(query.Filters.MinRating) || query.Filters.MinRating < 0 {
		return fmt.Errorf("%w: minRating must not be negative", ErrInvalidQuery)
	}
	if query.Filters.SortBy != "" && !query.Filters.SortBy.IsValid() {
		return fmt.Errorf("%w: unknown sortBy %q", ErrInvalidQuery, query.Filters.SortBy)
	}
	if query.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", ErrInvalidQuery)
	}

	return nil
}

type scored struct {
	candidate *entity.EditorCandidate
	distance  float64
	id        string
}

// Rank returns the eligible candidates within the query radius, ordered by the
// requested sort key, each with an obfuscated display position. The same input
// always yields the same output.
func (r *Ranker) Rank(query *entity.SearchQuery, candidates []*entity.EditorCandidate) ([]*entity.SearchResult, error) {
	if err := r.Validate(query); err != nil {
		return nil, err
	}

	kept := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if c == nil || c.Location == nil || !c.Location.Visibility.Enabled {
			continue
		}
		if !matchesFilters(c.Profile, query.Filters) {
			continue
		}

		distance, err := geo.DistanceKm(query.SeekerLocation, c.Location.Location)
		if err != nil {
			// Skip records with corrupt coordinates.
			continue
		}
		if distance > query.RadiusKm {
			continue
		}
		if !r.policy.Allows(c.Location, distance, query.SeekerCountryCode, query.RadiusKm) {
			continue
		}

		kept = append(kept, scored{candidate: c, distance: distance, id: c.Location.EditorID.String()})
	}

	sortScored(kept, query.Filters.SortBy)

	limit := r.limit(query.Limit)
	if len(kept) > limit {
		kept = kept[:limit]
	}

	engine := r.engine
	if query.Salt != "" {
		engine = engine.WithSalt(query.Salt)
	}

	results := make([]*entity.SearchResult, 0, len(kept))
	for _, s := range kept {
		display, err := engine.DisplayPositionAvoiding(s.id, query.SeekerLocation, query.RadiusKm, s.candidate.Location.Location)
		if err != nil {
			return nil, errors.Wrapf(err, "display position for editor %s", s.id)
		}

		results = append(results, &entity.SearchResult{
			EditorID:        s.candidate.Location.EditorID,
			Profile:         s.candidate.Profile,
			DistanceKm:      geo.RoundKm(s.distance),
			DisplayPosition: display,
		})
	}

	return results, nil
}

func (r *Ranker) limit(requested int) int {
	if requested <= 0 {
		return r.opts.DefaultLimit
	}

	return min(requested, r.opts.MaxLimit)
}

func matchesFilters(p entity.ProfileSummary, f entity.SearchFilters) bool {
	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}
	if f.AvailableOnly && !p.Available {
		return false
	}

	return p.HasSkills(f.Skills)
}

// sortScored orders in place. Every key falls back to distance, then editor ID,
// so the order is total.
func sortScored(items []scored, by entity.SortBy) {
	byDistance := func(a, b scored) bool {
		if a.distance != b.distance {
			return a.distance < b.distance
		}

		return a.id < b.id
	}

	var less func(a, b scored) bool
	switch by {
	case entity.SortByRating:
		less = func(a, b scored) bool {
			if ra, rb := a.candidate.Profile.Rating, b.candidate.Profile.Rating; ra != rb {
				return ra > rb
			}

			return byDistance(a, b)
		}
	case entity.SortByPriceLow:
		less = func(a, b scored) bool {
			if pa, pb := a.candidate.Profile.HourlyRate, b.candidate.Profile.HourlyRate; pa != pb {
				return pa < pb
			}

			return byDistance(a, b)
		}
	case entity.SortByPriceHigh:
		less = func(a, b scored) bool {
			if pa, pb := a.candidate.Profile.HourlyRate, b.candidate.Profile.HourlyRate; pa != pb {
				return pa > pb
			}

			return byDistance(a, b)
		}
	default:
		less = byDistance
	}

	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}
