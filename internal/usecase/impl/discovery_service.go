package impl

import (
	"context"
	"log/slog"
	"time"

	"editorradar/config"
	deliverycontext "editorradar/internal/delivery/context"
	"editorradar/internal/domain/entity"
	domainerrors "editorradar/internal/domain/errors"
	"editorradar/internal/domain/ranking"
	"editorradar/internal/domain/repository"
	"editorradar/internal/domain/service"
	"editorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// discoveryService implements the DiscoveryUsecase interface.
type discoveryService struct {
	locationRepo repository.EditorLocationRepository
	sessionRepo  repository.SessionRepository
	geocoder     service.Geocoder
	guard        service.QueryGuard
	ranker       *ranking.Ranker
	discovery    *config.DiscoveryConfig
	logger       *slog.Logger
	now          func() time.Time
}

// NewDiscoveryService creates the nearby search service
func NewDiscoveryService(
	locationRepo repository.EditorLocationRepository,
	sessionRepo repository.SessionRepository,
	geocoder service.Geocoder,
	guard service.QueryGuard,
	ranker *ranking.Ranker,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DiscoveryUsecase {
	return &discoveryService{
		locationRepo: locationRepo,
		sessionRepo:  sessionRepo,
		geocoder:     geocoder,
		guard:        guard,
		ranker:       ranker,
		discovery:    cfg.Discovery.WithDefaults(),
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *discoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchNearby ranks editors around the explicit coordinates or, when absent, the session center
func (srv *discoveryService) SearchNearby(ctx context.Context, seekerID uuid.UUID, input *usecase.SearchNearbyInput) (*usecase.SearchNearbyOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidQuery.WithDetails("query is required")
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, domainerrors.ErrInvalidQuery.WithDetails("lat and lng must be given together")
	}
	if input.CountryCode != "" && entity.NormalizeCountryCode(input.CountryCode) == "" {
		return nil, domainerrors.ErrInvalidQuery.WithDetails("country must be an ISO 3166-1 alpha-2 code")
	}

	session, err := srv.loadSession(ctx, seekerID)
	if err != nil {
		return nil, err
	}

	var (
		center        entity.GeoPoint
		usingFallback bool
		// centerSession is set when the center came from the session, whose country code can be cached.
		centerSession *entity.DiscoverySession
	)
	switch {
	case input.Latitude != nil:
		center = entity.GeoPoint{Lat: *input.Latitude, Lng: *input.Longitude}
	case session != nil && session.Center != nil:
		center = *session.Center
		usingFallback = session.UsingFallback
		centerSession = session
	default:
		return nil, domainerrors.ErrSearchCenterRequired
	}

	// An explicit radius, zero included, goes to validation as given.
	radius := srv.discovery.Radius.DefaultKm
	if input.RadiusKm != nil {
		radius = *input.RadiusKm
	}

	query := &entity.SearchQuery{
		SeekerLocation: center,
		RadiusKm:       radius,
		Filters: entity.SearchFilters{
			MinRating:     input.MinRating,
			Skills:        input.Skills,
			AvailableOnly: input.AvailableOnly,
			SortBy:        input.SortBy,
		},
		Limit: input.Limit,
	}
	if session != nil {
		query.Salt = session.Salt
	}
	if err := srv.ranker.Validate(query); err != nil {
		return nil, toQueryError(err)
	}

	allowed, err := srv.guard.Allow(ctx, seekerID, center)
	if err != nil {
		return nil, err
	}
	if !allowed {
		srv.log(ctx).Warn("Query guard rejected search center", slog.String("seeker_id", seekerID.String()))

		return nil, domainerrors.ErrTooManyQueryCenters
	}

	query.SeekerCountryCode = srv.seekerCountryCode(ctx, input.CountryCode, center, centerSession)

	if session != nil && session.CanTransition(entity.SessionSearching) {
		_ = session.BeginSearch(srv.now())
	} else {
		session = nil
	}

	candidates, err := srv.locationRepo.FindCandidatesWithin(ctx, center, radius*srv.discovery.PrefilterMultiplier)
	if err != nil {
		if domainerrors.IsRetryable(err) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable.WithDetails(err.Error()), "candidate search failed")
	}

	results, err := srv.ranker.Rank(query, candidates)
	if err != nil {
		return nil, toQueryError(err)
	}

	if session != nil {
		if err := session.CompleteSearch(srv.now()); err == nil {
			if err := srv.sessionRepo.Save(ctx, session); err != nil {
				srv.log(ctx).Warn("Failed to save discovery session after search", slog.Any("error", err))
			}
		}
	}

	srv.log(ctx).Debug("Nearby search completed",
		slog.Int("candidates", len(candidates)),
		slog.Int("results", len(results)),
		slog.Float64("radius_km", radius),
		slog.String("sort_by", string(input.SortBy)),
	)

	return &usecase.SearchNearbyOutput{
		Count:         len(results),
		Editors:       results,
		Center:        center,
		RadiusKm:      radius,
		UsingFallback: usingFallback,
	}, nil
}

// loadSession returns nil when the seeker has no session.
func (srv *discoveryService) loadSession(ctx context.Context, seekerID uuid.UUID) (*entity.DiscoverySession, error) {
	session, err := srv.sessionRepo.Get(ctx, seekerID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return session, nil
}

// seekerCountryCode prefers the caller's code, then the code cached for the session center,
// and otherwise reverse-geocodes the center. An unresolved code hides country-level editors.
func (srv *discoveryService) seekerCountryCode(ctx context.Context, explicit string, center entity.GeoPoint, centerSession *entity.DiscoverySession) string {
	if code := entity.NormalizeCountryCode(explicit); code != "" {
		return code
	}
	if centerSession != nil && centerSession.CenterCountryCode != "" {
		return centerSession.CenterCountryCode
	}
	if srv.geocoder == nil {
		return ""
	}

	place, err := srv.geocoder.ReverseGeocode(ctx, center)
	if err != nil || place == nil || place.CountryCode == "" {
		srv.log(ctx).Debug("Seeker country unresolved", slog.Any("error", err))

		return ""
	}

	// Persisted with the session after the search completes.
	if centerSession != nil {
		centerSession.CenterCountryCode = place.CountryCode
	}

	return place.CountryCode
}

func toQueryError(err error) error {
	if errors.Is(err, ranking.ErrInvalidQuery) {
		return domainerrors.ErrInvalidQuery.WithDetails(err.Error())
	}

	return err
}
