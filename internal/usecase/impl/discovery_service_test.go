package impl

import (
	"context"
	"errors"
	"testing"

	"editorradar/config"
	"editorradar/internal/domain/entity"
	domainerrors "editorradar/internal/domain/errors"
	"editorradar/internal/domain/geo"
	"editorradar/internal/domain/ranking"
	"editorradar/internal/domain/repository"
	"editorradar/internal/domain/service"
	mockRepo "editorradar/internal/mocks/repository"
	mockService "editorradar/internal/mocks/service"
	"editorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var mumbai = entity.GeoPoint{Lat: 19.076, Lng: 72.877}

type discoveryFixture struct {
	locationRepo *mockRepo.MockEditorLocationRepository
	sessionRepo  *mockRepo.MockSessionRepository
	geocoder     *mockService.MockGeocoder
	guard        *mockService.MockQueryGuard
	svc          *discoveryService
}

func newDiscoveryFixture(t *testing.T) *discoveryFixture {
	t.Helper()

	f := &discoveryFixture{
		locationRepo: mockRepo.NewMockEditorLocationRepository(t),
		sessionRepo:  mockRepo.NewMockSessionRepository(t),
		geocoder:     mockService.NewMockGeocoder(t),
		guard:        mockService.NewMockQueryGuard(t),
	}
	ranker := ranking.NewRanker(nil, nil, ranking.DefaultOptions())
	f.svc = NewDiscoveryService(f.locationRepo, f.sessionRepo, f.geocoder, f.guard, ranker, &config.Config{}, newDiscardLogger()).(*discoveryService)
	f.svc.now = fixedClock

	return f
}

func candidateAt(t *testing.T, bearing, km float64, rating float64) *entity.EditorCandidate {
	t.Helper()

	p, err := geo.OffsetPoint(mumbai, bearing, km)
	require.NoError(t, err)

	return &entity.EditorCandidate{
		Location: &entity.EditorLocation{
			EditorID:    uuid.New(),
			Location:    p,
			Country:     "India",
			CountryCode: "IN",
			Visibility:  entity.Visibility{Enabled: true, Level: entity.VisibilityCity},
		},
		Profile: entity.ProfileSummary{DisplayName: "editor", Rating: rating},
	}
}

func TestDiscoveryService_SearchNearby_ExplicitCenter(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()
	seekerID := uuid.New()
	near := candidateAt(t, 0.5, 3, 4.2)
	far := candidateAt(t, 2.0, 12, 4.9)

	f.sessionRepo.EXPECT().Get(ctx, seekerID).Return(nil, repository.ErrSessionNotFound)
	f.guard.EXPECT().Allow(ctx, seekerID, mumbai).Return(true, nil)
	f.geocoder.EXPECT().ReverseGeocode(ctx, mumbai).Return(&entity.Place{Country: "India", CountryCode: "IN"}, nil)
	f.locationRepo.EXPECT().
		FindCandidatesWithin(ctx, mumbai, mock.MatchedBy(func(r float64) bool { return r >= 20 })).
		Return([]*entity.EditorCandidate{far, near}, nil)

	out, err := f.svc.SearchNearby(ctx, seekerID, &usecase.SearchNearbyInput{
		Latitude:  ptr(mumbai.Lat),
		Longitude: ptr(mumbai.Lng),
		RadiusKm:  ptr(20.0),
	})
	require.NoError(t, err)
	require.Equal(t, 2, out.Count)
	assert.Equal(t, near.Location.EditorID, out.Editors[0].EditorID)
	assert.Equal(t, far.Location.EditorID, out.Editors[1].EditorID)
	assert.InDelta(t, 3.0, out.Editors[0].DistanceKm, 0.1)
	assert.False(t, out.UsingFallback)
	assert.InDelta(t, 20.0, out.RadiusKm, 1e-9)

	for _, r := range out.Editors {
		d, err := geo.DistanceKm(mumbai, r.DisplayPosition)
		require.NoError(t, err)
		assert.LessOrEqual(t, d, 20.0)
	}
}

func TestDiscoveryService_SearchNearby_SessionCenterAndTransitions(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()
	seekerID := uuid.New()

	session := entity.NewDiscoverySession(seekerID, "salt-1", fixedNow)
	require.NoError(t, session.RequestConsent(fixedNow))
	require.NoError(t, session.Skip(mumbai, fixedNow))

	f.sessionRepo.EXPECT().Get(ctx, seekerID).Return(session, nil)
	f.guard.EXPECT().Allow(ctx, seekerID, mumbai).Return(true, nil)
	f.locationRepo.EXPECT().FindCandidatesWithin(ctx, mumbai, mock.Anything).Return(nil, nil)
	f.sessionRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(s *entity.DiscoverySession) bool {
			return s.State == entity.SessionResultsReady
		})).
		Return(nil)

	out, err := f.svc.SearchNearby(ctx, seekerID, &usecase.SearchNearbyInput{CountryCode: "IN"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Count)
	assert.Empty(t, out.Editors)
	assert.True(t, out.UsingFallback)
	assert.InDelta(t, 25.0, out.RadiusKm, 1e-9, "default radius")
	assert.Equal(t, mumbai, out.Center)
}

func TestDiscoveryService_SearchNearby_SaltedDisplayDiffersAcrossSessions(t *testing.T) {
	ctx := context.Background()
	seekerID := uuid.New()
	cand := candidateAt(t, 1.0, 5, 4.0)

	display := func(salt string) entity.GeoPoint {
		f := newDiscoveryFixture(t)
		session := entity.NewDiscoverySession(seekerID, salt, fixedNow)
		require.NoError(t, session.RequestConsent(fixedNow))
		require.NoError(t, session.Grant(mumbai, fixedNow))

		f.sessionRepo.EXPECT().Get(ctx, seekerID).Return(session, nil)
		f.guard.EXPECT().Allow(ctx, seekerID, mumbai).Return(true, nil)
		f.locationRepo.EXPECT().FindCandidatesWithin(ctx, mumbai, mock.Anything).Return([]*entity.EditorCandidate{cand}, nil)
		f.sessionRepo.EXPECT().Save(ctx, mock.Anything).Return(nil)

		out, err := f.svc.SearchNearby(ctx, seekerID, &usecase.SearchNearbyInput{RadiusKm: ptr(10.0), CountryCode: "IN"})
		require.NoError(t, err)
		require.Len(t, out.Editors, 1)

		return out.Editors[0].DisplayPosition
	}

	first := display("salt-a")
	assert.Equal(t, first, display("salt-a"), "same session salt is stable")
	assert.NotEqual(t, first, display("salt-b"))
}

func TestDiscoveryService_SearchNearby_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   *usecase.SearchNearbyInput
		setup   func(f *discoveryFixture, seekerID uuid.UUID)
		wantErr error
	}{
		{
			name:    "lat without lng",
			input:   &usecase.SearchNearbyInput{Latitude: ptr(19.0)},
			wantErr: domainerrors.ErrInvalidQuery,
		},
		{
			name:  "no center and no session",
			input: &usecase.SearchNearbyInput{},
			setup: func(f *discoveryFixture, seekerID uuid.UUID) {
				f.sessionRepo.EXPECT().Get(ctx, seekerID).Return(nil, repository.ErrSessionNotFound)
			},
			wantErr: domainerrors.ErrSearchCenterRequired,
		},
		{
			name:  "explicit zero radius",
			input: &usecase.SearchNearbyInput{Latitude: ptr(mumbai.Lat), Longitude: ptr(mumbai.Lng), RadiusKm: ptr(0.0)},
			setup: func(f *discoveryFixture, seekerID uuid.UUID) {
				f.sessionRepo.EXPECT().Get(ctx, seekerID).Return(nil, repository.ErrSessionNotFound)
			},
			wantErr: domainerrors.ErrInvalidQuery,
		},
		{
			name:  "radius below minimum",
			input: &usecase.SearchNearbyInput{Latitude: ptr(mumbai.Lat), Longitude: ptr(mumbai.Lng), RadiusKm: ptr(0.5)},
			setup: func(f *discoveryFixture, seekerID uuid.UUID) {
				f.sessionRepo.EXPECT().Get(ctx, seekerID).Return(nil, repository.ErrSessionNotFound)
			},
			wantErr: domainerrors.ErrInvalidQuery,
		},
		{
			name:    "country name instead of code",
			input:   &usecase.SearchNearbyInput{Latitude: ptr(mumbai.Lat), Longitude: ptr(mumbai.Lng), CountryCode: "India"},
			wantErr: domainerrors.ErrInvalidQuery,
		},
		{
			name:  "negative radius",
			input: &usecase.SearchNearbyInput{Latitude: ptr(mumbai.Lat), Longitude: ptr(mumbai.Lng), RadiusKm: ptr(-5.0)},
			setup: func(f *discoveryFixture, seekerID uuid.UUID) {
				f.sessionRepo.EXPECT().Get(ctx, seekerID).Return(nil, repository.ErrSessionNotFound)
			},
			wantErr: domainerrors.ErrInvalidQuery,
		},
		{
			name:  "radius above maximum",
			input: &usecase.SearchNearbyInput{Latitude: ptr(mumbai.Lat), Longitude: ptr(mumbai.Lng), RadiusKm: ptr(150.0)},
			setup: func(f *discoveryFixture, seekerID uuid.UUID) {
				f.sessionRepo.EXPECT().Get(ctx, seekerID).Return(nil, repository.ErrSessionNotFound)
			},
			wantErr: domainerrors.ErrInvalidQuery,
		},
		{
			name:  "unknown sort key",
			input: &usecase.SearchNearbyInput{Latitude: ptr(mumbai.Lat), Longitude: ptr(mumbai.Lng), SortBy: "popularity"},
			setup: func(f *discoveryFixture, seekerID uuid.UUID) {
				f.sessionRepo.EXPECT().Get(ctx, seekerID).Return(nil, repository.ErrSessionNotFound)
			},
			wantErr: domainerrors.ErrInvalidQuery,
		},
		{
			name:  "too many distinct centers",
			input: &usecase.SearchNearbyInput{Latitude: ptr(mumbai.Lat), Longitude: ptr(mumbai.Lng)},
			setup: func(f *discoveryFixture, seekerID uuid.UUID) {
				f.sessionRepo.EXPECT().Get(ctx, seekerID).Return(nil, repository.ErrSessionNotFound)
				f.guard.EXPECT().Allow(ctx, seekerID, mumbai).Return(false, nil)
			},
			wantErr: domainerrors.ErrTooManyQueryCenters,
		},
		{
			name:  "candidate store unavailable",
			input: &usecase.SearchNearbyInput{Latitude: ptr(mumbai.Lat), Longitude: ptr(mumbai.Lng), CountryCode: "IN"},
			setup: func(f *discoveryFixture, seekerID uuid.UUID) {
				f.sessionRepo.EXPECT().Get(ctx, seekerID).Return(nil, repository.ErrSessionNotFound)
				f.guard.EXPECT().Allow(ctx, seekerID, mumbai).Return(true, nil)
				f.locationRepo.EXPECT().FindCandidatesWithin(ctx, mumbai, mock.Anything).
					Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to find editor candidates within radius"))
			},
			wantErr: domainerrors.ErrStoreUnavailable,
		},
		{
			name:  "session store unavailable",
			input: &usecase.SearchNearbyInput{},
			setup: func(f *discoveryFixture, seekerID uuid.UUID) {
				f.sessionRepo.EXPECT().Get(ctx, seekerID).
					Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("redis down"), "failed to load discovery session"))
			},
			wantErr: domainerrors.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDiscoveryFixture(t)
			seekerID := uuid.New()
			if tt.setup != nil {
				tt.setup(f, seekerID)
			}

			out, err := f.svc.SearchNearby(ctx, seekerID, tt.input)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDiscoveryService_SearchNearby_UnresolvedCountryHidesCountryLevel(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()
	seekerID := uuid.New()

	countryLevel := candidateAt(t, 0.3, 4, 4.5)
	countryLevel.Location.Visibility.Level = entity.VisibilityCountry

	f.sessionRepo.EXPECT().Get(ctx, seekerID).Return(nil, repository.ErrSessionNotFound)
	f.guard.EXPECT().Allow(ctx, seekerID, mumbai).Return(true, nil)
	f.geocoder.EXPECT().ReverseGeocode(ctx, mumbai).Return(nil, service.ErrGeocoderUnavailable)
	f.locationRepo.EXPECT().FindCandidatesWithin(ctx, mumbai, mock.Anything).Return([]*entity.EditorCandidate{countryLevel}, nil)

	out, err := f.svc.SearchNearby(ctx, seekerID, &usecase.SearchNearbyInput{
		Latitude:  ptr(mumbai.Lat),
		Longitude: ptr(mumbai.Lng),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Count)
}

func TestDiscoveryService_SearchNearby_CountryMatchUsesCode(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()
	seekerID := uuid.New()

	countryLevel := candidateAt(t, 0.3, 4, 4.5)
	countryLevel.Location.Country = "Indien"
	countryLevel.Location.Visibility.Level = entity.VisibilityCountry

	f.sessionRepo.EXPECT().Get(ctx, seekerID).Return(nil, repository.ErrSessionNotFound)
	f.guard.EXPECT().Allow(ctx, seekerID, mumbai).Return(true, nil)
	f.geocoder.EXPECT().ReverseGeocode(ctx, mumbai).Return(&entity.Place{Country: "भारत", CountryCode: "IN"}, nil)
	f.locationRepo.EXPECT().FindCandidatesWithin(ctx, mumbai, mock.Anything).Return([]*entity.EditorCandidate{countryLevel}, nil)

	out, err := f.svc.SearchNearby(ctx, seekerID, &usecase.SearchNearbyInput{
		Latitude:  ptr(mumbai.Lat),
		Longitude: ptr(mumbai.Lng),
	})
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, countryLevel.Location.EditorID, out.Editors[0].EditorID)
}

func TestDiscoveryService_SearchNearby_SessionCachesCountryCode(t *testing.T) {
	f := newDiscoveryFixture(t)
	ctx := context.Background()
	seekerID := uuid.New()

	session := entity.NewDiscoverySession(seekerID, "salt-1", fixedNow)
	require.NoError(t, session.RequestConsent(fixedNow))
	require.NoError(t, session.Grant(mumbai, fixedNow))

	f.sessionRepo.EXPECT().Get(ctx, seekerID).Return(session, nil).Times(2)
	f.guard.EXPECT().Allow(ctx, seekerID, mumbai).Return(true, nil).Times(2)
	f.geocoder.EXPECT().ReverseGeocode(ctx, mumbai).Return(&entity.Place{CountryCode: "IN"}, nil).Once()
	f.locationRepo.EXPECT().FindCandidatesWithin(ctx, mumbai, mock.Anything).Return(nil, nil).Times(2)
	f.sessionRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(s *entity.DiscoverySession) bool {
			return s.CenterCountryCode == "IN"
		})).
		Return(nil).Times(2)

	for range 2 {
		_, err := f.svc.SearchNearby(ctx, seekerID, &usecase.SearchNearbyInput{})
		require.NoError(t, err)
	}
	assert.Equal(t, "IN", session.CenterCountryCode)
}
