package impl

import (
	"context"
	"errors"
	"testing"

	"editorradar/config"
	"editorradar/internal/domain/entity"
	domainerrors "editorradar/internal/domain/errors"
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

type sessionFixture struct {
	sessionRepo *mockRepo.MockSessionRepository
	consentRepo *mockRepo.MockConsentRepository
	publisher   *mockService.MockEventPublisher
	svc         *sessionService
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		sessionRepo: mockRepo.NewMockSessionRepository(t),
		consentRepo: mockRepo.NewMockConsentRepository(t),
		publisher:   mockService.NewMockEventPublisher(t),
	}
	f.svc = NewSessionService(f.sessionRepo, f.consentRepo, f.publisher, &config.Config{}, newDiscardLogger()).(*sessionService)
	f.svc.now = fixedClock
	f.svc.newSalt = func() string { return "salt-1" }

	return f
}

func TestSessionService_StartSession(t *testing.T) {
	lastLocation := entity.GeoPoint{Lat: 28.61, Lng: 77.21}

	tests := []struct {
		name       string
		latest     *entity.ConsentRecord
		latestErr  error
		wantState  entity.SessionState
		wantCenter *entity.GeoPoint
	}{
		{
			name:      "first visit asks for consent",
			latestErr: repository.ErrConsentNotFound,
			wantState: entity.SessionConsentRequested,
		},
		{
			name:       "previous grant skips the prompt",
			latest:     &entity.ConsentRecord{ConsentGiven: true, LocationAtConsent: &lastLocation},
			wantState:  entity.SessionSearching,
			wantCenter: &lastLocation,
		},
		{
			name:      "previous skip asks again",
			latest:    &entity.ConsentRecord{ConsentGiven: false},
			wantState: entity.SessionConsentRequested,
		},
		{
			name:      "audit store down asks again",
			latestErr: domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to find latest consent record"),
			wantState: entity.SessionConsentRequested,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)
			ctx := context.Background()
			userID := uuid.New()

			f.consentRepo.EXPECT().FindLatestByUser(ctx, userID).Return(tt.latest, tt.latestErr)
			f.sessionRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.DiscoverySession")).Return(nil)

			session, err := f.svc.StartSession(ctx, userID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, session.State)
			assert.Equal(t, tt.wantCenter, session.Center)
			assert.Equal(t, "salt-1", session.Salt)
			assert.Equal(t, fixedNow, session.StartedAt)
		})
	}
}

func TestSessionService_StartSession_SaveFails(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("redis down"), "failed to save discovery session")

	f.consentRepo.EXPECT().FindLatestByUser(ctx, userID).Return(nil, repository.ErrConsentNotFound)
	f.sessionRepo.EXPECT().Save(ctx, mock.Anything).Return(storeErr)

	_, err := f.svc.StartSession(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestSessionService_GetSession(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.sessionRepo.EXPECT().Get(ctx, userID).Return(nil, repository.ErrSessionNotFound)

	_, err := f.svc.GetSession(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSessionService_RecordConsent_Grant(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	here := entity.GeoPoint{Lat: 19.076, Lng: 72.877}

	existing := entity.NewDiscoverySession(userID, "salt-0", fixedNow)
	require.NoError(t, existing.RequestConsent(fixedNow))

	f.sessionRepo.EXPECT().Get(ctx, userID).Return(existing, nil)
	f.consentRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(r *entity.ConsentRecord) bool {
			return r.UserID == userID && r.ConsentGiven && r.LocationAtConsent != nil && *r.LocationAtConsent == here
		})).
		Return(nil).Once()
	f.sessionRepo.EXPECT().Save(ctx, existing).Return(nil)
	f.publisher.EXPECT().
		PublishLocationEvent(ctx, mock.MatchedBy(func(e *service.LocationEvent) bool {
			return e.Type == service.EventLocationConsentRecorded && e.ConsentGiven != nil && *e.ConsentGiven
		})).
		Return(nil)

	session, err := f.svc.RecordConsent(ctx, userID, &usecase.RecordConsentInput{ConsentGiven: true, UserLocation: &here})
	require.NoError(t, err)
	assert.Equal(t, entity.SessionConsentGranted, session.State)
	assert.Equal(t, &here, session.Center)
	assert.False(t, session.UsingFallback)
	assert.Equal(t, "salt-0", session.Salt, "consent keeps the session salt")
}

func TestSessionService_RecordConsent_SkipUsesFallback(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.sessionRepo.EXPECT().Get(ctx, userID).Return(nil, repository.ErrSessionNotFound)
	f.consentRepo.EXPECT().Append(ctx, mock.Anything).Return(nil).Once()
	f.sessionRepo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishLocationEvent(ctx, mock.Anything).Return(nil)

	session, err := f.svc.RecordConsent(ctx, userID, &usecase.RecordConsentInput{ConsentGiven: false})
	require.NoError(t, err)

	fallback := config.DefaultDiscoveryConfig().Fallback
	assert.Equal(t, entity.SessionConsentSkipped, session.State)
	assert.Equal(t, &entity.GeoPoint{Lat: fallback.Lat, Lng: fallback.Lng}, session.Center)
	assert.True(t, session.UsingFallback)
}

func TestSessionService_RecordConsent_AuditFailureIsNotPropagated(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	here := entity.GeoPoint{Lat: 19.076, Lng: 72.877}
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to append consent record")

	f.sessionRepo.EXPECT().Get(ctx, userID).Return(nil, repository.ErrSessionNotFound)
	f.consentRepo.EXPECT().Append(ctx, mock.Anything).Return(storeErr).Once()
	f.sessionRepo.EXPECT().Save(ctx, mock.Anything).Return(storeErr)
	f.publisher.EXPECT().PublishLocationEvent(ctx, mock.Anything).Return(nil)

	session, err := f.svc.RecordConsent(ctx, userID, &usecase.RecordConsentInput{ConsentGiven: true, UserLocation: &here})
	require.NoError(t, err)
	assert.Equal(t, entity.SessionConsentGranted, session.State)
}

func TestSessionService_RecordConsent_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.RecordConsentInput
	}{
		{name: "nil body", input: nil},
		{name: "grant without location", input: &usecase.RecordConsentInput{ConsentGiven: true}},
		{name: "bad longitude", input: &usecase.RecordConsentInput{ConsentGiven: true, UserLocation: &entity.GeoPoint{Lat: 0, Lng: 200}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)

			_, err := f.svc.RecordConsent(context.Background(), uuid.New(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}
}
