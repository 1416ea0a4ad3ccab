// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"editorradar/config"
	deliverycontext "editorradar/internal/delivery/context"
	"editorradar/internal/domain/entity"
	domainerrors "editorradar/internal/domain/errors"
	"editorradar/internal/domain/geo"
	"editorradar/internal/domain/repository"
	"editorradar/internal/domain/service"
	"editorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
	consentRepo repository.ConsentRepository
	publisher   service.EventPublisher
	discovery   *config.DiscoveryConfig
	logger      *slog.Logger
	now         func() time.Time
	newSalt     func() string
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	consentRepo repository.ConsentRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo: sessionRepo,
		consentRepo: consentRepo,
		publisher:   publisher,
		discovery:   cfg.Discovery.WithDefaults(),
		logger:      logger,
		now:         time.Now,
		newSalt:     uuid.NewString,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartSession opens a fresh session with a new salt
func (srv *sessionService) StartSession(ctx context.Context, userID uuid.UUID) (*entity.DiscoverySession, error) {
	now := srv.now()
	session := entity.NewDiscoverySession(userID, srv.sessionSalt(), now)

	latest, err := srv.consentRepo.FindLatestByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrConsentNotFound) {
		// Asking again is always safe; the prompt simply reappears.
		srv.log(ctx).Warn("Failed to load consent history, requesting consent", slog.Any("error", err))
		latest = nil
	}

	if latest != nil && latest.ConsentGiven {
		if err := session.ResumeWithConsent(now); err != nil {
			return nil, errors.WithStack(err)
		}
		if latest.LocationAtConsent != nil {
			center := *latest.LocationAtConsent
			session.Center = &center
		}
	} else if err := session.RequestConsent(now); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Discovery session started",
		slog.String("user_id", userID.String()),
		slog.String("state", string(session.State)),
	)

	return session, nil
}

// GetSession returns the seeker's live session
func (srv *sessionService) GetSession(ctx context.Context, userID uuid.UUID) (*entity.DiscoverySession, error) {
	session, err := srv.sessionRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("no active discovery session")
		}

		return nil, err
	}

	return session, nil
}

// RecordConsent appends the audit record and moves the session to granted or skipped.
// Neither the audit append nor the session save can fail the request once the input is valid.
func (srv *sessionService) RecordConsent(ctx context.Context, userID uuid.UUID, input *usecase.RecordConsentInput) (*entity.DiscoverySession, error) {
	if err := validateConsentInput(input); err != nil {
		return nil, err
	}

	now := srv.now()
	session, err := srv.sessionRepo.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrSessionNotFound) {
			srv.log(ctx).Warn("Failed to load discovery session, starting a new one", slog.Any("error", err))
		}
		session = entity.NewDiscoverySession(userID, srv.sessionSalt(), now)
	}

	if err := session.RequestConsent(now); err != nil {
		return nil, errors.WithStack(err)
	}
	if input.ConsentGiven {
		err = session.Grant(*input.UserLocation, now)
	} else {
		fallback := srv.discovery.Fallback
		err = session.Skip(entity.GeoPoint{Lat: fallback.Lat, Lng: fallback.Lng}, now)
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	record := &entity.ConsentRecord{
		ID:                uuid.New(),
		UserID:            userID,
		ConsentGiven:      input.ConsentGiven,
		Timestamp:         now,
		LocationAtConsent: input.UserLocation,
	}
	if err := srv.consentRepo.Append(ctx, record); err != nil {
		srv.log(ctx).Error("Failed to append consent record",
			slog.String("user_id", userID.String()),
			slog.Bool("consent_given", input.ConsentGiven),
			slog.Any("error", err),
		)
	}

	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to save discovery session after consent",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}

	given := input.ConsentGiven
	publishLocationEvent(ctx, srv.publisher, srv.log(ctx), &service.LocationEvent{
		Type:         service.EventLocationConsentRecorded,
		SubjectID:    userID.String(),
		ConsentGiven: &given,
	}, now)

	return session, nil
}

func (srv *sessionService) sessionSalt() string {
	if !srv.discovery.Session.SaltPerSession {
		return ""
	}

	return srv.newSalt()
}

func validateConsentInput(input *usecase.RecordConsentInput) error {
	if input == nil {
		return domainerrors.ErrInvalidInput.WithDetails("consent body is required")
	}
	if input.ConsentGiven && input.UserLocation == nil {
		return domainerrors.ErrInvalidInput.WithDetails("userLocation is required when consent is given")
	}
	if input.UserLocation != nil {
		if err := geo.ValidatePoint(*input.UserLocation); err != nil {
			return domainerrors.ErrInvalidInput.WithDetails(err.Error())
		}
	}

	return nil
}
