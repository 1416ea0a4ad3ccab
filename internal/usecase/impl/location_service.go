package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

// locationService implements the LocationUsecase interface.
type locationService struct {
	txManager    repository.TransactionManager
	locationRepo repository.EditorLocationRepository
	geocoder     service.Geocoder
	publisher    service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// NewLocationService creates a new location settings service instance
func NewLocationService(
	txManager repository.TransactionManager,
	locationRepo repository.EditorLocationRepository,
	geocoder service.Geocoder,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		txManager:    txManager,
		locationRepo: locationRepo,
		geocoder:     geocoder,
		publisher:    publisher,
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetSettings returns the editor's own location record
func (srv *locationService) GetSettings(ctx context.Context, editorID uuid.UUID) (*entity.EditorLocation, error) {
	location, err := srv.locationRepo.FindByEditorID(ctx, editorID)
	if err != nil {
		if errors.Is(err, repository.ErrEditorLocationNotFound) {
			return nil, domainerrors.ErrEditorLocationNotFound
		}

		return nil, err
	}

	return location, nil
}

// UpdateSettings applies a partial update, creating the record on the first save with coordinates
func (srv *locationService) UpdateSettings(ctx context.Context, editorID uuid.UUID, input *usecase.UpdateSettingsInput) (*entity.EditorLocation, error) {
	if err := validateSettingsInput(input); err != nil {
		return nil, err
	}

	place := srv.resolvePlace(ctx, input)

	var (
		saved   *entity.EditorLocation
		created bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locationRepo := repoFactory.NewEditorLocationRepository()

		current, err := locationRepo.FindByEditorID(ctx, editorID)
		switch {
		case errors.Is(err, repository.ErrEditorLocationNotFound):
			if input.Coordinates == nil {
				return domainerrors.ErrEditorLocationNotFound.WithDetails("coordinates are required to create a location")
			}
			created = true
			current = &entity.EditorLocation{
				EditorID: editorID,
				Visibility: entity.Visibility{
					Enabled: true,
					Level:   entity.VisibilityCity,
				},
			}
		case err != nil:
			return err
		}

		moved := applySettings(current, input, place)
		if current.CountryCode == "" && (created || moved || input.CountryCode != nil) {
			return domainerrors.ErrPlaceUnresolved
		}

		if err := locationRepo.Upsert(ctx, current); err != nil {
			return err
		}
		saved = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Editor location settings updated",
		slog.String("editor_id", editorID.String()),
		slog.Bool("created", created),
		slog.Bool("visibility_enabled", saved.Visibility.Enabled),
		slog.String("visibility_level", string(saved.Visibility.Level)),
	)

	enabled := saved.Visibility.Enabled
	publishLocationEvent(ctx, srv.publisher, srv.log(ctx), &service.LocationEvent{
		Type:              service.EventLocationSettingsUpdated,
		SubjectID:         editorID.String(),
		VisibilityEnabled: &enabled,
		VisibilityLevel:   string(saved.Visibility.Level),
		City:              saved.City,
		Country:           saved.Country,
		CountryCode:       saved.CountryCode,
		Created:           created,
	}, srv.now())

	return saved, nil
}

// resolvePlace reverse-geocodes new coordinates when some place field was left blank.
// A geocoder failure leaves only the manual fields.
func (srv *locationService) resolvePlace(ctx context.Context, input *usecase.UpdateSettingsInput) *entity.Place {
	if input.Coordinates == nil || srv.geocoder == nil {
		return nil
	}
	if isSet(input.City) && isSet(input.State) && isSet(input.Country) && isSet(input.CountryCode) {
		return nil
	}

	place, err := srv.geocoder.ReverseGeocode(ctx, *input.Coordinates)
	if err != nil {
		srv.log(ctx).Warn("Reverse geocoding failed, using manual place fields only", slog.Any("error", err))

		return nil
	}

	return place
}

func validateSettingsInput(input *usecase.UpdateSettingsInput) error {
	if input == nil {
		return domainerrors.ErrInvalidInput.WithDetails("settings body is required")
	}
	if input.Coordinates != nil {
		if err := geo.ValidatePoint(*input.Coordinates); err != nil {
			return domainerrors.ErrInvalidInput.WithDetails(err.Error())
		}
	}
	if isSet(input.CountryCode) && entity.NormalizeCountryCode(*input.CountryCode) == "" {
		return domainerrors.ErrInvalidInput.WithDetails("country code must be an ISO 3166-1 alpha-2 code")
	}
	if input.Visibility != nil && input.Visibility.Level != nil && !input.Visibility.Level.IsValid() {
		return domainerrors.ErrInvalidInput.WithDetails("visibility level must be one of city, region, country")
	}

	return nil
}

// applySettings merges input over the record and reports whether the coordinates changed.
// Explicit fields win over geocoded ones. Stored place fields do not survive a move.
func applySettings(location *entity.EditorLocation, input *usecase.UpdateSettingsInput, place *entity.Place) bool {
	moved := input.Coordinates != nil && *input.Coordinates != location.Location
	if moved {
		location.Location = *input.Coordinates
		location.City, location.State, location.Country, location.CountryCode = "", "", "", ""
	}

	if place == nil {
		place = &entity.Place{}
	}
	location.City = pick(input.City, place.City, location.City)
	location.State = pick(input.State, place.State, location.State)
	location.Country = pick(input.Country, place.Country, location.Country)
	location.CountryCode = entity.NormalizeCountryCode(pick(input.CountryCode, place.CountryCode, location.CountryCode))

	if v := input.Visibility; v != nil {
		if v.Enabled != nil {
			location.Visibility.Enabled = *v.Enabled
		}
		if v.Level != nil {
			location.Visibility.Level = *v.Level
		}
	}

	return moved
}

// pick prefers a non-blank explicit value, then the geocoded one. An explicit blank clears the field.
func pick(explicit *string, resolved, current string) string {
	if isSet(explicit) {
		return strings.TrimSpace(*explicit)
	}
	if resolved != "" {
		return resolved
	}
	if explicit != nil {
		return ""
	}

	return current
}

func isSet(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
