package geocoder

import (
	"context"
	"log/slog"

	"editorradar/config"
	"editorradar/internal/domain/constants"
	"editorradar/internal/domain/entity"
	"editorradar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopGeocoder is used when reverse geocoding is disabled
type noopGeocoder struct{}

func (noopGeocoder) ReverseGeocode(context.Context, entity.GeoPoint) (*entity.Place, error) {
	return nil, service.ErrGeocoderUnavailable
}

// Params holds dependencies for the Geocoder, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGeocoder creates a Geocoder based on configuration
func NewGeocoder(params Params) (service.Geocoder, error) {
	cfg := params.Config.Geocoder
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.GeocoderProviderNone {
		params.Logger.Info("Geocoder not configured, place fields must be entered manually")

		return noopGeocoder{}, nil
	}

	switch cfg.Provider {
	case constants.GeocoderProviderNominatim:
		params.Logger.Info("Using Nominatim geocoder", slog.String("base_url", cfg.BaseURL))

		return NewNominatimGeocoder(NominatimOptions{
			BaseURL:   cfg.BaseURL,
			UserAgent: cfg.UserAgent,
			Language:  cfg.Language,
			Timeout:   cfg.Timeout,
		}, params.Logger), nil

	default:
		return nil, errors.Errorf("unknown geocoder provider: %s", cfg.Provider)
	}
}

// Module provides the geocoder FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewGeocoder),
)
