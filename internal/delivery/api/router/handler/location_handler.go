package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"editorradar/internal/delivery/api/middleware"
	"editorradar/internal/delivery/api/response"
	"editorradar/internal/domain/entity"
	domainerrors "editorradar/internal/domain/errors"
	"editorradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler serves the editor's own location settings
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// VisibilityRequest is the visibility part of a settings update
type VisibilityRequest struct {
	Enabled *bool   `json:"enabled,omitempty"`
	Level   *string `json:"level,omitempty" validate:"omitempty,visibility_level"`
}

// UpdateSettingsRequest is the body of PATCH /location/settings. Omitted fields keep their value.
type UpdateSettingsRequest struct {
	City        *string            `json:"city,omitempty" validate:"omitempty,max=100"`
	State       *string            `json:"state,omitempty" validate:"omitempty,max=100"`
	Country     *string            `json:"country,omitempty" validate:"omitempty,max=100"`
	CountryCode *string            `json:"country_code,omitempty" validate:"omitempty,iso3166_1_alpha2"`
	Visibility  *VisibilityRequest `json:"visibility,omitempty"`
	Coordinates *GeoPointRequest   `json:"coordinates,omitempty"`
}

func (r *UpdateSettingsRequest) toInput() *usecase.UpdateSettingsInput {
	input := &usecase.UpdateSettingsInput{
		City:        r.City,
		State:       r.State,
		Country:     r.Country,
		CountryCode: r.CountryCode,
		Coordinates: r.Coordinates.toEntity(),
	}
	if r.Visibility != nil {
		input.Visibility = &usecase.VisibilityInput{Enabled: r.Visibility.Enabled}
		if r.Visibility.Level != nil {
			level := entity.VisibilityLevel(*r.Visibility.Level)
			input.Visibility.Level = &level
		}
	}

	return input
}

// GetSettings handles GET /api/v1/location/settings
func (h *LocationHandler) GetSettings(c echo.Context) error {
	editorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	record, err := h.locationUC.GetSettings(c.Request().Context(), editorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

// UpdateSettings handles PATCH /api/v1/location/settings
func (h *LocationHandler) UpdateSettings(c echo.Context) error {
	editorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid location settings input")
	}

	if req.CountryCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.CountryCode))
		req.CountryCode = &code
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(), "Input validation failed", err.Error())
	}

	record, err := h.locationUC.UpdateSettings(c.Request().Context(), editorID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}
