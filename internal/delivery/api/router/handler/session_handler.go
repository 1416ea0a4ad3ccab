package handler

import (
	"log/slog"
	"net/http"

	"editorradar/internal/delivery/api/middleware"
	"editorradar/internal/delivery/api/response"
	"editorradar/internal/domain/entity"
	domainerrors "editorradar/internal/domain/errors"
	"editorradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler serves the discovery session and the consent prompt answer.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// GeoPointRequest is a coordinate in a request body.
type GeoPointRequest struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng *float64 `json:"lng" validate:"required,min=-180,max=180"`
}

func (p *GeoPointRequest) toEntity() *entity.GeoPoint {
	if p == nil {
		return nil
	}

	return &entity.GeoPoint{Lat: *p.Lat, Lng: *p.Lng}
}

// ConsentRequest is the body of POST /location/consent
type ConsentRequest struct {
	ConsentGiven *bool            `json:"consentGiven" validate:"required"`
	UserLocation *GeoPointRequest `json:"userLocation"`
}

// StartSession handles POST /api/v1/discovery/session
func (h *SessionHandler) StartSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	session, err := h.sessionUC.StartSession(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session)
}

// GetSession handles GET /api/v1/discovery/session
func (h *SessionHandler) GetSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	session, err := h.sessionUC.GetSession(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// RecordConsent handles POST /api/v1/location/consent. The answer is accepted even
// when the audit write fails.
func (h *SessionHandler) RecordConsent(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ConsentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid consent input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(), "Input validation failed", err.Error())
	}

	session, err := h.sessionUC.RecordConsent(c.Request().Context(), userID, &usecase.RecordConsentInput{
		ConsentGiven: *req.ConsentGiven,
		UserLocation: req.UserLocation.toEntity(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, session)
}
