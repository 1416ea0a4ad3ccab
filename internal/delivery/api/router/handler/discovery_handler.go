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
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

const (
	formatJSON    = "json"
	formatGeoJSON = "geojson"

	mimeGeoJSON = "application/geo+json"
)

// DiscoveryHandlerParams holds dependencies for DiscoveryHandler, injected by Fx.
type DiscoveryHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// DiscoveryHandler serves the seeker's nearby search.
type DiscoveryHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler
func NewDiscoveryHandler(params DiscoveryHandlerParams) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: params.DiscoveryUC,
		logger:      params.Logger,
	}
}

// NearbyQuery holds the raw query string of GET /nearby.
type NearbyQuery struct {
	Latitude     *float64 `query:"lat" validate:"omitempty,min=-90,max=90"`
	Longitude    *float64 `query:"lng" validate:"omitempty,min=-180,max=180"`
	RadiusKm     *float64 `query:"radius" validate:"omitempty,gt=0"`
	MinRating    float64  `query:"minRating" validate:"gte=0,lte=5"`
	Skills       string   `query:"skills"`
	Availability string   `query:"availability" validate:"omitempty,oneof=any available true false"`
	SortBy       string   `query:"sortBy" validate:"sort_by"`
	Limit        int      `query:"limit" validate:"gte=0"`
	CountryCode  string   `query:"country" validate:"omitempty,iso3166_1_alpha2"`
	Format       string   `query:"format" validate:"omitempty,oneof=json geojson"`
}

// SearchNearby handles GET /api/v1/nearby
func (h *DiscoveryHandler) SearchNearby(c echo.Context) error {
	seekerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req NearbyQuery
	if err := bindNearbyQuery(c, &req); err != nil {
		return response.BindingError(c, domainerrors.ErrInvalidQuery.ErrorCode(), "Invalid search query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrInvalidQuery.ErrorCode(), "Invalid search query", err.Error())
	}

	out, err := h.discoveryUC.SearchNearby(c.Request().Context(), seekerID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if req.Format == formatGeoJSON {
		return writeGeoJSON(c, out)
	}

	return response.Success(c, http.StatusOK, out)
}

// bindNearbyQuery binds lat/lng and radius only when present so "absent" stays distinguishable from zero.
func bindNearbyQuery(c echo.Context, req *NearbyQuery) error {
	var lat, lng, radius float64
	err := echo.QueryParamsBinder(c).
		Float64("lat", &lat).
		Float64("lng", &lng).
		Float64("radius", &radius).
		Float64("minRating", &req.MinRating).
		String("skills", &req.Skills).
		String("availability", &req.Availability).
		String("sortBy", &req.SortBy).
		Int("limit", &req.Limit).
		String("country", &req.CountryCode).
		String("format", &req.Format).
		BindError()
	if err != nil {
		return err
	}

	if c.QueryParams().Has("lat") {
		req.Latitude = &lat
	}
	if c.QueryParams().Has("lng") {
		req.Longitude = &lng
	}
	if c.QueryParams().Has("radius") {
		req.RadiusKm = &radius
	}
	req.CountryCode = strings.ToUpper(strings.TrimSpace(req.CountryCode))

	return nil
}

func (q *NearbyQuery) toInput() *usecase.SearchNearbyInput {
	return &usecase.SearchNearbyInput{
		Latitude:      q.Latitude,
		Longitude:     q.Longitude,
		RadiusKm:      q.RadiusKm,
		MinRating:     q.MinRating,
		Skills:        splitSkills(q.Skills),
		AvailableOnly: q.Availability == "available" || q.Availability == "true",
		SortBy:        entity.SortBy(q.SortBy),
		Limit:         q.Limit,
		CountryCode:   q.CountryCode,
	}
}

// splitSkills turns "color grading, motion graphics" into trimmed, non-empty entries.
func splitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var skills []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	return skills
}

// writeGeoJSON renders display positions as a FeatureCollection. True locations are never included.
func writeGeoJSON(c echo.Context, out *usecase.SearchNearbyOutput) error {
	fc := geojson.NewFeatureCollection()
	for _, r := range out.Editors {
		f := geojson.NewFeature(r.DisplayPosition.Orb())
		f.ID = r.EditorID.String()
		f.Properties = geojson.Properties{
			"editor_id":    r.EditorID.String(),
			"display_name": r.Profile.DisplayName,
			"avatar_url":   r.Profile.AvatarURL,
			"rating":       r.Profile.Rating,
			"review_count": r.Profile.ReviewCount,
			"hourly_rate":  r.Profile.HourlyRate,
			"skills":       r.Profile.Skills,
			"available":    r.Profile.Available,
			"distance_km":  r.DistanceKm,
		}
		fc.Append(f)
	}
	fc.ExtraMembers = geojson.Properties{
		"count":          out.Count,
		"radius_km":      out.RadiusKm,
		"using_fallback": out.UsingFallback,
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		return response.InternalServerError(c, "INTERNAL_ERROR", "Failed to encode results")
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}
