package geocoder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"editorradar/internal/domain/entity"
	"editorradar/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultNominatimURL = "https://nominatim.openstreetmap.org"
	defaultUserAgent    = "editorradar/1.0"
	defaultTimeout      = 5 * time.Second
	// Zoom 10 resolves to city level.
	reverseZoom = "10"
	// Two decimals is about 1 km, finer than zoom 10 needs. The exact point never leaves the service.
	coordinatePrecision = 2
)

type nominatimAddress struct {
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
	County       string `json:"county"`
	State        string `json:"state"`
	Country      string `json:"country"`
	CountryCode  string `json:"country_code"`
}

type nominatimReverseResponse struct {
	Address nominatimAddress `json:"address"`
	Error   string           `json:"error"`
}

// nominatimGeocoder implements service.Geocoder against the Nominatim reverse API
type nominatimGeocoder struct {
	baseURL    string
	userAgent  string
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NominatimOptions configures the Nominatim client. Zero values take defaults.
type NominatimOptions struct {
	BaseURL   string
	UserAgent string
	Language  string
	Timeout   time.Duration
}

// NewNominatimGeocoder creates a reverse geocoder for the Nominatim API
func NewNominatimGeocoder(opts NominatimOptions, logger *slog.Logger) service.Geocoder {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultNominatimURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	return &nominatimGeocoder{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		userAgent:  opts.UserAgent,
		language:   opts.Language,
		httpClient: &http.Client{Timeout: opts.Timeout},
		logger:     logger,
	}
}

// ReverseGeocode resolves a point to its city, state and country
func (g *nominatimGeocoder) ReverseGeocode(ctx context.Context, point entity.GeoPoint) (*entity.Place, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(point.Lat, 'f', coordinatePrecision, 64))
	query.Set("lon", strconv.FormatFloat(point.Lng, 'f', coordinatePrecision, 64))
	query.Set("zoom", reverseZoom)
	query.Set("addressdetails", "1")
	if g.language != "" {
		query.Set("accept-language", g.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/reverse?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(service.ErrGeocoderUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(service.ErrGeocoderUnavailable, "nominatim returned status %d", resp.StatusCode)
	}

	var body nominatimReverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode nominatim response")
	}
	if body.Error != "" {
		return nil, errors.Wrap(service.ErrGeocoderUnavailable, body.Error)
	}

	return body.Address.toPlace(), nil
}

func (a nominatimAddress) toPlace() *entity.Place {
	city := firstNonEmpty(a.City, a.Town, a.Village, a.Municipality, a.County)

	// country_code is lower-case and independent of accept-language.
	return &entity.Place{
		City:        city,
		State:       a.State,
		Country:     a.Country,
		CountryCode: entity.NormalizeCountryCode(a.CountryCode),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
