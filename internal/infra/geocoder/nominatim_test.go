package geocoder

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"editorradar/config"
	"editorradar/internal/domain/entity"
	"editorradar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNominatimGeocoder_ReverseGeocode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		want    *entity.Place
		wantErr error
	}{
		{
			name:   "city",
			status: http.StatusOK,
			body:   `{"address":{"city":"Mumbai","state":"Maharashtra","country":"India","country_code":"in"}}`,
			want:   &entity.Place{City: "Mumbai", State: "Maharashtra", Country: "India", CountryCode: "IN"},
		},
		{
			name:   "town falls back",
			status: http.StatusOK,
			body:   `{"address":{"town":"Lonavala","state":"Maharashtra","country":"India","country_code":"in"}}`,
			want:   &entity.Place{City: "Lonavala", State: "Maharashtra", Country: "India", CountryCode: "IN"},
		},
		{
			name:   "localized name keeps the code",
			status: http.StatusOK,
			body:   `{"address":{"city":"मुंबई","state":"महाराष्ट्र","country":"भारत","country_code":"in"}}`,
			want:   &entity.Place{City: "मुंबई", State: "महाराष्ट्र", Country: "भारत", CountryCode: "IN"},
		},
		{
			name:   "missing code",
			status: http.StatusOK,
			body:   `{"address":{"city":"Mumbai","country":"India"}}`,
			want:   &entity.Place{City: "Mumbai", Country: "India"},
		},
		{
			name:    "ocean",
			status:  http.StatusOK,
			body:    `{"error":"Unable to geocode"}`,
			wantErr: service.ErrGeocoderUnavailable,
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			body:    `{}`,
			wantErr: service.ErrGeocoderUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/reverse", r.URL.Path)
				// Coordinates are coarsened before leaving the service.
				assert.Equal(t, "19.08", r.URL.Query().Get("lat"))
				assert.Equal(t, "72.88", r.URL.Query().Get("lon"))
				assert.Equal(t, "en", r.URL.Query().Get("accept-language"))
				assert.Equal(t, "editorradar-test", r.Header.Get("User-Agent"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			g := NewNominatimGeocoder(NominatimOptions{
				BaseURL:   srv.URL + "/",
				UserAgent: "editorradar-test",
				Language:  "en",
			}, discardLogger())

			got, err := g.ReverseGeocode(context.Background(), entity.GeoPoint{Lat: 19.076, Lng: 72.877})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewGeocoder(t *testing.T) {
	t.Parallel()

	g, err := NewGeocoder(Params{Config: &config.Config{}, Logger: discardLogger()})
	require.NoError(t, err)
	_, err = g.ReverseGeocode(context.Background(), entity.GeoPoint{})
	assert.ErrorIs(t, err, service.ErrGeocoderUnavailable)

	_, err = NewGeocoder(Params{
		Config: &config.Config{Geocoder: &config.GeocoderConfig{Provider: "mapbox"}},
		Logger: discardLogger(),
	})
	assert.Error(t, err)
}
