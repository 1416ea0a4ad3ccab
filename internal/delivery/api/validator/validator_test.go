package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Level  string   `json:"level" validate:"omitempty,visibility_level"`
	SortBy string   `json:"sort_by" validate:"sort_by"`
	Lat    *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
}

func TestRequestValidator_Validate(t *testing.T) {
	t.Parallel()

	lat := 91.0
	okLat := 19.07

	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{name: "empty is valid", input: sample{}},
		{name: "known values", input: sample{Level: "region", SortBy: "price_low", Lat: &okLat}},
		{name: "unknown level", input: sample{Level: "street"}, wantErr: "Level: visibility_level"},
		{name: "unknown sort", input: sample{SortBy: "newest"}, wantErr: "SortBy: sort_by"},
		{name: "latitude out of range", input: sample{Lat: &lat}, wantErr: "Lat: max=90"},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(&tt.input)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.NotContains(t, err.Error(), "91")
		})
	}
}
