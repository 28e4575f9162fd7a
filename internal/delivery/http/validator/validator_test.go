package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pointRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Label     string   `json:"label" validate:"omitempty,max=5"`
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	lat, lng, badLng := 33.9, 35.5, 181.0

	tests := []struct {
		name    string
		req     pointRequest
		wantErr string
	}{
		{name: "valid", req: pointRequest{Latitude: &lat, Longitude: &lng}},
		{name: "missing latitude", req: pointRequest{Longitude: &lng}, wantErr: "latitude is required"},
		{name: "longitude out of range", req: pointRequest{Latitude: &lat, Longitude: &badLng}, wantErr: "longitude must be a longitude between -180 and 180"},
		{name: "label too long", req: pointRequest{Latitude: &lat, Longitude: &lng, Label: "warehouse"}, wantErr: "label must be at most 5"},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(&tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
