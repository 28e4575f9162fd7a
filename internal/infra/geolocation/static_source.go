package geolocation

import (
	"context"
	"time"

	"storefront/internal/domain/service"
)

// StaticSource always reports the same coordinates. Useful for kiosks and local development.
type StaticSource struct {
	coords service.Coordinates
	now    func() time.Time
}

// NewStaticSource returns a source fixed at latitude, longitude.
func NewStaticSource(latitude, longitude float64) *StaticSource {
	return &StaticSource{
		coords: service.Coordinates{Latitude: latitude, Longitude: longitude},
		now:    time.Now,
	}
}

func (s *StaticSource) GetCurrentPosition(_ context.Context, _ service.PositionOptions, onSuccess func(service.Position), _ func(*service.PositionError)) {
	onSuccess(service.Position{Coords: s.coords, Timestamp: s.now()})
}

// UnsupportedSource models a platform without location capability.
type UnsupportedSource struct{}

func (UnsupportedSource) GetCurrentPosition(_ context.Context, _ service.PositionOptions, _ func(service.Position), onError func(*service.PositionError)) {
	onError(&service.PositionError{
		Code:    service.PositionNotSupported,
		Message: "geolocation is not supported on this platform",
	})
}
