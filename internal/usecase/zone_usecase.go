package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ZoneUsecase resolves the delivery zone the storefront serves.
type ZoneUsecase interface {
	// GetZone returns the active zone. It never fails: a missing or unusable
	// persisted record falls back to the configured default.
	GetZone(ctx context.Context) entity.DeliveryZone
	// UpdateZone persists a new zone and makes it active for this process.
	UpdateZone(ctx context.Context, input *UpdateZoneInput) (entity.DeliveryZone, error)
}

// UpdateZoneInput carries a replacement delivery zone.
type UpdateZoneInput struct {
	CenterLatitude   float64 `json:"center_latitude"`
	CenterLongitude  float64 `json:"center_longitude"`
	DeliveryRadiusKm float64 `json:"delivery_radius_km"`
}
