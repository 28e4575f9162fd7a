package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrZoneConfigMissing is returned when no active delivery zone record is stored.
var ErrZoneConfigMissing = errors.New("delivery zone config missing")

// DeliveryZoneRepository reads the persisted delivery zone setting.
type DeliveryZoneRepository interface {
	// FindActiveZone returns the most recently updated active record or ErrZoneConfigMissing.
	FindActiveZone(ctx context.Context) (*entity.DeliveryZoneRecord, error)

	// SaveZone stores rec as the active zone and deactivates any previous one.
	SaveZone(ctx context.Context, rec *entity.DeliveryZoneRecord) error
}
