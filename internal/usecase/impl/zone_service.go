package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// zoneService implements the ZoneUsecase interface.
type zoneService struct {
	zoneRepo repository.DeliveryZoneRepository
	fallback entity.DeliveryZone
	logger   *slog.Logger

	mu     sync.RWMutex
	loaded bool
	zone   entity.DeliveryZone
}

// ZoneServiceParams holds dependencies for ZoneService, injected by Fx.
type ZoneServiceParams struct {
	fx.In

	ZoneRepo repository.DeliveryZoneRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewZoneService is the constructor for zoneService.
func NewZoneService(params ZoneServiceParams) usecase.ZoneUsecase {
	return &zoneService{
		zoneRepo: params.ZoneRepo,
		fallback: defaultZone(params.Config),
		logger:   params.Logger,
	}
}

func defaultZone(cfg *config.Config) entity.DeliveryZone {
	zone := entity.DeliveryZone{
		Center:   entity.GeoPoint{Latitude: config.DefaultZoneLatitude, Longitude: config.DefaultZoneLongitude},
		RadiusKm: config.DefaultZoneRadiusKm,
		Source:   entity.ZoneSourceDefault,
	}
	if cfg == nil || cfg.Delivery == nil {
		return zone
	}

	configured := entity.DeliveryZone{
		Center:   entity.GeoPoint{Latitude: cfg.Delivery.CenterLatitude, Longitude: cfg.Delivery.CenterLongitude},
		RadiusKm: cfg.Delivery.RadiusKm,
		Source:   entity.ZoneSourceDefault,
	}
	if !configured.IsUsable() {
		return zone
	}

	return configured
}

func (srv *zoneService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetZone returns the persisted zone, loading it on first use, or the default.
func (srv *zoneService) GetZone(ctx context.Context) entity.DeliveryZone {
	srv.mu.RLock()
	if srv.loaded {
		zone := srv.zone
		srv.mu.RUnlock()

		return zone
	}
	srv.mu.RUnlock()

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.loaded {
		return srv.zone
	}

	zone, ok := srv.load(ctx)
	if ok {
		srv.zone = zone
		srv.loaded = true
	}

	return zone
}

// load reads the persisted record. ok is false when the read failed and should be retried later.
func (srv *zoneService) load(ctx context.Context) (entity.DeliveryZone, bool) {
	if srv.zoneRepo == nil {
		return srv.fallback, true
	}

	record, err := srv.zoneRepo.FindActiveZone(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrZoneConfigMissing) {
			srv.log(ctx).Info("No delivery zone stored, using default",
				slog.Float64("radiusKm", srv.fallback.RadiusKm),
			)

			return srv.fallback, true
		}

		srv.log(ctx).Error("Failed to load delivery zone, using default", slog.Any("error", err))

		return srv.fallback, false
	}

	zone := record.Zone()
	if !zone.IsUsable() {
		srv.log(ctx).Warn("Stored delivery zone is unusable, using default",
			slog.Int64("zoneID", record.ID),
			slog.Float64("centerLatitude", record.CenterLatitude),
			slog.Float64("centerLongitude", record.CenterLongitude),
			slog.Float64("radiusKm", record.DeliveryRadiusKm),
		)

		return srv.fallback, true
	}

	return zone, true
}

// UpdateZone persists a new zone and makes it active immediately.
func (srv *zoneService) UpdateZone(ctx context.Context, input *usecase.UpdateZoneInput) (entity.DeliveryZone, error) {
	record := &entity.DeliveryZoneRecord{
		CenterLatitude:   input.CenterLatitude,
		CenterLongitude:  input.CenterLongitude,
		DeliveryRadiusKm: input.DeliveryRadiusKm,
	}

	zone := record.Zone()
	if !zone.Center.IsValid() {
		return entity.DeliveryZone{}, errors.Wrap(domainerrors.ErrInvalidCoordinates, "invalid delivery zone center")
	}
	if zone.RadiusKm <= 0 {
		return entity.DeliveryZone{}, errors.Wrap(domainerrors.ErrValidationFailed, "delivery radius must be positive")
	}

	if err := srv.zoneRepo.SaveZone(ctx, record); err != nil {
		return entity.DeliveryZone{}, errors.Wrap(err, "failed to save delivery zone")
	}

	srv.mu.Lock()
	srv.zone = zone
	srv.loaded = true
	srv.mu.Unlock()

	srv.log(ctx).Info("Delivery zone updated",
		slog.Int64("zoneID", record.ID),
		slog.Float64("radiusKm", zone.RadiusKm),
	)

	return zone, nil
}
