package geolocation

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NewPositionSource selects the position source named by geolocation.provider.
func NewPositionSource(cfg *config.Config, logger *slog.Logger) (service.PositionSource, error) {
	geoCfg := cfg.Geolocation
	if geoCfg == nil {
		return UnsupportedSource{}, nil
	}

	switch geoCfg.Provider {
	case constants.GeolocationProviderIPAPI:
		if geoCfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for ipapi provider")
		}
		logger.Info("Using IP geolocation source", slog.String("endpoint", geoCfg.Endpoint))

		return NewIPAPISource(geoCfg.Endpoint, logger), nil

	case constants.GeolocationProviderStatic:
		logger.Info("Using static geolocation source",
			slog.Float64("latitude", geoCfg.StaticLatitude),
			slog.Float64("longitude", geoCfg.StaticLongitude),
		)

		return NewStaticSource(geoCfg.StaticLatitude, geoCfg.StaticLongitude), nil

	case constants.GeolocationProviderNone, "":
		logger.Info("Geolocation disabled, acquisitions will report unavailable")

		return UnsupportedSource{}, nil

	default:
		return nil, errors.Errorf("unknown geolocation provider: %s", geoCfg.Provider)
	}
}

// Module provides the geolocation FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPositionSource),
	fx.Provide(
		fx.Annotate(
			NewAcquirer,
			fx.As(new(service.LocationAcquirer)),
		),
	),
)
