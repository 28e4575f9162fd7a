package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/entity"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported flags:
// -seed-zone: store the configured default zone as the active delivery zone
func main() {
	seedZone := flag.Bool("seed-zone", false, "Persist the configured default delivery zone")
	flag.Parse()

	_ = godotenv.Load()

	var db *gorm.DB
	var cfg *config.Config
	var logger *slog.Logger

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &cfg, &logger),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err := migrate(ctx, db, logger)
	if err == nil && *seedZone {
		err = seedDefaultZone(ctx, db, cfg, logger)
	}

	if stopErr := app.Stop(ctx); stopErr != nil && err == nil {
		err = stopErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	db = db.WithContext(ctx)

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return errors.Wrap(err, "create uuid-ossp extension")
	}

	if err := db.AutoMigrate(
		&model.AddressModel{},
		&model.DeliveryZoneModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
	); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	// At most one default address per customer.
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_addresses_one_default
		ON addresses (user_id) WHERE is_default`).Error; err != nil {
		return errors.Wrap(err, "create default address index")
	}

	logger.Info("Database schema is up to date")

	return nil
}

func seedDefaultZone(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	zone := cfg.Delivery
	rec := &entity.DeliveryZoneRecord{
		CenterLatitude:   zone.CenterLatitude,
		CenterLongitude:  zone.CenterLongitude,
		DeliveryRadiusKm: zone.RadiusKm,
		IsActive:         true,
	}
	if !rec.Zone().IsUsable() {
		return errors.Errorf("configured delivery zone is not usable: %+v", *zone)
	}

	if err := postgres.NewDeliveryZoneRepository(db).SaveZone(ctx, rec); err != nil {
		return errors.Wrap(err, "seed delivery zone")
	}

	logger.Info("Seeded delivery zone",
		slog.Float64("latitude", rec.CenterLatitude),
		slog.Float64("longitude", rec.CenterLongitude),
		slog.Float64("radiusKm", rec.DeliveryRadiusKm),
	)

	return nil
}
