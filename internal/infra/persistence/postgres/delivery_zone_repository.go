package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deliveryZoneRepository implements the repository.DeliveryZoneRepository interface.
type deliveryZoneRepository struct {
	db *gorm.DB
}

// NewDeliveryZoneRepository is the constructor for deliveryZoneRepository.
func NewDeliveryZoneRepository(db *gorm.DB) repository.DeliveryZoneRepository {
	return &deliveryZoneRepository{db: db}
}

// FindActiveZone returns the most recently updated active zone record.
func (repo *deliveryZoneRepository) FindActiveZone(ctx context.Context) (*entity.DeliveryZoneRecord, error) {
	var zoneM model.DeliveryZoneModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&zoneM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrZoneConfigMissing
		}

		return nil, errors.Wrap(err, "failed to find active delivery zone")
	}

	return toDeliveryZoneDomain(&zoneM), nil
}

// SaveZone stores rec as the only active zone.
func (repo *deliveryZoneRepository) SaveZone(ctx context.Context, rec *entity.DeliveryZoneRecord) error {
	zoneM := fromDeliveryZoneDomain(rec)
	zoneM.IsActive = true

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.DeliveryZoneModel{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		return tx.Create(zoneM).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save delivery zone")
	}

	rec.ID = zoneM.ID
	rec.IsActive = true
	rec.UpdatedAt = zoneM.UpdatedAt

	return nil
}

func toDeliveryZoneDomain(data *model.DeliveryZoneModel) *entity.DeliveryZoneRecord {
	return &entity.DeliveryZoneRecord{
		ID:               data.ID,
		CenterLatitude:   data.CenterLatitude,
		CenterLongitude:  data.CenterLongitude,
		DeliveryRadiusKm: data.DeliveryRadiusKm,
		IsActive:         data.IsActive,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromDeliveryZoneDomain(data *entity.DeliveryZoneRecord) *model.DeliveryZoneModel {
	return &model.DeliveryZoneModel{
		ID:               data.ID,
		CenterLatitude:   data.CenterLatitude,
		CenterLongitude:  data.CenterLongitude,
		DeliveryRadiusKm: data.DeliveryRadiusKm,
		IsActive:         data.IsActive,
	}
}
