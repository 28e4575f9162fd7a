// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// CreateAddress persists a new address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDefaultAddressConflict
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByUser retrieves all addresses of a user, default first.
func (repo *addressRepository) FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC").
		Order("created_at ASC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// FindDefaultAddressByUser retrieves the default address of a user.
func (repo *addressRepository) FindDefaultAddressByUser(ctx context.Context, userID uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_default = ?", userID, true).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find default address by user")
	}

	return toAddressDomain(&addressM), nil
}

// UpdateAddress updates an existing address record.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(addressM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDefaultAddressConflict
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// ClearDefaultAddress unsets the default flag on every address of a user.
func (repo *addressRepository) ClearDefaultAddress(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear default address")
	}

	return nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// CountAddressesByUser returns the number of addresses a user has saved.
func (repo *addressRepository) CountAddressesByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count addresses by user")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	address := &entity.Address{
		ID:          data.ID,
		UserID:      data.UserID,
		Label:       data.Label,
		FullAddress: data.FullAddress,
		City:        data.City,
		Area:        data.Area,
		Building:    data.Building,
		Floor:       data.Floor,
		Landmark:    data.Landmark,
		Notes:       data.Notes,
		IsDefault:   data.IsDefault,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		address.Location = &entity.GeoPoint{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}

	return address
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	addressM := &model.AddressModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Label:       data.Label,
		FullAddress: data.FullAddress,
		City:        data.City,
		Area:        data.Area,
		Building:    data.Building,
		Floor:       data.Floor,
		Landmark:    data.Landmark,
		Notes:       data.Notes,
		IsDefault:   data.IsDefault,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Location != nil {
		lat, lng := data.Location.Latitude, data.Location.Longitude
		addressM.Latitude = &lat
		addressM.Longitude = &lng
	}

	return addressM
}
