// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrDefaultAddressConflict is returned when a second default address would be stored for the same user.
	ErrDefaultAddressConflict = errors.New("user already has a default address")
)

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// CreateAddress persists a new address.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByUser retrieves all addresses of a user, default first, then oldest first.
	FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// FindDefaultAddressByUser retrieves the default address of a user.
	// Returns ErrAddressNotFound if the user has none.
	FindDefaultAddressByUser(ctx context.Context, userID uuid.UUID) (*entity.Address, error)

	// UpdateAddress updates an existing address record.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// ClearDefaultAddress unsets the default flag on every address of a user.
	ClearDefaultAddress(ctx context.Context, userID uuid.UUID) error

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id uuid.UUID) error

	// CountAddressesByUser returns the number of addresses a user has saved.
	CountAddressesByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
