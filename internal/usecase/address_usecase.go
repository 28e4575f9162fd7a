package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddAddressInput represents the input for saving a new delivery address.
type AddAddressInput struct {
	Label       string
	FullAddress string
	City        string
	Area        string
	Building    string
	Floor       string
	Landmark    string
	Notes       string
	IsDefault   bool
	Location    *entity.GeoPoint
	// UseCurrentLocation copies the session's last acquired fix onto the address.
	UseCurrentLocation bool
}

// UpdateAddressInput represents a partial update of an address.
type UpdateAddressInput struct {
	Label       *string
	FullAddress *string
	City        *string
	Area        *string
	Building    *string
	Floor       *string
	Landmark    *string
	Notes       *string
	Location    *entity.GeoPoint
	// ClearLocation removes the coordinates. It wins over Location.
	ClearLocation      bool
	UseCurrentLocation bool
}

// AddressResult is a saved address with its advisory delivery check.
type AddressResult struct {
	Address    *entity.Address   `json:"address"`
	Evaluation entity.Evaluation `json:"evaluation"`
	// Warning is set when the address lies outside the delivery area. The
	// address is saved regardless.
	Warning bool `json:"warning"`
}

// AddressBook is the customer's saved addresses and current selection.
type AddressBook struct {
	Addresses         []*entity.Address `json:"addresses"`
	SelectedAddressID *uuid.UUID        `json:"selected_address_id,omitempty"`
	Verdict           entity.Verdict    `json:"verdict"`
	DistanceKm        *float64          `json:"distance_km,omitempty"`
}

// AddressUsecase manages saved delivery addresses and the session selection.
type AddressUsecase interface {
	ListAddresses(ctx context.Context, userID uuid.UUID) (*AddressBook, error)
	AddAddress(ctx context.Context, userID uuid.UUID, input *AddAddressInput) (*AddressResult, error)
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *UpdateAddressInput) (*AddressResult, error)
	// DeleteAddress removes an address, promoting another one to default when needed.
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
	SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error)
	// SelectAddress makes the address the delivery target and evaluates it.
	SelectAddress(ctx context.Context, userID, addressID uuid.UUID) (*EligibilityStatus, error)
}
