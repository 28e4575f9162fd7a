// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery address saved by a customer.
type Address struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the address.
	UserID      uuid.UUID `json:"user_id"`      // The customer who owns this address.
	Label       string    `json:"label"`        // A user-defined label, e.g., "Home", "Office".
	FullAddress string    `json:"full_address"` // The full, human-readable street address.
	City        string    `json:"city"`
	Area        string    `json:"area,omitempty"`
	Building    string    `json:"building,omitempty"`
	Floor       string    `json:"floor,omitempty"`
	Landmark    string    `json:"landmark,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	IsDefault   bool      `json:"is_default"`            // At most one address per user carries this flag.
	Location    *GeoPoint `json:"coordinates,omitempty"` // Nil when the address was typed without device coordinates.
	CreatedAt   time.Time `json:"created_at"`            // Timestamp of when this address was created.
	UpdatedAt   time.Time `json:"updated_at"`            // Timestamp of the last modification.
}

// HasLocation reports whether the address carries coordinates.
func (a *Address) HasLocation() bool {
	return a != nil && a.Location != nil
}

// Snapshot freezes the address fields that are copied onto an order.
func (a *Address) Snapshot() AddressSnapshot {
	return AddressSnapshot{
		AddressID:   a.ID,
		Label:       a.Label,
		FullAddress: a.FullAddress,
		City:        a.City,
		Area:        a.Area,
		Building:    a.Building,
		Floor:       a.Floor,
		Landmark:    a.Landmark,
		Notes:       a.Notes,
		Location:    a.Location,
	}
}

// AddressSnapshot is the address as it was when an order was placed.
type AddressSnapshot struct {
	AddressID   uuid.UUID `json:"address_id"`
	Label       string    `json:"label"`
	FullAddress string    `json:"full_address"`
	City        string    `json:"city"`
	Area        string    `json:"area,omitempty"`
	Building    string    `json:"building,omitempty"`
	Floor       string    `json:"floor,omitempty"`
	Landmark    string    `json:"landmark,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Location    *GeoPoint `json:"coordinates,omitempty"`
}
