package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_addresses_on_user"`
	Label       string    `gorm:"type:varchar(100);not null;default:'Home'"`
	FullAddress string    `gorm:"type:text;not null"`
	City        string    `gorm:"type:varchar(120);not null"`
	Area        string    `gorm:"type:varchar(120)"`
	Building    string    `gorm:"type:varchar(120)"`
	Floor       string    `gorm:"type:varchar(20)"`
	Landmark    string    `gorm:"type:text"`
	Notes       string    `gorm:"type:text"`
	IsDefault   bool      `gorm:"not null;default:false"`
	// Latitude and Longitude are both NULL for addresses typed without device coordinates.
	Latitude  *float64 `gorm:"type:decimal(10,8)"`
	Longitude *float64 `gorm:"type:decimal(11,8)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
