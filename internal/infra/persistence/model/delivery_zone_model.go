package model

import "time"

// DeliveryZoneModel is the GORM-specific struct for the 'delivery_zones' table.
type DeliveryZoneModel struct {
	ID               int64   `gorm:"primaryKey;autoIncrement"`
	CenterLatitude   float64 `gorm:"type:decimal(10,8);not null"`
	CenterLongitude  float64 `gorm:"type:decimal(11,8);not null"`
	DeliveryRadiusKm float64 `gorm:"type:decimal(8,3);not null"`
	IsActive         bool    `gorm:"not null;default:true;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryZoneModel) TableName() string {
	return "delivery_zones"
}
