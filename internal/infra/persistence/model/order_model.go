package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_on_user"`
	Status        string    `gorm:"type:varchar(32);not null;default:'pending'"`
	PaymentMethod string    `gorm:"type:varchar(32);not null"`
	Currency      string    `gorm:"type:varchar(8);not null"`
	Subtotal      int64     `gorm:"not null"`
	DeliveryFee   int64     `gorm:"not null"`
	TotalAmount   int64     `gorm:"not null"`
	Notes         string    `gorm:"type:text"`
	// AddressDetails is a JSON snapshot of the delivery address at order time.
	AddressDetails datatypes.JSON    `gorm:"type:jsonb;not null"`
	Items          []*OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time         `gorm:"index:idx_orders_on_user"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Quantity    int       `gorm:"not null"`
	UnitPrice   int64     `gorm:"not null"`
	TotalPrice  int64     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
