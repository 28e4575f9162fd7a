package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// PaymentMethodCashOnDelivery is the only supported payment method.
const PaymentMethodCashOnDelivery = "cash_on_delivery"

// Order is a placed customer order. Amounts are in the smallest currency unit.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Currency      string          `json:"currency"`
	Subtotal      int64           `json:"subtotal"`
	DeliveryFee   int64           `json:"delivery_fee"`
	Total         int64           `json:"total"`
	Notes         string          `json:"notes,omitempty"`
	Address       AddressSnapshot `json:"address"`
	Items         []*OrderItem    `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderItem is one cart line of an order.
type OrderItem struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
	TotalPrice  int64     `json:"total_price"`
}
