package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartItem is one line of the cart submitted at checkout.
type CartItem struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   int64
}

// PlaceOrderInput represents a checkout request.
type PlaceOrderInput struct {
	Items []CartItem
	Notes string
}

// OrderUsecase handles checkout and order history.
type OrderUsecase interface {
	// PlaceOrder checks out the cart to the selected address. A located
	// address outside the delivery area is rejected and nothing is stored.
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
	// OrderTrackingQR renders a PNG QR code that links to the order.
	OrderTrackingQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)
}
