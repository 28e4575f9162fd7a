package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders together with their items.
type OrderRepository interface {
	// CreateOrder inserts order and all of its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByUser lists a user's orders newest first, with items.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
