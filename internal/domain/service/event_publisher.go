package service

import (
	"context"
	"time"
)

// OrderPlacedEvent is emitted after an order has been committed.
type OrderPlacedEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID       string    `json:"order_id"`
	UserID        string    `json:"user_id"`
	Total         int64     `json:"total"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"payment_method"`
	ItemCount     int       `json:"item_count"`
	City          string    `json:"city"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	PlacedAt      time.Time `json:"placed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order event for downstream fulfilment
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
