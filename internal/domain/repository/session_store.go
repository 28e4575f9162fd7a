package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrSessionConflict is returned when a concurrent writer keeps winning an optimistic update.
var ErrSessionConflict = errors.New("delivery session update conflict")

// SessionStore keeps per-user delivery sessions.
type SessionStore interface {
	// Get returns the session for userID, or a fresh one when none is stored.
	Get(ctx context.Context, userID uuid.UUID) (*entity.DeliverySession, error)

	// Update applies fn to the session atomically and stores the result.
	// When fn returns an error nothing is stored and the error is returned.
	Update(ctx context.Context, userID uuid.UUID, fn func(session *entity.DeliverySession) error) (*entity.DeliverySession, error)

	// Delete forgets the session for userID.
	Delete(ctx context.Context, userID uuid.UUID) error
}
