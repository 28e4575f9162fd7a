package service

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// PositionErrorCode mirrors the platform location API error codes.
type PositionErrorCode int

const (
	PositionPermissionDenied PositionErrorCode = 1
	PositionUnavailable      PositionErrorCode = 2
	PositionTimeout          PositionErrorCode = 3
	// PositionNotSupported is raised when the platform has no location capability at all.
	PositionNotSupported PositionErrorCode = 4
)

// PositionOptions configures a single position request.
type PositionOptions struct {
	EnableHighAccuracy bool
	Timeout            time.Duration
	// MaximumAge is the oldest cached fix the caller accepts. Zero demands a fresh fix.
	MaximumAge time.Duration
}

// Coordinates is the coordinate part of a position fix.
type Coordinates struct {
	Latitude  float64
	Longitude float64
	// Accuracy is the radius of uncertainty in meters.
	Accuracy float64
}

// Position is a successful fix.
type Position struct {
	Coords    Coordinates
	Timestamp time.Time
}

// PositionError is a failed fix as reported by the platform.
type PositionError struct {
	Code    PositionErrorCode
	Message string
}

func (e *PositionError) Error() string {
	return e.Message
}

// PositionSource is the platform's callback style location API. An
// implementation must invoke exactly one of onSuccess or onError, at most
// once, possibly from another goroutine.
type PositionSource interface {
	GetCurrentPosition(ctx context.Context, opts PositionOptions, onSuccess func(Position), onError func(*PositionError))
}

// LocationAcquirer issues single position requests and validates fixes that
// were reported by a client device. Failures carry no platform detail beyond
// their classification and are already logged when returned.
type LocationAcquirer interface {
	// Locate requests one fix from the configured source.
	Locate(ctx context.Context) (*entity.LocationFix, error)
	// AcceptReport validates a fix the device acquired itself.
	AcceptReport(ctx context.Context, p Position) (*entity.LocationFix, error)
	// RejectReport classifies a failure the device reported.
	RejectReport(ctx context.Context, e *PositionError) error
}
