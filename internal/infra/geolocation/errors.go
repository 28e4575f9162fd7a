// Package geolocation turns the platform's callback based location API into
// a single awaitable acquisition that never fails past its boundary.
package geolocation

import (
	"fmt"

	"storefront/internal/domain/service"
)

// Kind classifies why an acquisition produced no fix.
type Kind string

const (
	// LocationUnavailable means the platform has no location capability.
	LocationUnavailable Kind = "location_unavailable"
	// LocationPermissionDenied means the user declined the location prompt.
	LocationPermissionDenied Kind = "location_permission_denied"
	// LocationTimeout means no fix arrived before the deadline.
	LocationTimeout Kind = "location_timeout"
	// LocationOtherFailure covers every other platform or caller side failure.
	LocationOtherFailure Kind = "location_other_failure"
)

// LocationError is the structured cause of a failed acquisition.
type LocationError struct {
	Kind  Kind
	Cause error
}

func (e *LocationError) Error() string {
	if e.Cause == nil {
		return string(e.Kind)
	}

	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *LocationError) Unwrap() error {
	return e.Cause
}

func newLocationError(kind Kind, cause error) *LocationError {
	return &LocationError{Kind: kind, Cause: cause}
}

// kindFromCode maps platform error codes onto the failure taxonomy.
func kindFromCode(code service.PositionErrorCode) Kind {
	switch code {
	case service.PositionPermissionDenied:
		return LocationPermissionDenied
	case service.PositionTimeout:
		return LocationTimeout
	case service.PositionNotSupported:
		return LocationUnavailable
	default:
		// POSITION_UNAVAILABLE is a platform failure on a device that does have the capability.
		return LocationOtherFailure
	}
}
