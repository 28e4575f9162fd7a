package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationCheck is the outcome of capturing the customer's current location.
type LocationCheck struct {
	Point      entity.GeoPoint   `json:"point"`
	AccuracyM  float64           `json:"accuracy_m,omitempty"`
	Evaluation entity.Evaluation `json:"evaluation"`
	// Applied is false when the selection changed while the fix was pending;
	// the fix was then not stored in the session.
	Applied bool `json:"applied"`
	// Warning is the advisory "outside delivery area" notice. It never blocks.
	Warning bool `json:"warning"`
}

// LocationReport is a position, or a failure, acquired by the client device.
type LocationReport struct {
	Latitude  *float64
	Longitude *float64
	AccuracyM float64
	Timestamp time.Time
	// ErrorCode is the platform error code when the device failed to get a fix.
	ErrorCode int
	Message   string
	// Generation is the session generation the device observed when it issued
	// the request. Zero means unknown and skips the staleness check.
	Generation uint64
}

// EligibilityStatus is the delivery state of the customer's session.
type EligibilityStatus struct {
	SelectedAddress *entity.Address     `json:"selected_address,omitempty"`
	Verdict         entity.Verdict      `json:"verdict"`
	DistanceKm      *float64            `json:"distance_km,omitempty"`
	Generation      uint64              `json:"generation"`
	LastFix         *entity.LocationFix `json:"last_fix,omitempty"`
	Zone            entity.DeliveryZone `json:"zone"`
	// CheckoutAllowed mirrors the checkout gate for the current selection.
	CheckoutAllowed bool `json:"checkout_allowed"`
}

// EligibilityUsecase answers "can we deliver there?" for points and sessions.
type EligibilityUsecase interface {
	// EvaluatePoint classifies arbitrary coordinates against the active zone.
	EvaluatePoint(ctx context.Context, point entity.GeoPoint) (entity.Evaluation, error)
	// AcquireLocation captures the customer's current location through the
	// configured position source.
	AcquireLocation(ctx context.Context, userID uuid.UUID) (*LocationCheck, error)
	// ReportLocation applies a location acquired by the client device.
	ReportLocation(ctx context.Context, userID uuid.UUID, report *LocationReport) (*LocationCheck, error)
	// GetEligibility returns the session's selected address and verdict.
	GetEligibility(ctx context.Context, userID uuid.UUID) (*EligibilityStatus, error)
}
