package eligibility

import (
	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

var (
	// ErrNoAddressSelected is returned by CheckoutGate when no address is active.
	ErrNoAddressSelected = errors.New("no delivery address selected")
	// ErrOutsideDeliveryArea is returned by CheckoutGate for a located address that is not eligible.
	ErrOutsideDeliveryArea = errors.New("selected address is outside the delivery area")
)

// IsWithinDeliveryZone reports whether point is inside zone. The boundary counts as inside.
func IsWithinDeliveryZone(point entity.GeoPoint, zone entity.DeliveryZone) bool {
	return DistanceKm(point, zone.Center) <= zone.RadiusKm
}

// Evaluate classifies point against zone. A nil point yields VerdictUnknown.
func Evaluate(point *entity.GeoPoint, zone entity.DeliveryZone) entity.Evaluation {
	if point == nil {
		return entity.Evaluation{Verdict: entity.VerdictUnknown}
	}

	distance := DistanceKm(*point, zone.Center)
	verdict := entity.VerdictIneligible
	if distance <= zone.RadiusKm {
		verdict = entity.VerdictEligible
	}

	return entity.Evaluation{Verdict: verdict, DistanceKm: &distance}
}

// EvaluateAddress classifies the coordinates of address, if it has any.
func EvaluateAddress(address *entity.Address, zone entity.DeliveryZone) entity.Evaluation {
	if !address.HasLocation() {
		return entity.Evaluation{Verdict: entity.VerdictUnknown}
	}

	return Evaluate(address.Location, zone)
}

// CheckoutGate allows checkout only when an address is selected and that
// address either has no coordinates or was found eligible.
func CheckoutGate(selected *entity.Address, verdict entity.Verdict) error {
	if selected == nil {
		return ErrNoAddressSelected
	}
	if selected.HasLocation() && verdict != entity.VerdictEligible {
		return ErrOutsideDeliveryArea
	}

	return nil
}

// IsOutsideWarning reports whether eval should raise the advisory
// "outside delivery area" notice. Unknown never warns.
func IsOutsideWarning(eval entity.Evaluation) bool {
	return eval.Verdict == entity.VerdictIneligible
}
