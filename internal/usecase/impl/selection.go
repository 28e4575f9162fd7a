package impl

import (
	"context"

	"storefront/internal/domain/eligibility"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// applySelection makes address the session's delivery target and caches its
// verdict. A nil address clears the selection. Either way the generation
// moves on, so pending acquisitions are discarded.
func applySelection(session *entity.DeliverySession, address *entity.Address, zone entity.DeliveryZone) {
	if address == nil {
		session.Select(nil)

		return
	}

	id := address.ID
	session.Select(&id)
	session.ApplyEvaluation(eligibility.EvaluateAddress(address, zone))
}

// currentVerdict evaluates address against the active zone. The session's
// cached verdict is not trusted here: the zone may have changed since it was
// computed.
func currentVerdict(address *entity.Address, zone entity.DeliveryZone) entity.Evaluation {
	return eligibility.EvaluateAddress(address, zone)
}

func buildStatus(session *entity.DeliverySession, address *entity.Address, zone entity.DeliveryZone) *usecase.EligibilityStatus {
	status := &usecase.EligibilityStatus{
		Verdict:    entity.VerdictUnknown,
		Generation: session.Generation,
		LastFix:    session.LastFix,
		Zone:       zone,
	}
	if address == nil {
		return status
	}

	eval := currentVerdict(address, zone)
	status.SelectedAddress = address
	status.Verdict = eval.Verdict
	status.DistanceKm = eval.DistanceKm
	status.CheckoutAllowed = eligibility.CheckoutGate(address, eval.Verdict) == nil

	return status
}

// findOwnedAddress loads an address and checks it belongs to userID.
func findOwnedAddress(ctx context.Context, repo repository.AddressRepository, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := repo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address lookup")
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	if address.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "address belongs to another user")
	}

	return address, nil
}
