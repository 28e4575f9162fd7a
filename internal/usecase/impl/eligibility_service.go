package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/eligibility"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var errStaleAcquisition = errors.New("selection changed while the location request was pending")

// eligibilityService implements the EligibilityUsecase interface.
type eligibilityService struct {
	zoneUC      usecase.ZoneUsecase
	acquirer    service.LocationAcquirer
	sessions    repository.SessionStore
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// EligibilityServiceParams holds dependencies for EligibilityService, injected by Fx.
type EligibilityServiceParams struct {
	fx.In

	ZoneUC      usecase.ZoneUsecase
	Acquirer    service.LocationAcquirer
	Sessions    repository.SessionStore
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewEligibilityService is the constructor for eligibilityService.
func NewEligibilityService(params EligibilityServiceParams) usecase.EligibilityUsecase {
	return &eligibilityService{
		zoneUC:      params.ZoneUC,
		acquirer:    params.Acquirer,
		sessions:    params.Sessions,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *eligibilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EvaluatePoint classifies arbitrary coordinates against the active zone.
func (srv *eligibilityService) EvaluatePoint(ctx context.Context, point entity.GeoPoint) (entity.Evaluation, error) {
	if !point.IsValid() {
		return entity.Evaluation{}, errors.Wrap(domainerrors.ErrInvalidCoordinates, "evaluate point")
	}

	return eligibility.Evaluate(&point, srv.zoneUC.GetZone(ctx)), nil
}

// AcquireLocation requests one fix and, unless the selection changed in the
// meantime, stores it in the session together with its verdict.
func (srv *eligibilityService) AcquireLocation(ctx context.Context, userID uuid.UUID) (*usecase.LocationCheck, error) {
	session, err := srv.sessions.Get(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load delivery session")
	}
	issuedAt := session.Generation

	fix, err := srv.acquirer.Locate(ctx)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrLocationUnavailable, "acquire location")
	}

	return srv.applyFix(ctx, userID, fix, issuedAt)
}

// ReportLocation applies a fix, or a failure, acquired by the client device.
func (srv *eligibilityService) ReportLocation(ctx context.Context, userID uuid.UUID, report *usecase.LocationReport) (*usecase.LocationCheck, error) {
	if report.ErrorCode != 0 {
		// The acquirer logs the classified cause; the customer only sees a retry prompt.
		_ = srv.acquirer.RejectReport(ctx, &service.PositionError{
			Code:    service.PositionErrorCode(report.ErrorCode),
			Message: report.Message,
		})

		return nil, errors.Wrap(domainerrors.ErrLocationUnavailable, "device reported a location failure")
	}

	if report.Latitude == nil || report.Longitude == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "latitude and longitude are required")
	}
	if _, ok := entity.NewGeoPoint(*report.Latitude, *report.Longitude); !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidCoordinates, "reported location")
	}

	issuedAt := report.Generation
	if issuedAt == 0 {
		session, err := srv.sessions.Get(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load delivery session")
		}
		issuedAt = session.Generation
	}

	fix, err := srv.acquirer.AcceptReport(ctx, service.Position{
		Coords: service.Coordinates{
			Latitude:  *report.Latitude,
			Longitude: *report.Longitude,
			Accuracy:  report.AccuracyM,
		},
		Timestamp: report.Timestamp,
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrLocationUnavailable, "reported location rejected")
	}

	return srv.applyFix(ctx, userID, fix, issuedAt)
}

// applyFix evaluates fix and stores it when the session generation still equals issuedAt.
func (srv *eligibilityService) applyFix(ctx context.Context, userID uuid.UUID, fix *entity.LocationFix, issuedAt uint64) (*usecase.LocationCheck, error) {
	if err := ctx.Err(); err != nil {
		srv.log(ctx).Info("Location request canceled, discarding fix", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrLocationUnavailable, "location request canceled")
	}

	eval := eligibility.Evaluate(fix.Point.Ptr(), srv.zoneUC.GetZone(ctx))
	fix.Verdict = eval.Verdict

	check := &usecase.LocationCheck{
		Point:      fix.Point,
		AccuracyM:  fix.AccuracyM,
		Evaluation: eval,
		Applied:    true,
		Warning:    eligibility.IsOutsideWarning(eval),
	}

	_, err := srv.sessions.Update(ctx, userID, func(session *entity.DeliverySession) error {
		if session.Generation != issuedAt {
			return errStaleAcquisition
		}
		// Overlapping acquisitions can finish out of order.
		if session.LastFix != nil && session.LastFix.AcquiredAt.After(fix.AcquiredAt) {
			return errStaleAcquisition
		}
		session.LastFix = fix

		return nil
	})
	if err != nil {
		if !errors.Is(err, errStaleAcquisition) {
			return nil, errors.Wrap(err, "failed to store location fix")
		}

		srv.log(ctx).Info("Discarding stale location result",
			slog.String("userID", userID.String()),
			slog.Uint64("issuedGeneration", issuedAt),
		)
		check.Applied = false
	}

	return check, nil
}

// GetEligibility returns the delivery state of the customer's session.
func (srv *eligibilityService) GetEligibility(ctx context.Context, userID uuid.UUID) (*usecase.EligibilityStatus, error) {
	session, err := srv.sessions.Get(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load delivery session")
	}

	zone := srv.zoneUC.GetZone(ctx)
	if session.SelectedAddressID == nil {
		return buildStatus(session, nil, zone), nil
	}

	address, err := findOwnedAddress(ctx, srv.addressRepo, userID, *session.SelectedAddressID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAddressNotFound) {
			srv.log(ctx).Warn("Selected address no longer exists",
				slog.String("addressID", session.SelectedAddressID.String()),
			)

			return buildStatus(session, nil, zone), nil
		}

		return nil, err
	}

	return buildStatus(session, address, zone), nil
}
