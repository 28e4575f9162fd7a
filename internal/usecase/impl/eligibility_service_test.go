package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eligibilityFixture struct {
	srv         usecase.EligibilityUsecase
	acquirer    *mockService.MockLocationAcquirer
	addressRepo *mockRepo.MockAddressRepository
	sessions    repository.SessionStore
	zone        entity.DeliveryZone
}

func newEligibilityFixture(t *testing.T) *eligibilityFixture {
	t.Helper()

	zoneUC := newDefaultZoneUC()
	f := &eligibilityFixture{
		acquirer:    mockService.NewMockLocationAcquirer(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
		sessions:    newTestSessions(),
		zone:        zoneUC.GetZone(context.Background()),
	}
	f.srv = NewEligibilityService(EligibilityServiceParams{
		ZoneUC:      zoneUC,
		Acquirer:    f.acquirer,
		Sessions:    f.sessions,
		AddressRepo: f.addressRepo,
		Logger:      discardLogger(),
	})

	return f
}

func fixOf(p entity.GeoPoint) *entity.LocationFix {
	return &entity.LocationFix{Point: p, AccuracyM: 10, AcquiredAt: time.Now(), Verdict: entity.VerdictUnknown}
}

func TestEligibilityService_EvaluatePoint(t *testing.T) {
	f := newEligibilityFixture(t)
	ctx := context.Background()

	eval, err := f.srv.EvaluatePoint(ctx, hamra)
	require.NoError(t, err)
	assert.Equal(t, entity.VerdictEligible, eval.Verdict)
	require.NotNil(t, eval.DistanceKm)
	assert.Less(t, *eval.DistanceKm, 15.0)

	eval, err = f.srv.EvaluatePoint(ctx, tripoli)
	require.NoError(t, err)
	assert.Equal(t, entity.VerdictIneligible, eval.Verdict)

	_, err = f.srv.EvaluatePoint(ctx, entity.GeoPoint{Latitude: 100, Longitude: 0})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestEligibilityService_AcquireLocation_StoresFix(t *testing.T) {
	f := newEligibilityFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.acquirer.EXPECT().Locate(mock.Anything).Return(fixOf(tripoli), nil).Once()

	check, err := f.srv.AcquireLocation(ctx, userID)
	require.NoError(t, err)
	assert.True(t, check.Applied)
	assert.True(t, check.Warning)
	assert.Equal(t, entity.VerdictIneligible, check.Evaluation.Verdict)

	session, err := f.sessions.Get(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, session.LastFix)
	assert.Equal(t, tripoli, session.LastFix.Point)
	assert.Equal(t, entity.VerdictIneligible, session.LastFix.Verdict)
}

func TestEligibilityService_AcquireLocation_FailureLeavesSessionUntouched(t *testing.T) {
	f := newEligibilityFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	address := newAddress(userID, hamra.Ptr(), true)
	before := selectInSession(t, f.sessions, userID, address, f.zone)

	f.acquirer.EXPECT().Locate(mock.Anything).Return(nil, errors.New("location_permission_denied")).Once()

	check, err := f.srv.AcquireLocation(ctx, userID)
	assert.Nil(t, check)
	assert.ErrorIs(t, err, domainerrors.ErrLocationUnavailable)

	after, err := f.sessions.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, before.Generation, after.Generation)
	assert.Equal(t, before.Verdict, after.Verdict)
	assert.Nil(t, after.LastFix)
}

func TestEligibilityService_AcquireLocation_StaleResultIsDiscarded(t *testing.T) {
	f := newEligibilityFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	first := newAddress(userID, hamra.Ptr(), true)
	second := newAddress(userID, nil, false)
	selectInSession(t, f.sessions, userID, first, f.zone)

	f.acquirer.EXPECT().Locate(mock.Anything).
		RunAndReturn(func(context.Context) (*entity.LocationFix, error) {
			// The customer switches address while the request is pending.
			selectInSession(t, f.sessions, userID, second, f.zone)

			return fixOf(tripoli), nil
		}).
		Once()

	check, err := f.srv.AcquireLocation(ctx, userID)
	require.NoError(t, err)
	assert.False(t, check.Applied)

	session, err := f.sessions.Get(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, session.LastFix)
	assert.True(t, session.IsSelected(second.ID))
}

func TestEligibilityService_AcquireLocation_OlderFixDoesNotReplaceNewer(t *testing.T) {
	f := newEligibilityFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	newer := fixOf(hamra)
	_, err := f.sessions.Update(ctx, userID, func(session *entity.DeliverySession) error {
		session.LastFix = newer

		return nil
	})
	require.NoError(t, err)

	older := fixOf(tripoli)
	older.AcquiredAt = newer.AcquiredAt.Add(-time.Minute)
	f.acquirer.EXPECT().Locate(mock.Anything).Return(older, nil).Once()

	check, err := f.srv.AcquireLocation(ctx, userID)
	require.NoError(t, err)
	assert.False(t, check.Applied)

	session, err := f.sessions.Get(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, session.LastFix)
	assert.Equal(t, hamra, session.LastFix.Point)
}

func TestEligibilityService_AcquireLocation_CanceledContext(t *testing.T) {
	f := newEligibilityFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	userID := uuid.New()

	f.acquirer.EXPECT().Locate(mock.Anything).
		RunAndReturn(func(context.Context) (*entity.LocationFix, error) {
			cancel()

			return fixOf(hamra), nil
		}).
		Once()

	check, err := f.srv.AcquireLocation(ctx, userID)
	assert.Nil(t, check)
	assert.ErrorIs(t, err, domainerrors.ErrLocationUnavailable)

	session, err := f.sessions.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, session.LastFix)
}

func TestEligibilityService_ReportLocation(t *testing.T) {
	lat, lng := hamra.Latitude, hamra.Longitude
	badLat := 123.0

	tests := []struct {
		name    string
		report  *usecase.LocationReport
		setup   func(f *eligibilityFixture)
		wantErr error
	}{
		{
			name:   "device fix is applied",
			report: &usecase.LocationReport{Latitude: &lat, Longitude: &lng, AccuracyM: 25, Timestamp: time.Now()},
			setup: func(f *eligibilityFixture) {
				f.acquirer.EXPECT().
					AcceptReport(mock.Anything, mock.MatchedBy(func(p service.Position) bool {
						return p.Coords.Latitude == lat && p.Coords.Accuracy == 25
					})).
					Return(fixOf(hamra), nil).
					Once()
			},
		},
		{
			name:   "device error is classified and hidden",
			report: &usecase.LocationReport{ErrorCode: int(service.PositionPermissionDenied), Message: "User denied Geolocation"},
			setup: func(f *eligibilityFixture) {
				f.acquirer.EXPECT().
					RejectReport(mock.Anything, &service.PositionError{Code: service.PositionPermissionDenied, Message: "User denied Geolocation"}).
					Return(errors.New("location_permission_denied")).
					Once()
			},
			wantErr: domainerrors.ErrLocationUnavailable,
		},
		{
			name:    "missing coordinates",
			report:  &usecase.LocationReport{Latitude: &lat},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "out of range coordinates",
			report:  &usecase.LocationReport{Latitude: &badLat, Longitude: &lng},
			wantErr: domainerrors.ErrInvalidCoordinates,
		},
		{
			name:   "stale fix rejected by acquirer",
			report: &usecase.LocationReport{Latitude: &lat, Longitude: &lng, Timestamp: time.Now().Add(-time.Hour)},
			setup: func(f *eligibilityFixture) {
				f.acquirer.EXPECT().AcceptReport(mock.Anything, mock.Anything).Return(nil, errors.New("stale")).Once()
			},
			wantErr: domainerrors.ErrLocationUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEligibilityFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			check, err := f.srv.ReportLocation(context.Background(), uuid.New(), tt.report)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, check)

				return
			}

			require.NoError(t, err)
			assert.True(t, check.Applied)
			assert.Equal(t, entity.VerdictEligible, check.Evaluation.Verdict)
			assert.False(t, check.Warning)
		})
	}
}

func TestEligibilityService_ReportLocation_OldGenerationIsNotApplied(t *testing.T) {
	f := newEligibilityFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	session := selectInSession(t, f.sessions, userID, newAddress(userID, nil, true), f.zone)
	observed := session.Generation
	selectInSession(t, f.sessions, userID, newAddress(userID, nil, false), f.zone)

	lat, lng := hamra.Latitude, hamra.Longitude
	f.acquirer.EXPECT().AcceptReport(mock.Anything, mock.Anything).Return(fixOf(hamra), nil).Once()

	check, err := f.srv.ReportLocation(ctx, userID, &usecase.LocationReport{
		Latitude:   &lat,
		Longitude:  &lng,
		Generation: observed,
	})
	require.NoError(t, err)
	assert.False(t, check.Applied)
}

func TestEligibilityService_GetEligibility(t *testing.T) {
	f := newEligibilityFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	status, err := f.srv.GetEligibility(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, status.SelectedAddress)
	assert.Equal(t, entity.VerdictUnknown, status.Verdict)
	assert.False(t, status.CheckoutAllowed)

	address := newAddress(userID, tripoli.Ptr(), true)
	selectInSession(t, f.sessions, userID, address, f.zone)
	f.addressRepo.EXPECT().FindAddressByID(mock.Anything, address.ID).Return(address, nil).Once()

	status, err = f.srv.GetEligibility(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, address, status.SelectedAddress)
	assert.Equal(t, entity.VerdictIneligible, status.Verdict)
	assert.False(t, status.CheckoutAllowed)
}

func TestEligibilityService_GetEligibility_SelectedAddressGone(t *testing.T) {
	f := newEligibilityFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	address := newAddress(userID, hamra.Ptr(), true)
	selectInSession(t, f.sessions, userID, address, f.zone)
	f.addressRepo.EXPECT().FindAddressByID(mock.Anything, address.ID).Return(nil, repository.ErrAddressNotFound).Once()

	status, err := f.srv.GetEligibility(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, status.SelectedAddress)
	assert.Equal(t, entity.VerdictUnknown, status.Verdict)
}
