package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/eligibility"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressFixture struct {
	srv         usecase.AddressUsecase
	txManager   *mockRepo.MockTransactionManager
	addressRepo *mockRepo.MockAddressRepository
	sessions    repository.SessionStore
	zone        entity.DeliveryZone
}

func newAddressFixture(t *testing.T, cfg *config.Config) *addressFixture {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}

	zoneUC := newDefaultZoneUC()
	f := &addressFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
		sessions:    newTestSessions(),
		zone:        zoneUC.GetZone(context.Background()),
	}
	expectTransaction(t, f.txManager, f.addressRepo, nil)

	f.srv = NewAddressService(AddressServiceParams{
		TxManager:   f.txManager,
		AddressRepo: f.addressRepo,
		Sessions:    f.sessions,
		ZoneUC:      zoneUC,
		Config:      cfg,
		Logger:      discardLogger(),
	})

	return f
}

func TestAddressService_AddAddress_FirstBecomesDefaultAndSelected(t *testing.T) {
	f := newAddressFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	f.addressRepo.EXPECT().CountAddressesByUser(mock.Anything, userID).Return(int64(0), nil).Once()
	f.addressRepo.EXPECT().CreateAddress(mock.Anything, mock.AnythingOfType("*entity.Address")).Return(nil).Once()

	result, err := f.srv.AddAddress(ctx, userID, &usecase.AddAddressInput{
		FullAddress: "  Bliss Street  ",
		City:        "Beirut",
		Location:    hamra.Ptr(),
	})
	require.NoError(t, err)
	assert.True(t, result.Address.IsDefault)
	assert.Equal(t, "Home", result.Address.Label)
	assert.Equal(t, "Bliss Street", result.Address.FullAddress)
	assert.Equal(t, entity.VerdictEligible, result.Evaluation.Verdict)
	assert.False(t, result.Warning)

	session, err := f.sessions.Get(ctx, userID)
	require.NoError(t, err)
	assert.True(t, session.IsSelected(result.Address.ID))
	assert.Equal(t, entity.VerdictEligible, session.Verdict)
}

func TestAddressService_AddAddress_OutsideZoneWarnsButSaves(t *testing.T) {
	f := newAddressFixture(t, nil)
	userID := uuid.New()

	f.addressRepo.EXPECT().CountAddressesByUser(mock.Anything, userID).Return(int64(2), nil).Once()
	f.addressRepo.EXPECT().CreateAddress(mock.Anything, mock.AnythingOfType("*entity.Address")).Return(nil).Once()

	result, err := f.srv.AddAddress(context.Background(), userID, &usecase.AddAddressInput{
		Label:       "Family",
		FullAddress: "Mina road",
		City:        "Tripoli",
		Location:    tripoli.Ptr(),
	})
	require.NoError(t, err)
	assert.False(t, result.Address.IsDefault)
	assert.Equal(t, entity.VerdictIneligible, result.Evaluation.Verdict)
	assert.True(t, result.Warning)
}

func TestAddressService_AddAddress_DefaultDemotesPrevious(t *testing.T) {
	f := newAddressFixture(t, nil)
	userID := uuid.New()

	f.addressRepo.EXPECT().CountAddressesByUser(mock.Anything, userID).Return(int64(1), nil).Once()
	f.addressRepo.EXPECT().ClearDefaultAddress(mock.Anything, userID).Return(nil).Once()
	f.addressRepo.EXPECT().
		CreateAddress(mock.Anything, mock.MatchedBy(func(a *entity.Address) bool { return a.IsDefault })).
		Return(nil).
		Once()

	result, err := f.srv.AddAddress(context.Background(), userID, &usecase.AddAddressInput{
		FullAddress: "Gemmayzeh",
		City:        "Beirut",
		IsDefault:   true,
	})
	require.NoError(t, err)
	assert.True(t, result.Address.IsDefault)
	assert.Equal(t, entity.VerdictUnknown, result.Evaluation.Verdict)
	assert.False(t, result.Warning)
}

func TestAddressService_AddAddress_Rejections(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		input   *usecase.AddAddressInput
		setup   func(f *addressFixture)
		wantErr error
	}{
		{
			name:    "missing city",
			input:   &usecase.AddAddressInput{FullAddress: "Somewhere"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "invalid coordinates",
			input:   &usecase.AddAddressInput{FullAddress: "Somewhere", City: "Beirut", Location: &entity.GeoPoint{Latitude: 12, Longitude: 200}},
			wantErr: domainerrors.ErrInvalidCoordinates,
		},
		{
			name:    "current location without a fix",
			input:   &usecase.AddAddressInput{FullAddress: "Somewhere", City: "Beirut", UseCurrentLocation: true},
			wantErr: domainerrors.ErrNoLocationFix,
		},
		{
			name:  "limit reached",
			input: &usecase.AddAddressInput{FullAddress: "Somewhere", City: "Beirut"},
			setup: func(f *addressFixture) {
				f.addressRepo.EXPECT().CountAddressesByUser(mock.Anything, userID).Return(int64(3), nil).Once()
			},
			wantErr: domainerrors.ErrAddressLimitExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAddressFixture(t, &config.Config{Address: &config.AddressConfig{MaxPerUser: 3}})
			if tt.setup != nil {
				tt.setup(f)
			}

			result, err := f.srv.AddAddress(context.Background(), userID, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
		})
	}
}

func TestAddressService_AddAddress_UsesCurrentLocation(t *testing.T) {
	f := newAddressFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	_, err := f.sessions.Update(ctx, userID, func(session *entity.DeliverySession) error {
		session.LastFix = fixOf(hamra)

		return nil
	})
	require.NoError(t, err)

	f.addressRepo.EXPECT().CountAddressesByUser(mock.Anything, userID).Return(int64(0), nil).Once()
	f.addressRepo.EXPECT().CreateAddress(mock.Anything, mock.AnythingOfType("*entity.Address")).Return(nil).Once()

	result, err := f.srv.AddAddress(ctx, userID, &usecase.AddAddressInput{
		FullAddress:        "Current spot",
		City:               "Beirut",
		UseCurrentLocation: true,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Address.Location)
	assert.Equal(t, hamra, *result.Address.Location)
}

func TestAddressService_SelectAddressWithoutCoordinates(t *testing.T) {
	f := newAddressFixture(t, nil)
	userID := uuid.New()
	address := newAddress(userID, nil, true)

	f.addressRepo.EXPECT().FindAddressByID(mock.Anything, address.ID).Return(address, nil).Once()

	status, err := f.srv.SelectAddress(context.Background(), userID, address.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VerdictUnknown, status.Verdict)
	assert.Nil(t, status.DistanceKm)
	assert.True(t, status.CheckoutAllowed)
	assert.NoError(t, eligibility.CheckoutGate(status.SelectedAddress, status.Verdict))
}

func TestAddressService_SelectAddress_OtherUsersAddress(t *testing.T) {
	f := newAddressFixture(t, nil)
	address := newAddress(uuid.New(), hamra.Ptr(), true)

	f.addressRepo.EXPECT().FindAddressByID(mock.Anything, address.ID).Return(address, nil).Once()

	status, err := f.srv.SelectAddress(context.Background(), uuid.New(), address.ID)
	assert.Nil(t, status)
	assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)
}

func TestAddressService_ListAddresses_SelectsDefault(t *testing.T) {
	f := newAddressFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	def := newAddress(userID, tripoli.Ptr(), true)
	other := newAddress(userID, hamra.Ptr(), false)
	f.addressRepo.EXPECT().FindAddressesByUser(mock.Anything, userID).Return([]*entity.Address{def, other}, nil).Twice()

	book, err := f.srv.ListAddresses(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, book.SelectedAddressID)
	assert.Equal(t, def.ID, *book.SelectedAddressID)
	assert.Equal(t, entity.VerdictIneligible, book.Verdict)

	// An existing selection is kept.
	selectInSession(t, f.sessions, userID, other, f.zone)
	book, err = f.srv.ListAddresses(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, *book.SelectedAddressID)
	assert.Equal(t, entity.VerdictEligible, book.Verdict)
}

func TestAddressService_UpdateAddress_ReevaluatesSelection(t *testing.T) {
	f := newAddressFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	address := newAddress(userID, hamra.Ptr(), true)
	before := selectInSession(t, f.sessions, userID, address, f.zone)
	require.Equal(t, entity.VerdictEligible, before.Verdict)

	f.addressRepo.EXPECT().FindAddressByID(mock.Anything, address.ID).Return(address, nil).Once()
	f.addressRepo.EXPECT().UpdateAddress(mock.Anything, address).Return(nil).Once()

	result, err := f.srv.UpdateAddress(ctx, userID, address.ID, &usecase.UpdateAddressInput{Location: tripoli.Ptr()})
	require.NoError(t, err)
	assert.True(t, result.Warning)

	after, err := f.sessions.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.VerdictIneligible, after.Verdict)
	assert.Greater(t, after.Generation, before.Generation)
}

func TestAddressService_UpdateAddress_ClearLocation(t *testing.T) {
	f := newAddressFixture(t, nil)
	userID := uuid.New()
	address := newAddress(userID, tripoli.Ptr(), true)
	label := "Work"

	f.addressRepo.EXPECT().FindAddressByID(mock.Anything, address.ID).Return(address, nil).Once()
	f.addressRepo.EXPECT().UpdateAddress(mock.Anything, address).Return(nil).Once()

	result, err := f.srv.UpdateAddress(context.Background(), userID, address.ID, &usecase.UpdateAddressInput{
		Label:         &label,
		Location:      hamra.Ptr(),
		ClearLocation: true,
	})
	require.NoError(t, err)
	assert.Nil(t, result.Address.Location)
	assert.Equal(t, "Work", result.Address.Label)
	assert.Equal(t, entity.VerdictUnknown, result.Evaluation.Verdict)
}

func TestAddressService_DeleteDefaultPromotesExactlyOne(t *testing.T) {
	f := newAddressFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	def := newAddress(userID, hamra.Ptr(), true)
	oldest := newAddress(userID, tripoli.Ptr(), false)
	newer := newAddress(userID, nil, false)
	selectInSession(t, f.sessions, userID, def, f.zone)

	f.addressRepo.EXPECT().FindAddressByID(mock.Anything, def.ID).Return(def, nil).Once()
	f.addressRepo.EXPECT().DeleteAddress(mock.Anything, def.ID).Return(nil).Once()
	f.addressRepo.EXPECT().FindAddressesByUser(mock.Anything, userID).Return([]*entity.Address{oldest, newer}, nil).Once()
	f.addressRepo.EXPECT().
		UpdateAddress(mock.Anything, mock.MatchedBy(func(a *entity.Address) bool { return a.ID == oldest.ID && a.IsDefault })).
		Return(nil).
		Once()

	require.NoError(t, f.srv.DeleteAddress(ctx, userID, def.ID))

	defaults := 0
	for _, a := range []*entity.Address{oldest, newer} {
		if a.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
	assert.True(t, oldest.IsDefault)

	// The deleted address was selected, so the promoted one takes over.
	session, err := f.sessions.Get(ctx, userID)
	require.NoError(t, err)
	assert.True(t, session.IsSelected(oldest.ID))
	assert.Equal(t, entity.VerdictIneligible, session.Verdict)
}

func TestAddressService_DeleteLastSelectedAddressResetsVerdict(t *testing.T) {
	f := newAddressFixture(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	only := newAddress(userID, hamra.Ptr(), true)
	selectInSession(t, f.sessions, userID, only, f.zone)

	f.addressRepo.EXPECT().FindAddressByID(mock.Anything, only.ID).Return(only, nil).Once()
	f.addressRepo.EXPECT().DeleteAddress(mock.Anything, only.ID).Return(nil).Once()
	f.addressRepo.EXPECT().FindAddressesByUser(mock.Anything, userID).Return(nil, nil).Once()

	require.NoError(t, f.srv.DeleteAddress(ctx, userID, only.ID))

	session, err := f.sessions.Get(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, session.SelectedAddressID)
	assert.Equal(t, entity.VerdictUnknown, session.Verdict)
}

func TestAddressService_DeleteNonDefaultKeepsDefault(t *testing.T) {
	f := newAddressFixture(t, nil)
	userID := uuid.New()

	def := newAddress(userID, hamra.Ptr(), true)
	other := newAddress(userID, nil, false)

	f.addressRepo.EXPECT().FindAddressByID(mock.Anything, other.ID).Return(other, nil).Once()
	f.addressRepo.EXPECT().DeleteAddress(mock.Anything, other.ID).Return(nil).Once()
	f.addressRepo.EXPECT().FindDefaultAddressByUser(mock.Anything, userID).Return(def, nil).Once()

	require.NoError(t, f.srv.DeleteAddress(context.Background(), userID, other.ID))
	assert.True(t, def.IsDefault)
}

func TestAddressService_SetDefaultAddress(t *testing.T) {
	f := newAddressFixture(t, nil)
	userID := uuid.New()
	address := newAddress(userID, nil, false)

	f.addressRepo.EXPECT().FindAddressByID(mock.Anything, address.ID).Return(address, nil).Once()
	f.addressRepo.EXPECT().ClearDefaultAddress(mock.Anything, userID).Return(nil).Once()
	f.addressRepo.EXPECT().UpdateAddress(mock.Anything, address).Return(nil).Once()

	updated, err := f.srv.SetDefaultAddress(context.Background(), userID, address.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)
}

func TestAddressService_SetDefaultAddress_Conflict(t *testing.T) {
	f := newAddressFixture(t, nil)
	userID := uuid.New()
	address := newAddress(userID, nil, false)

	f.addressRepo.EXPECT().FindAddressByID(mock.Anything, address.ID).Return(address, nil).Once()
	f.addressRepo.EXPECT().ClearDefaultAddress(mock.Anything, userID).Return(nil).Once()
	f.addressRepo.EXPECT().UpdateAddress(mock.Anything, address).Return(repository.ErrDefaultAddressConflict).Once()

	updated, err := f.srv.SetDefaultAddress(context.Background(), userID, address.ID)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrDefaultAddressConflict)
}
