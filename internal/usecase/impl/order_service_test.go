package impl

import (
	"context"
	"errors"
	"math"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	srv         usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	addressRepo *mockRepo.MockAddressRepository
	orderRepo   *mockRepo.MockOrderRepository
	publisher   *mockService.MockEventPublisher
	qrService   *mockService.MockQRCodeService
	sessions    repository.SessionStore
	zone        entity.DeliveryZone
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	return newOrderFixtureWithZone(t, newDefaultZoneUC())
}

// newOrderFixtureWithZone checks out against zoneUC while selections are
// still evaluated against the default zone.
func newOrderFixtureWithZone(t *testing.T, zoneUC usecase.ZoneUsecase) *orderFixture {
	t.Helper()

	f := &orderFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		publisher:   mockService.NewMockEventPublisher(t),
		qrService:   mockService.NewMockQRCodeService(t),
		sessions:    newTestSessions(),
		zone:        newDefaultZoneUC().GetZone(context.Background()),
	}
	expectTransaction(t, f.txManager, f.addressRepo, f.orderRepo)

	f.srv = NewOrderService(OrderServiceParams{
		TxManager:   f.txManager,
		AddressRepo: f.addressRepo,
		OrderRepo:   f.orderRepo,
		Sessions:    f.sessions,
		ZoneUC:      zoneUC,
		Publisher:   f.publisher,
		QRService:   f.qrService,
		Config: &config.Config{Checkout: &config.CheckoutConfig{
			Currency:              "LBP",
			MinimumOrderAmount:    50000,
			FreeDeliveryThreshold: 1000000,
			StandardDeliveryFee:   100000,
		}},
		Logger: discardLogger(),
	})

	return f
}

// selectAddress stores address as the selection and makes it loadable.
func (f *orderFixture) selectAddress(t *testing.T, userID uuid.UUID, address *entity.Address) {
	t.Helper()

	selectInSession(t, f.sessions, userID, address, f.zone)
	f.addressRepo.EXPECT().FindAddressByID(mock.Anything, address.ID).Return(address, nil).Maybe()
}

func cart(unitPrice int64, quantity int) *usecase.PlaceOrderInput {
	return &usecase.PlaceOrderInput{
		Items: []usecase.CartItem{{
			ProductID:   uuid.New(),
			ProductName: "Olive oil 1L",
			Quantity:    quantity,
			UnitPrice:   unitPrice,
		}},
	}
}

func TestOrderService_PlaceOrder_OutsideAreaIsRejected(t *testing.T) {
	f := newOrderFixture(t)
	userID := uuid.New()
	f.selectAddress(t, userID, newAddress(userID, tripoli.Ptr(), true))

	order, err := f.srv.PlaceOrder(context.Background(), userID, cart(200000, 1))
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOutsideDeliveryArea)
	f.orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishOrderPlaced", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_UnknownVerdictIsAllowed(t *testing.T) {
	f := newOrderFixture(t)
	userID := uuid.New()
	address := newAddress(userID, nil, true)
	f.selectAddress(t, userID, address)

	f.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
	f.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(nil).Once()

	order, err := f.srv.PlaceOrder(context.Background(), userID, cart(200000, 1))
	require.NoError(t, err)
	assert.Equal(t, address.ID, order.Address.AddressID)
	assert.Nil(t, order.Address.Location)
}

func TestOrderService_PlaceOrder_Eligible(t *testing.T) {
	f := newOrderFixture(t)
	userID := uuid.New()
	address := newAddress(userID, hamra.Ptr(), true)
	f.selectAddress(t, userID, address)

	f.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
	f.publisher.EXPECT().
		PublishOrderPlaced(mock.Anything, mock.MatchedBy(func(e *service.OrderPlacedEvent) bool {
			return e.UserID == userID.String() && e.Total == 500000 && e.Latitude != nil
		})).
		Return(nil).
		Once()

	order, err := f.srv.PlaceOrder(context.Background(), userID, cart(200000, 2))
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentMethodCashOnDelivery, order.PaymentMethod)
	assert.Equal(t, int64(400000), order.Subtotal)
	assert.Equal(t, int64(100000), order.DeliveryFee)
	assert.Equal(t, int64(500000), order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, order.ID, order.Items[0].OrderID)
	assert.Equal(t, int64(400000), order.Items[0].TotalPrice)
}

func TestOrderService_PlaceOrder_FreeDeliveryAtThreshold(t *testing.T) {
	f := newOrderFixture(t)
	userID := uuid.New()
	f.selectAddress(t, userID, newAddress(userID, hamra.Ptr(), true))

	f.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
	f.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(nil).Once()

	order, err := f.srv.PlaceOrder(context.Background(), userID, cart(250000, 4))
	require.NoError(t, err)
	assert.Equal(t, int64(0), order.DeliveryFee)
	assert.Equal(t, order.Subtotal, order.Total)
}

func TestOrderService_PlaceOrder_PublishFailureIsNotFatal(t *testing.T) {
	f := newOrderFixture(t)
	userID := uuid.New()
	f.selectAddress(t, userID, newAddress(userID, hamra.Ptr(), true))

	f.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
	f.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	order, err := f.srv.PlaceOrder(context.Background(), userID, cart(200000, 1))
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_PlaceOrder_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		input       *usecase.PlaceOrderInput
		withAddress bool
		wantErr     error
	}{
		{name: "empty cart", input: &usecase.PlaceOrderInput{}, withAddress: true, wantErr: domainerrors.ErrEmptyCart},
		{name: "zero quantity", input: cart(1000, 0), withAddress: true, wantErr: domainerrors.ErrValidationFailed},
		{name: "negative price", input: cart(-1, 1), withAddress: true, wantErr: domainerrors.ErrValidationFailed},
		{name: "no address selected", input: cart(200000, 1), wantErr: domainerrors.ErrNoAddressSelected},
		{name: "below minimum", input: cart(10000, 1), withAddress: true, wantErr: domainerrors.ErrBelowMinimumOrder},
		{name: "line total overflows", input: cart(math.MaxInt64/2+1, 2), withAddress: true, wantErr: domainerrors.ErrValidationFailed},
		{
			name: "subtotal overflows",
			input: &usecase.PlaceOrderInput{Items: []usecase.CartItem{
				{ProductID: uuid.New(), Quantity: 1, UnitPrice: 900_000_000_000_000_000},
				{ProductID: uuid.New(), Quantity: 1, UnitPrice: 200_000_000_000_000_000},
			}},
			withAddress: true,
			wantErr:     domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			userID := uuid.New()
			if tt.withAddress {
				f.selectAddress(t, userID, newAddress(userID, hamra.Ptr(), true))
			}

			order, err := f.srv.PlaceOrder(context.Background(), userID, tt.input)
			assert.Nil(t, order)
			assert.ErrorIs(t, err, tt.wantErr)
			f.orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_PlaceOrder_ZoneShrunkAfterSelection(t *testing.T) {
	zoneUC := mockUsecase.NewMockZoneUsecase(t)
	zoneUC.EXPECT().GetZone(mock.Anything).Return(entity.DeliveryZone{
		Center:   entity.GeoPoint{Latitude: config.DefaultZoneLatitude, Longitude: config.DefaultZoneLongitude},
		RadiusKm: 0.5,
		Source:   entity.ZoneSourcePersisted,
	})

	f := newOrderFixtureWithZone(t, zoneUC)
	userID := uuid.New()
	address := newAddress(userID, hamra.Ptr(), true)
	session := selectInSession(t, f.sessions, userID, address, f.zone)
	require.Equal(t, entity.VerdictEligible, session.Verdict)
	f.addressRepo.EXPECT().FindAddressByID(mock.Anything, address.ID).Return(address, nil).Once()

	order, err := f.srv.PlaceOrder(context.Background(), userID, cart(200000, 1))
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOutsideDeliveryArea)
	f.orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_SelectedAddressDeleted(t *testing.T) {
	f := newOrderFixture(t)
	userID := uuid.New()
	address := newAddress(userID, hamra.Ptr(), true)
	selectInSession(t, f.sessions, userID, address, f.zone)

	f.addressRepo.EXPECT().FindAddressByID(mock.Anything, address.ID).Return(nil, repository.ErrAddressNotFound).Once()

	order, err := f.srv.PlaceOrder(context.Background(), userID, cart(200000, 1))
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrNoAddressSelected)
}

func TestOrderService_GetOrder(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: userID}

	f.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil).Twice()

	got, err := f.srv.GetOrder(ctx, userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, got)

	got, err = f.srv.GetOrder(ctx, uuid.New(), order.ID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	f := newOrderFixture(t)
	orderID := uuid.New()

	f.orderRepo.EXPECT().FindOrderByID(mock.Anything, orderID).Return(nil, repository.ErrOrderNotFound).Once()

	got, err := f.srv.GetOrder(context.Background(), uuid.New(), orderID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_OrderTrackingQR(t *testing.T) {
	f := newOrderFixture(t)
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: userID}
	png := []byte{0x89, 'P', 'N', 'G'}

	f.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil).Once()
	f.qrService.EXPECT().GenerateOrderTrackingQR(order.ID).Return(png, nil).Once()

	got, err := f.srv.OrderTrackingQR(context.Background(), userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}
