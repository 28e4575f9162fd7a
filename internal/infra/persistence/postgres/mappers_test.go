package postgres

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressMapper_Location(t *testing.T) {
	withLocation := &entity.Address{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Label:       "Home",
		FullAddress: "Hamra Street, Bldg 12",
		City:        "Beirut",
		IsDefault:   true,
		Location:    &entity.GeoPoint{Latitude: 33.8965, Longitude: 35.4829},
	}

	m := fromAddressDomain(withLocation)
	require.NotNil(t, m.Latitude)
	require.NotNil(t, m.Longitude)
	assert.Equal(t, 33.8965, *m.Latitude)
	assert.Equal(t, 35.4829, *m.Longitude)

	back := toAddressDomain(m)
	assert.Equal(t, withLocation, back)

	withoutLocation := *withLocation
	withoutLocation.Location = nil
	m = fromAddressDomain(&withoutLocation)
	assert.Nil(t, m.Latitude)
	assert.Nil(t, m.Longitude)
	assert.Nil(t, toAddressDomain(m).Location)
}

func TestAddressMapper_HalfLocationIsTreatedAsMissing(t *testing.T) {
	lat := 33.9
	m := &model.AddressModel{ID: uuid.New(), City: "Beirut", Latitude: &lat}

	assert.False(t, toAddressDomain(m).HasLocation())
}

func TestOrderMapper_SnapshotAndItems(t *testing.T) {
	orderID := uuid.New()
	order := &entity.Order{
		ID:            orderID,
		UserID:        uuid.New(),
		Status:        entity.OrderStatusPending,
		PaymentMethod: entity.PaymentMethodCashOnDelivery,
		Currency:      "LBP",
		Subtotal:      60000,
		DeliveryFee:   10000,
		Total:         70000,
		Address: entity.AddressSnapshot{
			AddressID:   uuid.New(),
			Label:       "Office",
			FullAddress: "Achrafieh",
			City:        "Beirut",
			Location:    &entity.GeoPoint{Latitude: 33.8886, Longitude: 35.5155},
		},
		Items: []*entity.OrderItem{
			{ProductID: uuid.New(), ProductName: "Bread", Quantity: 2, UnitPrice: 30000, TotalPrice: 60000},
		},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	m, err := fromOrderDomain(order)
	require.NoError(t, err)
	assert.Equal(t, int64(70000), m.TotalAmount)
	assert.Contains(t, string(m.AddressDetails), `"coordinates"`)
	require.Len(t, m.Items, 1)
	assert.Equal(t, orderID, m.Items[0].OrderID)

	back, err := toOrderDomain(m)
	require.NoError(t, err)
	assert.Equal(t, order.Address, back.Address)
	assert.Equal(t, order.Total, back.Total)
	require.Len(t, back.Items, 1)
	assert.Equal(t, "Bread", back.Items[0].ProductName)
	assert.Equal(t, orderID, back.Items[0].OrderID)
}

func TestOrderMapper_CorruptSnapshot(t *testing.T) {
	_, err := toOrderDomain(&model.OrderModel{AddressDetails: []byte("{not json")})
	assert.Error(t, err)
}
