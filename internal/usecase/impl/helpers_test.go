package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/session"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	// About 1.8 km from the default zone center.
	hamra = entity.GeoPoint{Latitude: 33.8965, Longitude: 35.4829}
	// About 68 km from the default zone center.
	tripoli = entity.GeoPoint{Latitude: 34.4367, Longitude: 35.8497}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newDefaultZoneUC returns a zone service without a persisted record, i.e. the
// configured default zone of 15 km around Beirut.
func newDefaultZoneUC() usecase.ZoneUsecase {
	return NewZoneService(ZoneServiceParams{Config: &config.Config{}, Logger: discardLogger()})
}

func newTestSessions() repository.SessionStore {
	return session.NewMemoryStore(time.Hour)
}

// expectTransaction makes txManager run the callback against repositories
// that hand out addressRepo and orderRepo.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, addressRepo repository.AddressRepository, orderRepo repository.OrderRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewAddressRepository().Return(addressRepo).Maybe()
	factory.EXPECT().NewOrderRepository().Return(orderRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()
}

func newAddress(userID uuid.UUID, location *entity.GeoPoint, isDefault bool) *entity.Address {
	return &entity.Address{
		ID:          uuid.New(),
		UserID:      userID,
		Label:       "Home",
		FullAddress: "Main road, building 4",
		City:        "Beirut",
		IsDefault:   isDefault,
		Location:    location,
		CreatedAt:   time.Now(),
	}
}

func selectInSession(t *testing.T, sessions repository.SessionStore, userID uuid.UUID, address *entity.Address, zone entity.DeliveryZone) *entity.DeliverySession {
	t.Helper()

	s, err := sessions.Update(context.Background(), userID, func(session *entity.DeliverySession) error {
		applySelection(session, address, zone)

		return nil
	})
	require.NoError(t, err)

	return s
}
