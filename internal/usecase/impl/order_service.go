package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/eligibility"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCurrency = "LBP"

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	orderRepo   repository.OrderRepository
	sessions    repository.SessionStore
	zoneUC      usecase.ZoneUsecase
	publisher   service.EventPublisher
	qrService   service.QRCodeService
	pricing     config.CheckoutConfig
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	OrderRepo   repository.OrderRepository
	Sessions    repository.SessionStore
	ZoneUC      usecase.ZoneUsecase
	Publisher   service.EventPublisher `optional:"true"`
	QRService   service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	pricing := config.CheckoutConfig{Currency: defaultCurrency}
	if params.Config != nil && params.Config.Checkout != nil {
		pricing = *params.Config.Checkout
		if pricing.Currency == "" {
			pricing.Currency = defaultCurrency
		}
	}

	return &orderService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		orderRepo:   params.OrderRepo,
		sessions:    params.Sessions,
		zoneUC:      params.ZoneUC,
		publisher:   params.Publisher,
		qrService:   params.QRService,
		pricing:     pricing,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder checks out the cart to the session's selected address.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	items, subtotal, err := buildOrderItems(input.Items)
	if err != nil {
		return nil, err
	}

	address, err := srv.checkoutAddress(ctx, userID)
	if err != nil {
		return nil, err
	}

	if subtotal < srv.pricing.MinimumOrderAmount {
		return nil, errors.Wrapf(domainerrors.ErrBelowMinimumOrder, "subtotal %s is below %s",
			util.FormatAmount(subtotal, srv.pricing.Currency),
			util.FormatAmount(srv.pricing.MinimumOrderAmount, srv.pricing.Currency),
		)
	}

	deliveryFee := srv.pricing.StandardDeliveryFee
	if srv.pricing.FreeDeliveryThreshold > 0 && subtotal >= srv.pricing.FreeDeliveryThreshold {
		deliveryFee = 0
	}

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        userID,
		Status:        entity.OrderStatusPending,
		PaymentMethod: entity.PaymentMethodCashOnDelivery,
		Currency:      srv.pricing.Currency,
		Subtotal:      subtotal,
		DeliveryFee:   deliveryFee,
		Total:         subtotal + deliveryFee,
		Notes:         strings.TrimSpace(input.Notes),
		Address:       address.Snapshot(),
		Items:         items,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, item := range order.Items {
		item.OrderID = order.ID
	}

	if err := srv.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		return txRepo.NewOrderRepository().CreateOrder(ctx, order)
	}); err != nil {
		return nil, errors.Wrap(err, "failed to place order")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderID", order.ID.String()),
		slog.Int64("total", order.Total),
		slog.Int("items", len(order.Items)),
	)

	srv.publishOrderPlaced(ctx, order)

	return order, nil
}

// checkoutAddress resolves the selected address and applies the delivery gate.
func (srv *orderService) checkoutAddress(ctx context.Context, userID uuid.UUID) (*entity.Address, error) {
	session, err := srv.sessions.Get(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load delivery session")
	}

	var address *entity.Address
	if session.SelectedAddressID != nil {
		address, err = findOwnedAddress(ctx, srv.addressRepo, userID, *session.SelectedAddressID)
		if err != nil && !errors.Is(err, domainerrors.ErrAddressNotFound) {
			return nil, err
		}
	}

	verdict := entity.VerdictUnknown
	if address != nil {
		verdict = currentVerdict(address, srv.zoneUC.GetZone(ctx)).Verdict
	}

	if err := eligibility.CheckoutGate(address, verdict); err != nil {
		if errors.Is(err, eligibility.ErrOutsideDeliveryArea) {
			srv.log(ctx).Warn("Checkout blocked outside delivery area",
				slog.String("addressID", address.ID.String()),
				slog.String("verdict", string(verdict)),
			)

			return nil, errors.Wrap(domainerrors.ErrOutsideDeliveryArea, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrNoAddressSelected, err.Error())
	}

	return address, nil
}

func (srv *orderService) publishOrderPlaced(ctx context.Context, order *entity.Order) {
	if srv.publisher == nil {
		return
	}

	event := &service.OrderPlacedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:       order.ID.String(),
		UserID:        order.UserID.String(),
		Total:         order.Total,
		Currency:      order.Currency,
		PaymentMethod: order.PaymentMethod,
		ItemCount:     len(order.Items),
		City:          order.Address.City,
		PlacedAt:      order.CreatedAt,
	}
	if loc := order.Address.Location; loc != nil {
		lat, lng := loc.Latitude, loc.Longitude
		event.Latitude = &lat
		event.Longitude = &lng
	}

	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("orderID", event.OrderID),
			slog.Any("error", err),
		)
	}
}

// ListOrders returns the customer's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindOrdersByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one of the customer's orders. Orders of other customers are reported as not found.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another user")
	}

	return order, nil
}

// OrderTrackingQR renders the tracking QR code of one of the customer's orders.
func (srv *orderService) OrderTrackingQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOrderTrackingQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR code")
	}

	return png, nil
}

// maxOrderSubtotal bounds cart totals so the subtotal plus any delivery fee
// stays far from int64 overflow.
const maxOrderSubtotal int64 = 1_000_000_000_000_000

// buildOrderItems validates the cart and prices each line.
func buildOrderItems(cart []usecase.CartItem) ([]*entity.OrderItem, int64, error) {
	if len(cart) == 0 {
		return nil, 0, errors.Wrap(domainerrors.ErrEmptyCart, "place order")
	}

	items := make([]*entity.OrderItem, 0, len(cart))
	var subtotal int64
	for i, line := range cart {
		switch {
		case line.ProductID == uuid.Nil:
			return nil, 0, errors.Wrapf(domainerrors.ErrValidationFailed, "item %d has no product", i)
		case line.Quantity <= 0:
			return nil, 0, errors.Wrapf(domainerrors.ErrValidationFailed, "item %d quantity must be positive", i)
		case line.UnitPrice < 0:
			return nil, 0, errors.Wrapf(domainerrors.ErrValidationFailed, "item %d price must not be negative", i)
		}

		if line.UnitPrice > maxOrderSubtotal/int64(line.Quantity) {
			return nil, 0, errors.Wrapf(domainerrors.ErrValidationFailed, "item %d total is too large", i)
		}
		total := line.UnitPrice * int64(line.Quantity)
		if subtotal > maxOrderSubtotal-total {
			return nil, 0, errors.Wrap(domainerrors.ErrValidationFailed, "order subtotal is too large")
		}
		subtotal += total
		items = append(items, &entity.OrderItem{
			ID:          uuid.New(),
			ProductID:   line.ProductID,
			ProductName: strings.TrimSpace(line.ProductName),
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TotalPrice:  total,
		})
	}

	return items, subtotal, nil
}
