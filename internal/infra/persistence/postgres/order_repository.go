package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder inserts the order and its items in one statement batch.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid order reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order amounts violate constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

// FindOrderByID retrieves an order with its items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM)
}

// FindOrdersByUser lists a user's orders newest first.
func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	var snapshot entity.AddressSnapshot
	if len(data.AddressDetails) > 0 {
		if err := json.Unmarshal(data.AddressDetails, &snapshot); err != nil {
			return nil, errors.Wrap(err, "failed to decode order address snapshot")
		}
	}

	order := &entity.Order{
		ID:            data.ID,
		UserID:        data.UserID,
		Status:        entity.OrderStatus(data.Status),
		PaymentMethod: data.PaymentMethod,
		Currency:      data.Currency,
		Subtotal:      data.Subtotal,
		DeliveryFee:   data.DeliveryFee,
		Total:         data.TotalAmount,
		Notes:         data.Notes,
		Address:       snapshot,
		Items:         make([]*entity.OrderItem, 0, len(data.Items)),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	for _, itemM := range data.Items {
		order.Items = append(order.Items, &entity.OrderItem{
			ID:          itemM.ID,
			OrderID:     itemM.OrderID,
			ProductID:   itemM.ProductID,
			ProductName: itemM.ProductName,
			Quantity:    itemM.Quantity,
			UnitPrice:   itemM.UnitPrice,
			TotalPrice:  itemM.TotalPrice,
		})
	}

	return order, nil
}

func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	snapshot, err := json.Marshal(data.Address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order address snapshot")
	}

	orderM := &model.OrderModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Status:         string(data.Status),
		PaymentMethod:  data.PaymentMethod,
		Currency:       data.Currency,
		Subtotal:       data.Subtotal,
		DeliveryFee:    data.DeliveryFee,
		TotalAmount:    data.Total,
		Notes:          data.Notes,
		AddressDetails: datatypes.JSON(snapshot),
		Items:          make([]*model.OrderItemModel, 0, len(data.Items)),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, &model.OrderItemModel{
			ID:          item.ID,
			OrderID:     data.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return orderM, nil
}
