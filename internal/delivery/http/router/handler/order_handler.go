package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout and order history.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CartItemRequest is one cart line.
type CartItemRequest struct {
	ProductID   uuid.UUID `json:"product_id" validate:"required"`
	ProductName string    `json:"product_name" validate:"required,max=200"`
	Quantity    int       `json:"quantity" validate:"required,gt=0,lte=999"`
	UnitPrice   int64     `json:"unit_price" validate:"gte=0,lte=1000000000000"`
}

// PlaceOrderRequest represents the checkout request body
type PlaceOrderRequest struct {
	Items []CartItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes string            `json:"notes" validate:"max=500"`
}

// PlaceOrder checks out the cart to the selected address.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "order", err)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := &usecase.PlaceOrderInput{
		Items: make([]usecase.CartItem, 0, len(req.Items)),
		Notes: req.Notes,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.CartItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), userID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed, total "+util.FormatAmount(order.Total, order.Currency))
}

// ListOrders returns the caller's orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrder returns one of the caller's orders.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "order")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// GetOrderQRCode returns the order tracking QR code as a PNG image.
func (h *OrderHandler) GetOrderQRCode(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "order")
	}

	png, err := h.orderUC.OrderTrackingQR(c.Request().Context(), userID, orderID)
	if err != nil {
		return handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
