package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/geolocation"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EligibilityHandlerParams holds dependencies for EligibilityHandler, injected by Fx.
type EligibilityHandlerParams struct {
	fx.In

	EligibilityUC usecase.EligibilityUsecase
	Logger        *slog.Logger
}

// EligibilityHandler serves delivery checks and location capture.
type EligibilityHandler struct {
	eligibilityUC usecase.EligibilityUsecase
	logger        *slog.Logger
}

// NewEligibilityHandler is the constructor for EligibilityHandler
func NewEligibilityHandler(params EligibilityHandlerParams) *EligibilityHandler {
	return &EligibilityHandler{
		eligibilityUC: params.EligibilityUC,
		logger:        params.Logger,
	}
}

// CheckPointRequest represents the request body for an ad-hoc delivery check
type CheckPointRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// ReportLocationRequest carries either a device position or a device error code.
type ReportLocationRequest struct {
	Latitude   *float64  `json:"latitude" validate:"required_without=ErrorCode,omitempty,latitude"`
	Longitude  *float64  `json:"longitude" validate:"required_without=ErrorCode,omitempty,longitude"`
	Accuracy   float64   `json:"accuracy" validate:"gte=0"`
	Timestamp  time.Time `json:"timestamp"`
	ErrorCode  int       `json:"error_code" validate:"gte=0"`
	Message    string    `json:"message" validate:"max=500"`
	Generation uint64    `json:"generation"`
}

// CheckPoint classifies arbitrary coordinates against the delivery zone.
func (h *EligibilityHandler) CheckPoint(c echo.Context) error {
	var req CheckPointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "coordinates", err)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	eval, err := h.eligibilityUC.EvaluatePoint(c.Request().Context(), entity.GeoPoint{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, eval, "Delivery check completed")
}

// GetEligibility returns the caller's selected address and verdict.
func (h *EligibilityHandler) GetEligibility(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	status, err := h.eligibilityUC.GetEligibility(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status, "Delivery eligibility retrieved successfully")
}

// AcquireLocation locates the caller through the server-side position source.
func (h *EligibilityHandler) AcquireLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	ctx := geolocation.WithClientIP(c.Request().Context(), c.RealIP())
	check, err := h.eligibilityUC.AcquireLocation(ctx, userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, check, locationMessage(check))
}

// ReportLocation applies a position, or a failure, reported by the device.
func (h *EligibilityHandler) ReportLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req ReportLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "location report", err)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	check, err := h.eligibilityUC.ReportLocation(c.Request().Context(), userID, &usecase.LocationReport{
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		AccuracyM:  req.Accuracy,
		Timestamp:  req.Timestamp,
		ErrorCode:  req.ErrorCode,
		Message:    req.Message,
		Generation: req.Generation,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, check, locationMessage(check))
}

func locationMessage(check *usecase.LocationCheck) string {
	switch {
	case !check.Applied:
		return "Location discarded, the selected address changed"
	case check.Warning:
		return "Location captured, " + outsideNotice(check.Evaluation)
	default:
		return "Location captured"
	}
}
