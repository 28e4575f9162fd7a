package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/eligibility"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// ZoneHandlerParams holds dependencies for ZoneHandler, injected by Fx.
type ZoneHandlerParams struct {
	fx.In

	ZoneUC usecase.ZoneUsecase
	Logger *slog.Logger
}

// ZoneHandler exposes the delivery zone.
type ZoneHandler struct {
	zoneUC usecase.ZoneUsecase
	logger *slog.Logger
}

// NewZoneHandler is the constructor for ZoneHandler
func NewZoneHandler(params ZoneHandlerParams) *ZoneHandler {
	return &ZoneHandler{
		zoneUC: params.ZoneUC,
		logger: params.Logger,
	}
}

// ZoneResponse is the delivery zone with map helpers.
type ZoneResponse struct {
	Zone entity.DeliveryZone `json:"zone"`
	// BBox is [minLng, minLat, maxLng, maxLat].
	BBox    [4]float64       `json:"bbox"`
	Feature *geojson.Feature `json:"feature"`
}

// UpdateZoneRequest represents the request body for replacing the delivery zone
type UpdateZoneRequest struct {
	CenterLatitude   *float64 `json:"center_latitude" validate:"required,latitude"`
	CenterLongitude  *float64 `json:"center_longitude" validate:"required,longitude"`
	DeliveryRadiusKm float64  `json:"delivery_radius_km" validate:"required,gt=0,lte=500"`
}

// GetZone returns the active delivery zone.
func (h *ZoneHandler) GetZone(c echo.Context) error {
	zone := h.zoneUC.GetZone(c.Request().Context())

	return response.Success(c, http.StatusOK, newZoneResponse(zone), "Delivery zone retrieved successfully")
}

// UpdateZone replaces the delivery zone.
func (h *ZoneHandler) UpdateZone(c echo.Context) error {
	var req UpdateZoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "zone", err)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	zone, err := h.zoneUC.UpdateZone(c.Request().Context(), &usecase.UpdateZoneInput{
		CenterLatitude:   *req.CenterLatitude,
		CenterLongitude:  *req.CenterLongitude,
		DeliveryRadiusKm: req.DeliveryRadiusKm,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newZoneResponse(zone), "Delivery zone updated successfully")
}

func newZoneResponse(zone entity.DeliveryZone) ZoneResponse {
	bound := eligibility.ZoneBound(zone)

	return ZoneResponse{
		Zone:    zone,
		BBox:    [4]float64{bound.Min.Lon(), bound.Min.Lat(), bound.Max.Lon(), bound.Max.Lat()},
		Feature: eligibility.ZoneFeature(zone),
	}
}
