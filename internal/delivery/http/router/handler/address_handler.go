package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address-related handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// CreateAddressRequest represents the request body for saving an address.
// Coordinates are optional; an address without them is never blocked at checkout.
type CreateAddressRequest struct {
	Label              string   `json:"label" validate:"max=50"`
	FullAddress        string   `json:"full_address" validate:"required,max=500"`
	City               string   `json:"city" validate:"required,max=100"`
	Area               string   `json:"area" validate:"max=100"`
	Building           string   `json:"building" validate:"max=100"`
	Floor              string   `json:"floor" validate:"max=20"`
	Landmark           string   `json:"landmark" validate:"max=200"`
	Notes              string   `json:"notes" validate:"max=500"`
	IsDefault          bool     `json:"is_default"`
	Latitude           *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude          *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,longitude"`
	UseCurrentLocation bool     `json:"use_current_location"`
}

// UpdateAddressRequest represents the request body for updating an address
type UpdateAddressRequest struct {
	Label              *string  `json:"label,omitempty" validate:"omitempty,max=50"`
	FullAddress        *string  `json:"full_address,omitempty" validate:"omitempty,max=500"`
	City               *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	Area               *string  `json:"area,omitempty" validate:"omitempty,max=100"`
	Building           *string  `json:"building,omitempty" validate:"omitempty,max=100"`
	Floor              *string  `json:"floor,omitempty" validate:"omitempty,max=20"`
	Landmark           *string  `json:"landmark,omitempty" validate:"omitempty,max=200"`
	Notes              *string  `json:"notes,omitempty" validate:"omitempty,max=500"`
	Latitude           *float64 `json:"latitude,omitempty" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude          *float64 `json:"longitude,omitempty" validate:"required_with=Latitude,omitempty,longitude"`
	ClearLocation      bool     `json:"clear_location"`
	UseCurrentLocation bool     `json:"use_current_location"`
}

// ListAddresses returns the caller's addresses and current selection.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	book, err := h.addressUC.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, book, "Addresses retrieved successfully")
}

// CreateAddress saves a new address and selects it.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "address", err)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.addressUC.AddAddress(c.Request().Context(), userID, &usecase.AddAddressInput{
		Label:              req.Label,
		FullAddress:        req.FullAddress,
		City:               req.City,
		Area:               req.Area,
		Building:           req.Building,
		Floor:              req.Floor,
		Landmark:           req.Landmark,
		Notes:              req.Notes,
		IsDefault:          req.IsDefault,
		Location:           toGeoPoint(req.Latitude, req.Longitude),
		UseCurrentLocation: req.UseCurrentLocation,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, addressMessage(result, "Address saved"))
}

// UpdateAddress applies a partial update to one of the caller's addresses.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "address")
	}

	var req UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "address", err)
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.addressUC.UpdateAddress(c.Request().Context(), userID, addressID, &usecase.UpdateAddressInput{
		Label:              req.Label,
		FullAddress:        req.FullAddress,
		City:               req.City,
		Area:               req.Area,
		Building:           req.Building,
		Floor:              req.Floor,
		Landmark:           req.Landmark,
		Notes:              req.Notes,
		Location:           toGeoPoint(req.Latitude, req.Longitude),
		ClearLocation:      req.ClearLocation,
		UseCurrentLocation: req.UseCurrentLocation,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, addressMessage(result, "Address updated"))
}

// DeleteAddress removes one of the caller's addresses.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "address")
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted successfully")
}

// SetDefaultAddress marks one of the caller's addresses as default.
func (h *AddressHandler) SetDefaultAddress(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "address")
	}

	address, err := h.addressUC.SetDefaultAddress(c.Request().Context(), userID, addressID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address, "Default address updated")
}

// SelectAddress makes one of the caller's addresses the delivery target.
func (h *AddressHandler) SelectAddress(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "address")
	}

	status, err := h.addressUC.SelectAddress(c.Request().Context(), userID, addressID)
	if err != nil {
		return handleAppError(c, err)
	}

	message := "Address selected"
	if status.Verdict == entity.VerdictIneligible {
		message += ", " + outsideNotice(entity.Evaluation{Verdict: status.Verdict, DistanceKm: status.DistanceKm})
	}

	return response.Success(c, http.StatusOK, status, message)
}

func toGeoPoint(latitude, longitude *float64) *entity.GeoPoint {
	if latitude == nil || longitude == nil {
		return nil
	}

	return &entity.GeoPoint{Latitude: *latitude, Longitude: *longitude}
}

func addressMessage(result *usecase.AddressResult, base string) string {
	if result.Warning {
		return base + ", " + outsideNotice(result.Evaluation)
	}

	return base + " successfully"
}
