// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ZoneHandler        *handler.ZoneHandler
	EligibilityHandler *handler.EligibilityHandler
	AddressHandler     *handler.AddressHandler
	OrderHandler       *handler.OrderHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	zoneHandler        *handler.ZoneHandler
	eligibilityHandler *handler.EligibilityHandler
	addressHandler     *handler.AddressHandler
	orderHandler       *handler.OrderHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		zoneHandler:        params.ZoneHandler,
		eligibilityHandler: params.EligibilityHandler,
		addressHandler:     params.AddressHandler,
		orderHandler:       params.OrderHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public delivery information
	deliveryGroup := e.Group("/delivery")
	{
		deliveryGroup.GET("/zone", r.zoneHandler.GetZone)
		deliveryGroup.POST("/check", r.eligibilityHandler.CheckPoint)
	}

	// Customer routes that require authentication
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("/eligibility", r.eligibilityHandler.GetEligibility)
		meGroup.POST("/location/acquire", r.eligibilityHandler.AcquireLocation)
		meGroup.POST("/location/report", r.eligibilityHandler.ReportLocation)

		meGroup.GET("/addresses", r.addressHandler.ListAddresses)
		meGroup.POST("/addresses", r.addressHandler.CreateAddress)
		meGroup.PATCH("/addresses/:id", r.addressHandler.UpdateAddress)
		meGroup.DELETE("/addresses/:id", r.addressHandler.DeleteAddress)
		meGroup.POST("/addresses/:id/default", r.addressHandler.SetDefaultAddress)
		meGroup.POST("/addresses/:id/select", r.addressHandler.SelectAddress)

		meGroup.POST("/orders", r.orderHandler.PlaceOrder)
		meGroup.GET("/orders", r.orderHandler.ListOrders)
		meGroup.GET("/orders/:id", r.orderHandler.GetOrder)
		meGroup.GET("/orders/:id/qrcode", r.orderHandler.GetOrderQRCode)
	}

	// Store staff routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.PUT("/delivery/zone", r.zoneHandler.UpdateZone)
	}
}
