// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dealdrop/internal/delivery/http/middleware"
	"dealdrop/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ListingHandler   *handler.ListingHandler
	FlashDealHandler *handler.FlashDealHandler
	FavoriteHandler  *handler.FavoriteHandler
	DeviceHandler    *handler.DeviceHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	listingHandler   *handler.ListingHandler
	flashDealHandler *handler.FlashDealHandler
	favoriteHandler  *handler.FavoriteHandler
	deviceHandler    *handler.DeviceHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		listingHandler:   params.ListingHandler,
		flashDealHandler: params.FlashDealHandler,
		favoriteHandler:  params.FavoriteHandler,
		deviceHandler:    params.DeviceHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public browsing routes, no authentication required
	dealsGroup := e.Group("/deals")
	{
		dealsGroup.GET("/active", r.flashDealHandler.GetActiveFlashDeals)
		dealsGroup.GET("/:id", r.flashDealHandler.GetFlashDeal)
	}

	// Vendor listing routes, vendors manage their own storefronts
	listingGroup := e.Group("/listings")
	listingGroup.Use(r.authMiddleware.Authenticate) // First, check if logged in
	{
		listingGroup.GET("/:id", r.listingHandler.GetListing)

		vendorGroup := listingGroup.Group("")
		vendorGroup.Use(r.authMiddleware.RequireRole("vendor")) // Then, check for the role
		{
			vendorGroup.POST("", r.listingHandler.CreateListing)
			vendorGroup.GET("/mine", r.listingHandler.GetMyListings)
			vendorGroup.PUT("/:id/location", r.listingHandler.UpdateLocation)
			vendorGroup.DELETE("/:id", r.listingHandler.DeleteListing)
			vendorGroup.POST("/:listingId/deals", r.flashDealHandler.PostFlashDeal)
		}
	}

	// Redemption requires a logged-in user
	redeemGroup := e.Group("/deals")
	redeemGroup.Use(r.authMiddleware.Authenticate)
	{
		redeemGroup.POST("/:id/redeem", r.flashDealHandler.RedeemFlashDeal)
	}

	// Favorite routes that require authentication
	favoriteGroup := e.Group("/favorites")
	favoriteGroup.Use(r.authMiddleware.Authenticate)
	{
		favoriteGroup.GET("", r.favoriteHandler.ListFavorites)
		favoriteGroup.POST("/:vendorId", r.favoriteHandler.FavoriteVendor)
		favoriteGroup.DELETE("/:vendorId", r.favoriteHandler.UnfavoriteVendor)
		favoriteGroup.PUT("/:vendorId/notify", r.favoriteHandler.SetNotifyWhenNearby)
		favoriteGroup.GET("/:vendorId/qr", r.favoriteHandler.GenerateFavoriteQR)
		favoriteGroup.POST("/from-qr", r.favoriteHandler.FavoriteFromQR)
	}

	// Alert preference routes that require authentication
	alertGroup := e.Group("/alerts")
	alertGroup.Use(r.authMiddleware.Authenticate)
	{
		alertGroup.GET("/preferences", r.favoriteHandler.GetAlertPreferences)
		alertGroup.PUT("/preferences", r.favoriteHandler.SaveAlertPreferences)
		alertGroup.POST("/nearby-check", r.favoriteHandler.CheckNearbyFavorites)
	}

	// Device registration routes for push notifications
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		deviceGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
