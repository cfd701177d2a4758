// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shop/config"
	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/router/handler"
	"shop/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	AddressHandler  *handler.AddressHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	WalletHandler   *handler.WalletHandler
	PromoHandler    *handler.PromoHandler
	ReviewHandler   *handler.ReviewHandler
	FavoriteHandler *handler.FavoriteHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Metrics
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	addressHandler  *handler.AddressHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	walletHandler   *handler.WalletHandler
	promoHandler    *handler.PromoHandler
	reviewHandler   *handler.ReviewHandler
	favoriteHandler *handler.FavoriteHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Metrics
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		addressHandler:  params.AddressHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		walletHandler:   params.WalletHandler,
		promoHandler:    params.PromoHandler,
		reviewHandler:   params.ReviewHandler,
		favoriteHandler: params.FavoriteHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/password-reset", r.authHandler.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", r.authHandler.ConfirmPasswordReset)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	addressGroup := apiV1.Group("/addresses")
	{
		addressGroup.POST("", r.addressHandler.AddAddress)
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.PUT("/:addressId", r.addressHandler.UpdateAddress)
		addressGroup.DELETE("/:addressId", r.addressHandler.DeleteAddress)
	}

	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.POST("", r.cartHandler.AddItem)
		cartGroup.GET("", r.cartHandler.ListItems)
		cartGroup.PATCH("", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/:productId", r.cartHandler.RemoveItem)
	}

	orderGroup := apiV1.Group("/orders")
	{
		orderGroup.POST("/checkout", r.orderHandler.Checkout)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.PATCH("/complete", r.orderHandler.CompleteOrders)
	}

	apiV1.POST("/payments", r.orderHandler.Pay)
	apiV1.GET("/wallet", r.walletHandler.GetBalance)

	promoGroup := apiV1.Group("/promo-codes")
	{
		promoGroup.POST("/redeem", r.promoHandler.Redeem)
		promoGroup.GET("/:code", r.promoHandler.Get)
	}

	favoriteGroup := apiV1.Group("/favorites")
	{
		favoriteGroup.POST("", r.favoriteHandler.ToggleFavorite)
		favoriteGroup.GET("", r.favoriteHandler.ListFavorites)
	}

	productGroup := apiV1.Group("/products/:productId")
	{
		productGroup.POST("/reviews", r.reviewHandler.AddReview)
		productGroup.PATCH("/reviews", r.reviewHandler.UpdateReview)
		productGroup.DELETE("/reviews", r.reviewHandler.DeleteReview)
		productGroup.GET("/reviews", r.reviewHandler.ListReviews)
		productGroup.POST("/like", r.reviewHandler.Like)
		productGroup.DELETE("/like", r.reviewHandler.Unlike)
		productGroup.GET("/likes", r.reviewHandler.CountLikes)
	}
}

// RegisterMetricsRoute exposes prometheus metrics when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
