// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	ProfileHandler      *handler.ProfileHandler
	ProductHandler      *handler.ProductHandler
	BrandHandler        *handler.BrandHandler
	ProductImageHandler *handler.ProductImageHandler
	LikeHandler         *handler.LikeHandler
	OrderHandler        *handler.OrderHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	profileHandler      *handler.ProfileHandler
	productHandler      *handler.ProductHandler
	brandHandler        *handler.BrandHandler
	productImageHandler *handler.ProductImageHandler
	likeHandler         *handler.LikeHandler
	orderHandler        *handler.OrderHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		profileHandler:      params.ProfileHandler,
		productHandler:      params.ProductHandler,
		brandHandler:        params.BrandHandler,
		productImageHandler: params.ProductImageHandler,
		likeHandler:         params.LikeHandler,
		orderHandler:        params.OrderHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
	}

	// Profile routes, always caller-scoped
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PATCH("", r.profileHandler.UpdateProfile)
	}

	// Product routes: reads are public, writes require the owner
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/my", r.productHandler.ListMine, r.authMiddleware.Authenticate)
		productGroup.POST("", r.productHandler.Create, r.authMiddleware.Authenticate)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.PATCH("/:id", r.productHandler.Update, r.authMiddleware.Authenticate)
		productGroup.DELETE("/:id", r.productHandler.Delete, r.authMiddleware.Authenticate)
	}

	// Brand routes, read-only
	brandGroup := e.Group("/brands")
	{
		brandGroup.GET("", r.brandHandler.List)
		brandGroup.GET("/:id", r.brandHandler.Get)
	}

	// Product image routes: reads are public, writes follow product ownership
	imageGroup := e.Group("/product-images")
	{
		imageGroup.GET("", r.productImageHandler.List)
		imageGroup.GET("/:id", r.productImageHandler.Get)
		imageGroup.POST("", r.productImageHandler.Create, r.authMiddleware.Authenticate)
		imageGroup.PATCH("/:id", r.productImageHandler.Update, r.authMiddleware.Authenticate)
		imageGroup.DELETE("/:id", r.productImageHandler.Delete, r.authMiddleware.Authenticate)
	}

	// Like routes
	likeGroup := e.Group("/likes")
	likeGroup.Use(r.authMiddleware.Authenticate)
	{
		likeGroup.GET("", r.likeHandler.List)
		likeGroup.POST("/toggle", r.likeHandler.Toggle)
	}

	// Order routes, always caller-scoped
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.PATCH("/:id", r.orderHandler.Update)
		orderGroup.DELETE("/:id", r.orderHandler.Delete)
	}
}
