// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"bakery/config"
	"bakery/internal/delivery/http/middleware"
	"bakery/internal/delivery/http/router/handler"
	"bakery/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// PhotoUploadPath is exempt from the global body limit; it carries its own.
const PhotoUploadPath = "/profile/photos"

type RouterParams struct {
	fx.In

	Config         *config.Config
	AuthMiddleware *middleware.AuthMiddleware
	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	PhotoHandler   *handler.PhotoHandler
	AdminHandler   *handler.AdminHandler
	OrderHandler   *handler.OrderHandler
	BakerHandler   *handler.BakerHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	authMiddleware *middleware.AuthMiddleware
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	photoHandler   *handler.PhotoHandler
	adminHandler   *handler.AdminHandler
	orderHandler   *handler.OrderHandler
	bakerHandler   *handler.BakerHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		authMiddleware: params.AuthMiddleware,
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		photoHandler:   params.PhotoHandler,
		adminHandler:   params.AdminHandler,
		orderHandler:   params.OrderHandler,
		bakerHandler:   params.BakerHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Browser auth; the token travels in the session cookie
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Caller's own profile, cookie or bearer
	profileGroup := e.Group("/profile", r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.POST("", r.profileHandler.SubmitProfile)
		profileGroup.POST("/photos", r.photoHandler.Upload, echomiddleware.BodyLimit(r.photoBodyLimit()))
	}
	e.GET(r.photoPublicPath()+"/*", r.photoHandler.Serve)

	// Public directory
	bakerGroup := e.Group("/bakers")
	{
		bakerGroup.GET("", r.bakerHandler.ListBakers)
		bakerGroup.GET("/:id", r.bakerHandler.GetBaker)
		bakerGroup.GET("/:id/qrcode", r.bakerHandler.QRCode)
	}

	orderGroup := e.Group("/orders", r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
	}

	// Baker review, ADMIN only
	adminGroup := e.Group("/admin", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/bakers", r.adminHandler.ListBakers)
		adminGroup.PATCH("/bakers/:id", r.adminHandler.UpdateBakerStatus)
	}

	r.registerMobileRoutes(e)
}

// registerMobileRoutes mirrors the API for mobile clients, which only send bearer tokens.
func (r *router) registerMobileRoutes(e *echo.Echo) {
	mobile := e.Group("/mobile")

	mobileAuth := mobile.Group("/auth")
	{
		mobileAuth.POST("/register", r.authHandler.MobileRegister)
		mobileAuth.POST("/login", r.authHandler.MobileLogin)
	}

	mobileBakers := mobile.Group("/bakers")
	{
		mobileBakers.GET("", r.bakerHandler.ListBakers)
		mobileBakers.GET("/:id", r.bakerHandler.GetBaker)
	}

	mobileOrders := mobile.Group("/orders", r.authMiddleware.AuthenticateBearer)
	{
		mobileOrders.POST("", r.orderHandler.PlaceOrder)
		mobileOrders.GET("", r.orderHandler.ListOrders)
	}
}

func (r *router) photoBodyLimit() string {
	if r.cfg.Storage != nil && r.cfg.Storage.MaxPhotoSize != "" {
		return r.cfg.Storage.MaxPhotoSize
	}

	return "5MB"
}

func (r *router) photoPublicPath() string {
	if r.cfg.Storage != nil && r.cfg.Storage.PublicPath != "" {
		return "/" + strings.Trim(r.cfg.Storage.PublicPath, "/")
	}

	return "/photos"
}
