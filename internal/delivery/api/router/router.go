// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"editorradar/config"
	"editorradar/internal/delivery/api/middleware"
	"editorradar/internal/delivery/api/router/handler"
	"editorradar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DiscoveryHandler *handler.DiscoveryHandler
	SessionHandler   *handler.SessionHandler
	LocationHandler  *handler.LocationHandler
	TestHandler      *handler.TestHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	discoveryHandler *handler.DiscoveryHandler
	sessionHandler   *handler.SessionHandler
	locationHandler  *handler.LocationHandler
	testHandler      *handler.TestHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		discoveryHandler: params.DiscoveryHandler,
		sessionHandler:   params.SessionHandler,
		locationHandler:  params.LocationHandler,
		testHandler:      params.TestHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// All API v1 routes require authentication
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.GET("/nearby", r.discoveryHandler.SearchNearby)

	sessionGroup := apiV1.Group("/discovery/session")
	{
		sessionGroup.POST("", r.sessionHandler.StartSession)
		sessionGroup.GET("", r.sessionHandler.GetSession)
	}

	locationGroup := apiV1.Group("/location")
	{
		locationGroup.POST("/consent", r.sessionHandler.RecordConsent)

		// Only editors own a location record
		settingsGroup := locationGroup.Group("/settings")
		settingsGroup.Use(r.authMiddleware.RequireRole(entity.RoleEditor))
		{
			settingsGroup.GET("", r.locationHandler.GetSettings)
			settingsGroup.PATCH("", r.locationHandler.UpdateSettings)
		}
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
	testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
}
