// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"guardian/internal/delivery/http/middleware"
	"guardian/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GeofenceHandler *handler.GeofenceHandler
	SafetyHandler   *handler.SafetyHandler
	AlertHandler    *handler.AlertHandler
	ContactHandler  *handler.ContactHandler
	MLHandler       *handler.MLHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	geofenceHandler *handler.GeofenceHandler
	safetyHandler   *handler.SafetyHandler
	alertHandler    *handler.AlertHandler
	contactHandler  *handler.ContactHandler
	mlHandler       *handler.MLHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		geofenceHandler: params.GeofenceHandler,
		safetyHandler:   params.SafetyHandler,
		alertHandler:    params.AlertHandler,
		contactHandler:  params.ContactHandler,
		mlHandler:       params.MLHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	// Geofence lifecycle
	geofenceGroup := api.Group("/geofences")
	{
		geofenceGroup.POST("", r.geofenceHandler.CreateGeofence)
		geofenceGroup.GET("/active", r.geofenceHandler.GetActiveGeofence)
		geofenceGroup.GET("/history", r.geofenceHandler.ListHistory)
		geofenceGroup.DELETE("/:id", r.geofenceHandler.DeleteGeofence)
	}

	// Location checks and alerts
	api.POST("/location/check", r.safetyHandler.CheckLocation)

	alertGroup := api.Group("/alerts")
	{
		alertGroup.POST("/panic", r.safetyHandler.TriggerPanic)
		alertGroup.GET("", r.alertHandler.ListAlerts)
	}

	// Emergency contacts
	contactGroup := api.Group("/contacts")
	{
		contactGroup.POST("", r.contactHandler.CreateContact)
		contactGroup.GET("", r.contactHandler.ListContacts)
		contactGroup.PUT("/:id", r.contactHandler.UpdateContact)
		contactGroup.DELETE("/:id", r.contactHandler.DeleteContact)
	}

	// Anomaly analysis
	mlGroup := api.Group("/ml")
	{
		mlGroup.POST("/analyze/:geofenceId", r.mlHandler.AnalyzeGeofence)
		mlGroup.GET("/data", r.mlHandler.ListSamples)
	}
}
