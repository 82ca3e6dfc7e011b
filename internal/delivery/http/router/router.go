// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shiplog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LogbookHandler  *handler.LogbookHandler
	TrackingHandler *handler.TrackingHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	logbookHandler  *handler.LogbookHandler
	trackingHandler *handler.TrackingHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		logbookHandler:  params.LogbookHandler,
		trackingHandler: params.TrackingHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Logbook views and mutations
	logbookGroup := e.Group("/logbook")
	{
		logbookGroup.GET("", r.logbookHandler.GetSnapshot)
		logbookGroup.POST("/refresh", r.logbookHandler.Refresh)
		logbookGroup.GET("/entries", r.logbookHandler.GetEntries)
		logbookGroup.GET("/entries/by-date", r.logbookHandler.GetEntriesByDate)
		logbookGroup.DELETE("/entries/:id", r.logbookHandler.DeleteEntry)
		logbookGroup.GET("/voyages", r.logbookHandler.GetVoyages)
		logbookGroup.GET("/voyages/archived", r.logbookHandler.GetArchivedVoyages)
		logbookGroup.GET("/career", r.logbookHandler.GetCareer)
		logbookGroup.DELETE("/voyages/:id", r.logbookHandler.DeleteVoyage)
		logbookGroup.POST("/voyages/:id/archive", r.logbookHandler.ArchiveVoyage)
		logbookGroup.POST("/voyages/:id/unarchive", r.logbookHandler.UnarchiveVoyage)
	}

	// Tracking session commands
	trackingGroup := e.Group("/tracking")
	{
		trackingGroup.GET("/status", r.trackingHandler.GetStatus)
		trackingGroup.POST("/start", r.trackingHandler.Start)
		trackingGroup.POST("/pause", r.trackingHandler.Pause)
		trackingGroup.POST("/stop", r.trackingHandler.Stop)
		trackingGroup.POST("/rapid-sampling", r.trackingHandler.SetRapidSampling)
	}
}
