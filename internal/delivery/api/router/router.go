// Package router contains routing setup for the internal ingest API.
package router

import (
	"shiplog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all the handlers that need to be registered.
type RouterParams struct {
	fx.In

	IngestHandler *handler.IngestHandler
}

type router struct {
	ingestHandler *handler.IngestHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		ingestHandler: params.IngestHandler,
	}
}

// RegisterRoutes sets up the internal API routes. These endpoints are only
// reachable from the device sync agent, never exposed publicly.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	internalGroup := e.Group("/internal")
	{
		internalGroup.POST("/entries/batch", r.ingestHandler.IngestBatch)
		internalGroup.POST("/queue/entries", r.ingestHandler.EnqueueOffline)
		internalGroup.POST("/queue/drain", r.ingestHandler.DrainQueue)
	}
}
