// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"personapi/config"
	"personapi/internal/delivery/api/router/handler"
	"personapi/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PersonHandler *handler.PersonHandler
	Metrics       *metrics.Recorder `optional:"true"`
	Config        *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	personHandler *handler.PersonHandler
	metrics       *metrics.Recorder
	config        *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		personHandler: params.PersonHandler,
		metrics:       params.Metrics,
		config:        params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	personsGroup := apiV1.Group("/persons")
	{
		personsGroup.GET("", r.personHandler.ListPersons)
		personsGroup.GET("/count", r.personHandler.CountPersons)
		personsGroup.POST("/batch", r.personHandler.CreatePersons)
		personsGroup.POST("/person", r.personHandler.CreatePerson)
		personsGroup.GET("/person/:id", r.personHandler.GetPerson)
		personsGroup.PUT("/person/:id", r.personHandler.UpdatePerson)
		personsGroup.DELETE("/person/:id", r.personHandler.DeletePerson)
	}
}

// RegisterMetricsRoutes exposes the Prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoutes(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
