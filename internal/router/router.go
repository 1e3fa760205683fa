package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/wayfarerhq/footprints/internal/handler"
	"github.com/wayfarerhq/footprints/internal/telemetry"
)

// RegisterRoutes wires every endpoint onto the provided Echo
// instance. The health check and metrics endpoints live at the top
// level; everything else is grouped under /v1. No route carries
// authentication — the service has no session model.
func RegisterRoutes(e *echo.Echo, tel *telemetry.Telemetry, u *handler.UserHandler, t *handler.TripHandler, l *handler.LocationHandler, f *handler.FootprintHandler) {
	// Liveness probe for load balancers and monitoring.
	e.GET("/healthz", handler.Health)
	// Prometheus metrics from the private registry.
	e.GET("/metrics", echo.WrapHandler(tel.Handler()))

	v1 := e.Group("/v1")

	v1.GET("/users", u.ListUsers)
	v1.POST("/users", u.CreateUser)
	v1.DELETE("/users/:id", u.DeleteUser)
	v1.GET("/users/:id/collections", u.ListCollections)

	v1.GET("/trips", t.ListTrips)
	v1.POST("/trips", t.CreateTrip)
	v1.DELETE("/trips/:id", t.DeleteTrip)
	v1.POST("/trips/search", t.SearchTrips)

	v1.GET("/locations", l.ListLocations)
	v1.POST("/locations", l.CreateLocation)

	v1.GET("/footprints", f.ListFootprints)
	v1.POST("/footprints", f.CreateFootprint)
	v1.POST("/footprints/search", f.SearchFootprints)
	v1.GET("/footprints/:id", f.GetFootprint)
	v1.PUT("/footprints/:id", f.UpdateFootprint)
	v1.POST("/footprints/:id/comments", f.AddComment)
	v1.POST("/footprints/:id/collect", f.ToggleCollect)
}
