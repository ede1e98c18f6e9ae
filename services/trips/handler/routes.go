package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetops/fleetops/internal/pkg/middleware"
	"github.com/fleetops/fleetops/internal/pkg/models"
	"github.com/fleetops/fleetops/services/trips"
	httphandler "github.com/fleetops/fleetops/services/trips/handler/http"
)

// Handler registers the trip routes
type Handler struct {
	trip *httphandler.TripHandler
	cfg  *models.Config
}

// NewHandler creates a new trip handler
func NewHandler(tripUC trips.TripUC, cfg *models.Config) *Handler {
	return &Handler{
		trip: httphandler.NewTripHandler(tripUC),
		cfg:  cfg,
	}
}

// RegisterRoutes mounts the trip endpoints under /api/v1/trips. Every route
// requires a valid token; creation and deletion are admin-only.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	adminOnly := middleware.AdminOnlyMiddleware()

	tripsGroup := e.Group("/api/v1/trips", auth)
	tripsGroup.POST("", h.trip.CreateTrip, adminOnly)
	tripsGroup.GET("", h.trip.ListTrips)
	tripsGroup.GET("/:id", h.trip.GetTrip)
	tripsGroup.PATCH("/:id", h.trip.UpdateTrip)
	tripsGroup.DELETE("/:id", h.trip.DeleteTrip, adminOnly)
}
