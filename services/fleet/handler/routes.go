package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetops/fleetops/internal/pkg/middleware"
	"github.com/fleetops/fleetops/internal/pkg/models"
	"github.com/fleetops/fleetops/services/fleet"
	httphandler "github.com/fleetops/fleetops/services/fleet/handler/http"
)

// Handler registers the fleet administration routes
type Handler struct {
	truck   *httphandler.TruckHandler
	trailer *httphandler.TrailerHandler
	cfg     *models.Config
}

// NewHandler creates a new fleet handler
func NewHandler(fleetUC fleet.FleetUC, cfg *models.Config) *Handler {
	return &Handler{
		truck:   httphandler.NewTruckHandler(fleetUC),
		trailer: httphandler.NewTrailerHandler(fleetUC),
		cfg:     cfg,
	}
}

// RegisterRoutes mounts the truck and trailer endpoints under /api/v1.
// Reads are open to any authenticated user; every mutation is admin-only.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	adminOnly := middleware.AdminOnlyMiddleware()

	trucks := e.Group("/api/v1/trucks", auth)
	trucks.GET("", h.truck.ListTrucks)
	trucks.GET("/:id", h.truck.GetTruck)
	trucks.POST("", h.truck.CreateTruck, adminOnly)
	trucks.PATCH("/:id", h.truck.UpdateTruck, adminOnly)
	trucks.DELETE("/:id", h.truck.DeleteTruck, adminOnly)
	trucks.POST("/:id/maintenance", h.truck.AddMaintenanceLog, adminOnly)

	trailers := e.Group("/api/v1/trailers", auth)
	trailers.GET("", h.trailer.ListTrailers)
	trailers.GET("/:id", h.trailer.GetTrailer)
	trailers.POST("", h.trailer.CreateTrailer, adminOnly)
	trailers.PATCH("/:id", h.trailer.UpdateTrailer, adminOnly)
	trailers.DELETE("/:id", h.trailer.DeleteTrailer, adminOnly)

	e.GET("/api/v1/fleet/summary", h.truck.Summary, auth, adminOnly)
}
