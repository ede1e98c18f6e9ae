package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fleetops/fleetops/internal/pkg/models"
	"github.com/fleetops/fleetops/internal/utils"
	"github.com/fleetops/fleetops/services/fleet"
)

// TruckHandler handles HTTP requests for truck administration
type TruckHandler struct {
	fleetUC fleet.FleetUC
}

// NewTruckHandler creates a new truck HTTP handler
func NewTruckHandler(fleetUC fleet.FleetUC) *TruckHandler {
	return &TruckHandler{fleetUC: fleetUC}
}

// CreateTruck handles POST /trucks
func (h *TruckHandler) CreateTruck(c echo.Context) error {
	var req models.CreateTruckRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Plate == "" || req.Model == "" {
		return utils.BadRequestResponse(c, "Plate and model are required")
	}

	truck, err := h.fleetUC.CreateTruck(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, truck)
}

// GetTruck handles GET /trucks/:id
func (h *TruckHandler) GetTruck(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid truck ID")
	}

	truck, err := h.fleetUC.GetTruck(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, truck)
}

// ListTrucks handles GET /trucks
func (h *TruckHandler) ListTrucks(c echo.Context) error {
	params := models.TruckListParams{
		Page:   intQueryParam(c, "page", 1),
		Limit:  intQueryParam(c, "limit", 10),
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	}

	page, err := h.fleetUC.ListTrucks(c.Request().Context(), params)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// UpdateTruck handles PATCH /trucks/:id
func (h *TruckHandler) UpdateTruck(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid truck ID")
	}

	var req models.UpdateTruckRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	truck, err := h.fleetUC.UpdateTruck(c.Request().Context(), id, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, truck)
}

// DeleteTruck handles DELETE /trucks/:id
func (h *TruckHandler) DeleteTruck(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid truck ID")
	}

	if err := h.fleetUC.DeleteTruck(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Truck deleted successfully"})
}

// AddMaintenanceLog handles POST /trucks/:id/maintenance
func (h *TruckHandler) AddMaintenanceLog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid truck ID")
	}

	var req models.MaintenanceLogRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Type == "" {
		return utils.BadRequestResponse(c, "Maintenance type is required")
	}

	log, err := h.fleetUC.AddMaintenanceLog(c.Request().Context(), id, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, log)
}

// Summary handles GET /fleet/summary
func (h *TruckHandler) Summary(c echo.Context) error {
	summary, err := h.fleetUC.Summary(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

func intQueryParam(c echo.Context, name string, defaultValue int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
