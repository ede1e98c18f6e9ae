package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fleetops/fleetops/internal/pkg/logger"
	"github.com/fleetops/fleetops/internal/pkg/middleware"
	"github.com/fleetops/fleetops/internal/pkg/models"
	"github.com/fleetops/fleetops/internal/utils"
	"github.com/fleetops/fleetops/services/trips"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// CreateTrip handles POST /trips
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), req)
	if err != nil {
		logger.Info("trip creation rejected",
			logger.String("truck_id", req.TruckID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, trip)
}

// GetTrip handles GET /trips/:id
func (h *TripHandler) GetTrip(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	requesterID, role, ok := middleware.RequesterFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), id, requesterID, role)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, trip)
}

// ListTrips handles GET /trips
func (h *TripHandler) ListTrips(c echo.Context) error {
	requesterID, role, ok := middleware.RequesterFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	params := models.TripListParams{
		RequesterID:   requesterID,
		RequesterRole: role,
		Page:          intQueryParam(c, "page", 1),
		Limit:         intQueryParam(c, "limit", 10),
		SortBy:        c.QueryParam("sortBy"),
		Order:         c.QueryParam("order"),
		Search:        c.QueryParam("search"),
		Status:        c.QueryParam("status"),
	}

	page, err := h.tripUC.ListTrips(c.Request().Context(), params)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// UpdateTrip handles PATCH /trips/:id
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.UpdateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.UpdateTrip(c.Request().Context(), id, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, trip)
}

// DeleteTrip handles DELETE /trips/:id
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	if err := h.tripUC.DeleteTrip(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Trip deleted successfully"})
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
