package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fleetops/fleetops/internal/pkg/models"
	"github.com/fleetops/fleetops/internal/utils"
	"github.com/fleetops/fleetops/services/fleet"
)

// TrailerHandler handles HTTP requests for trailer administration
type TrailerHandler struct {
	fleetUC fleet.FleetUC
}

// NewTrailerHandler creates a new trailer HTTP handler
func NewTrailerHandler(fleetUC fleet.FleetUC) *TrailerHandler {
	return &TrailerHandler{fleetUC: fleetUC}
}

// CreateTrailer handles POST /trailers
func (h *TrailerHandler) CreateTrailer(c echo.Context) error {
	var req models.CreateTrailerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Plate == "" || req.MaxLoad <= 0 {
		return utils.BadRequestResponse(c, "Plate and a positive max load are required")
	}

	trailer, err := h.fleetUC.CreateTrailer(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, trailer)
}

// GetTrailer handles GET /trailers/:id
func (h *TrailerHandler) GetTrailer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trailer ID")
	}

	trailer, err := h.fleetUC.GetTrailer(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, trailer)
}

// ListTrailers handles GET /trailers
func (h *TrailerHandler) ListTrailers(c echo.Context) error {
	trailers, err := h.fleetUC.ListTrailers(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, trailers)
}

// UpdateTrailer handles PATCH /trailers/:id
func (h *TrailerHandler) UpdateTrailer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trailer ID")
	}

	var req models.UpdateTrailerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trailer, err := h.fleetUC.UpdateTrailer(c.Request().Context(), id, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, trailer)
}

// DeleteTrailer handles DELETE /trailers/:id
func (h *TrailerHandler) DeleteTrailer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trailer ID")
	}

	if err := h.fleetUC.DeleteTrailer(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Trailer deleted successfully"})
}
