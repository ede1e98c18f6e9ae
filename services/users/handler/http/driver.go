package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fleetops/fleetops/internal/pkg/models"
	"github.com/fleetops/fleetops/internal/utils"
	"github.com/fleetops/fleetops/services/users"
)

// DriverHandler handles HTTP requests for driver administration
type DriverHandler struct {
	userUC users.UserUC
}

// NewDriverHandler creates a new driver HTTP handler
func NewDriverHandler(userUC users.UserUC) *DriverHandler {
	return &DriverHandler{userUC: userUC}
}

// CreateDriver handles POST /drivers
func (h *DriverHandler) CreateDriver(c echo.Context) error {
	var req models.CreateDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Name, email and password are required")
	}

	driver, err := h.userUC.CreateDriver(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, driver)
}

// ListDrivers handles GET /drivers
func (h *DriverHandler) ListDrivers(c echo.Context) error {
	drivers, err := h.userUC.ListDrivers(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, drivers)
}

// GetDriver handles GET /drivers/:id
func (h *DriverHandler) GetDriver(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	driver, err := h.userUC.GetDriver(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, driver)
}

// UpdateDriver handles PATCH /drivers/:id
func (h *DriverHandler) UpdateDriver(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req models.UpdateDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	driver, err := h.userUC.UpdateDriver(c.Request().Context(), id, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, driver)
}

// DeleteDriver handles DELETE /drivers/:id
func (h *DriverHandler) DeleteDriver(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	if err := h.userUC.DeleteDriver(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Driver deleted successfully"})
}
