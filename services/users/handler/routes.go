package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetops/fleetops/internal/pkg/middleware"
	"github.com/fleetops/fleetops/internal/pkg/models"
	"github.com/fleetops/fleetops/services/users"
	httphandler "github.com/fleetops/fleetops/services/users/handler/http"
)

// Handler registers the auth and driver administration routes
type Handler struct {
	auth   *httphandler.AuthHandler
	driver *httphandler.DriverHandler
	cfg    *models.Config
}

// NewHandler creates a new users handler
func NewHandler(userUC users.UserUC, cfg *models.Config) *Handler {
	return &Handler{
		auth:   httphandler.NewAuthHandler(userUC),
		driver: httphandler.NewDriverHandler(userUC),
		cfg:    cfg,
	}
}

// RegisterRoutes mounts the auth endpoints and the admin-only driver roster
// under /api/v1.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	adminOnly := middleware.AdminOnlyMiddleware()

	authGroup := e.Group("/api/v1/auth")
	authGroup.POST("/register", h.auth.Register)
	authGroup.POST("/login", h.auth.Login)
	authGroup.GET("/me", h.auth.Me, auth)

	drivers := e.Group("/api/v1/drivers", auth, adminOnly)
	drivers.POST("", h.driver.CreateDriver)
	drivers.GET("", h.driver.ListDrivers)
	drivers.GET("/:id", h.driver.GetDriver)
	drivers.PATCH("/:id", h.driver.UpdateDriver)
	drivers.DELETE("/:id", h.driver.DeleteDriver)
}
