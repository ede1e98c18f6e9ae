package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetops/fleetops/internal/pkg/errs"
)

// ErrorResponse is the error envelope returned by every endpoint
type ErrorResponse struct {
	Message string `json:"message"`
}

// ErrorResponseHandler sends an error response with the given status
func ErrorResponseHandler(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{Message: message})
}

// DomainErrorResponse maps a domain error to its HTTP status and sends it.
// Unrecognized errors are masked as a generic 500 so storage details never
// leak to callers.
func DomainErrorResponse(c echo.Context, err error) error {
	status := errs.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		return ErrorResponseHandler(c, status, "Internal server error")
	}
	return ErrorResponseHandler(c, status, err.Error())
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, message)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, message)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, message)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, message)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, message)
}
