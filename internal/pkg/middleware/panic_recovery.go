package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/fleetops/fleetops/internal/pkg/logger"
	"github.com/fleetops/fleetops/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack and
// answers with a generic 500.
func PanicRecoveryMiddleware(l *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}
					l.Error("panic recovered",
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.Err(err),
						logger.String("stack", string(debug.Stack())),
					)
					_ = utils.InternalServerErrorResponse(c, "")
				}
			}()
			return next(c)
		}
	}
}
