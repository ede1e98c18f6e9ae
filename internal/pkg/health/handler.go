package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// Checker verifies one dependency is reachable
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// BuildInfo contains information about the running binary
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// RegisterHealthEndpoints registers liveness and readiness endpoints.
// /health is a bare liveness probe; /health/ready runs the dependency
// checkers and reports 503 when any fail.
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, checkers ...Checker) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     version,
			ServiceName: serviceName,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		results := make(map[string]string, len(checkers))
		healthy := true
		for _, checker := range checkers {
			if err := checker.Check(ctx); err != nil {
				results[checker.Name()] = err.Error()
				healthy = false
			} else {
				results[checker.Name()] = "ok"
			}
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, results)
	})
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc struct {
	CheckerName string
	Fn          func(ctx context.Context) error
}

// Name returns the checker name
func (c CheckerFunc) Name() string { return c.CheckerName }

// Check runs the check function
func (c CheckerFunc) Check(ctx context.Context) error { return c.Fn(ctx) }
