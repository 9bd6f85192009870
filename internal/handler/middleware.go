package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ostrenko/circulation-service/internal/model"
)

const (
	XUserName = "X-User-Name"
	XUserRole = "X-User-Role"
)

// identity is resolved upstream (gateway / auth proxy); the service trusts
// the forwarded headers.
func identityMW(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(XUserName) == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "empty "+XUserName)
		}
		return next(c)
	}
}

func librarianMW(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if userRole(c) != model.RoleLibrarian {
			return echo.NewHTTPError(http.StatusForbidden, "librarian role required")
		}
		return next(c)
	}
}

func userName(c echo.Context) string {
	return c.Request().Header.Get(XUserName)
}

func userRole(c echo.Context) model.Role {
	role := model.Role(c.Request().Header.Get(XUserRole))
	if role == "" {
		role = model.RoleMember
	}
	return role
}

func newRateLimiterMW(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func requestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.String("requestID", v.RequestID),
			)
			return nil
		},
	}
}
