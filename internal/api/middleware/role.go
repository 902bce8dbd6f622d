package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
	"github.com/jobdeck/jobdeck-api/internal/metrics"
)

// RequireRole restricts a route to users holding one of the given roles.
// It must run after Auth; a valid token with an insufficient role yields
// 403, never 401.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
			}
			if _, ok := allowed[user.Role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "not authorized for this resource")
			}
			return next(c)
		}
	}
}
