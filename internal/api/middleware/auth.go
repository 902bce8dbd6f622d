package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
	"github.com/jobdeck/jobdeck-api/internal/core/ports"
	"github.com/jobdeck/jobdeck-api/internal/metrics"
)

// UserContextKey is the echo context key under which Auth stores the
// resolved *domain.User.
const UserContextKey = "user"

// Auth validates the Bearer token and resolves it to a live user record.
// The token proves possession of a signed identifier; the repository lookup
// proves the user still exists. A token for a deleted user is rejected even
// if its signature and expiry are still valid.
func Auth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed")
			}

			userID := userIDClaim(claims)
			if userID == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				// Only a confirmed missing user is an auth failure; a
				// storage error must not read as a dead session.
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("user_gone").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, user not found")
				}
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// userIDClaim digs the user identifier out of the token payload, which
// nests it as {"user": {"id": "..."}}.
func userIDClaim(claims jwt.MapClaims) string {
	wrapper, ok := claims["user"].(map[string]any)
	if !ok {
		return ""
	}
	id, _ := wrapper["id"].(string)
	return id
}
