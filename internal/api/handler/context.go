package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/jobdeck-api/internal/api/middleware"
	"github.com/jobdeck/jobdeck-api/internal/core/domain"
)

// currentUser extracts the user resolved by the Auth middleware. Its
// presence proves the middleware ran; a handler reached without it is a
// routing mistake and is rejected as unauthenticated.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
	}
	return user, nil
}
