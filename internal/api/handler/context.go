package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/itops/asset-tracker/internal/api/middleware"
	"github.com/itops/asset-tracker/internal/core/domain"
)

// ctxUser extracts the authenticated user injected by the Session middleware.
// Its presence proves the middleware ran; protected handlers fail closed with
// 401 when it is absent.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
