package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/itops/asset-tracker/internal/core/domain"
	"github.com/itops/asset-tracker/internal/core/ports"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "assettrack_session"

// UserContextKey is where the resolved *domain.User lives in the echo
// context. Handlers read it through this constant, never the raw literal.
const UserContextKey = "user"

// Session resolves the request's session token to a user and injects it into
// the context. The token is accepted from the Authorization header (Bearer)
// or the session cookie. Requests without a valid session are rejected with
// 401 before reaching any handler.
func Session(sessions ports.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := RequestToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			user, err := sessions.CurrentUser(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
				}
				// Store failure, not a bad token. Let the error handler
				// report it as a server-side problem.
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// RequestToken returns the session token carried by the request, from the
// Authorization header (Bearer) or the session cookie. Empty when absent.
func RequestToken(c echo.Context) string {
	if header := c.Request().Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
