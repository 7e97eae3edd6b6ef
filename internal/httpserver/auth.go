package httpserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/artvault/gallery/internal/tokens"
)

// RequireToken validates the bearer token issued at login and stashes the
// caller's id and role on the echo context. The simulated endpoints resolve
// identity from the session slot themselves; this guard only keeps
// unauthenticated HTTP callers off the user routes.
func RequireToken(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "User not authenticated"})
			}

			claims, err := tokens.Parse(raw, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "User not authenticated"})
			}

			userID, err := claims.UserID()
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "User not authenticated"})
			}

			c.Set("user_id", userID)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}
