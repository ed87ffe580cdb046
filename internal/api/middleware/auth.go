package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/article-service/internal/api/metrics"
	"github.com/inkpress/article-service/internal/core/ports"
)

// userIDKey is the echo context key the session gate stores the resolved
// user id under.
const userIDKey = "user_id"

// Session resolves the raw Authorization header value against the session
// store and injects the user id into the request context. The header carries
// the bare token, not a bearer-prefixed scheme.
func Session(sessions ports.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get("Authorization")
			if token == "" {
				metrics.AuthRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			userID, err := sessions.Resolve(c.Request().Context(), token)
			if err != nil {
				metrics.AuthRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// UserID extracts the id injected by Session. The second return is false when
// the gate did not run for this request.
func UserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(userIDKey).(int64)
	return id, ok
}
