package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/article-service/internal/api/middleware"
)

// callerID extracts the user id injected by the session gate and fast-fails
// when it is absent, which proves the middleware did not run for this route.
func callerID(c echo.Context) (int64, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}
