package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxRole extracts the role claim injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing role means
// the middleware did not run, so the request is rejected with 401.
func ctxRole(c echo.Context) (string, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return role, nil
}
