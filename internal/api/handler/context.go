package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// principalID extracts the authenticated principal's id injected by the
// Auth middleware. An empty id means the middleware did not run or the
// token carried no identity; either way the request cannot proceed.
func principalID(c echo.Context) (string, error) {
	id, _ := c.Get("id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
