package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HeaderAuth is optional. When enabled it requires the user id minted by the
// managed auth frontend (X-Farm-Uid header or FARM_UID cookie) and rejects
// requests without one. When disabled it passes through (use DevLogin).
func HeaderAuth(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c) // bypass in development
			}
			uid := c.Request().Header.Get("X-Farm-Uid")
			if uid == "" {
				if ck, err := c.Cookie("FARM_UID"); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "auth required: missing user id"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
