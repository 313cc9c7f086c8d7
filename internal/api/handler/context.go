package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maisondespoir/orphanage-api/internal/api/middleware"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// ctxClaims extracts the claims injected by the Auth middleware. Presence of
// a non-empty user id proves the middleware ran; anything else is rejected
// before a service call is made.
func ctxClaims(c echo.Context) (ports.Claims, error) {
	claims, ok := c.Get(middleware.ContextKeyClaims).(ports.Claims)
	if !ok || claims.UserID == "" {
		return ports.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
