package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// RBAC enforces role-based access control at the route boundary. The services
// re-check the same rule through domain.Allowed, so the invariant holds even
// for callers that bypass the router.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ContextKeyClaims).(ports.Claims)
			if !ok || !domain.Allowed(claims.Role, allowedRoles) {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
