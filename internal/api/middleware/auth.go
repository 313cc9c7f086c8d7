package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// ContextKeyClaims is the echo context key under which Auth stores the
// decoded ports.Claims of the authenticated caller.
const ContextKeyClaims = "claims"

// AccessVerifier is the slice of the token service the middleware needs.
type AccessVerifier interface {
	VerifyAccess(token string) (*ports.Claims, error)
}

// Auth validates the bearer token and injects the decoded claims into the
// request context. Every failure mode maps to the same 401 so responses leak
// nothing about why a token was rejected.
func Auth(verifier AccessVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.VerifyAccess(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ContextKeyClaims, *claims)
			return next(c)
		}
	}
}
