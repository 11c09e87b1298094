package handler

import (
	"github.com/labstack/echo/v4"

	"storefront/internal/auth"
)

// ClaimsKey is the echo context key holding verified *auth.Claims.
const ClaimsKey = "claims"

// RequireAdmin wraps a handler so it only runs once gate has accepted the
// request's Authorization header. On failure the wrapped handler is never
// called. On success the claims are attached to both the echo context and
// the request context.
func RequireAdmin(gate *auth.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := gate.Authorize(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return errorResponse(err)
			}

			c.Set(ClaimsKey, claims)
			req := c.Request()
			c.SetRequest(req.WithContext(auth.WithClaims(req.Context(), claims)))
			return next(c)
		}
	}
}
