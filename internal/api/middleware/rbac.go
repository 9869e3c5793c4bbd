package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/ports"
)

// RequireRoles lets the request through when the caller holds at least one
// of roles. It runs after Session, so a refusal here means AccessDenied.
func RequireRoles(auth ports.AuthService, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !auth.CheckPermission(c.Request().Context(), header, roles...) {
				return domain.NewError(domain.ErrAccessDenied, "", "Access denied")
			}
			return next(c)
		}
	}
}
