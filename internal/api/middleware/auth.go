package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/ports"
)

// UserKey is the context key under which Session stores the caller.
const UserKey = "user"

// Session validates the Authorization header and injects the resolved user
// into context. Failures are returned to the central error handler as
// MissingToken or InvalidOrExpiredToken.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := auth.ValidateToken(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return err
			}
			c.Set(UserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user injected by Session, or nil.
func CurrentUser(c echo.Context) *domain.User {
	u, _ := c.Get(UserKey).(*domain.User)
	return u
}
