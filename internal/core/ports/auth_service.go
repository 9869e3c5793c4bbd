package ports

import (
	"context"

	"github.com/99minutos/commerce-api/internal/core/domain"
)

// AuthService is the session and permission model.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, email, password string) (*domain.User, error)
	// ValidateToken resolves the user behind an Authorization header value.
	ValidateToken(ctx context.Context, bearerHeader string) (*domain.User, error)
	Logout(ctx context.Context, bearerHeader string) (*domain.User, error)
	// CheckPermission reports whether the caller's role set intersects roles.
	CheckPermission(ctx context.Context, bearerHeader string, roles ...string) bool
}
