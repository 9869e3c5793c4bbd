package ports

import (
	"context"

	"github.com/99minutos/commerce-api/internal/core/domain"
)

// UserRepository owns the user collection, including the session fields.
// Implementations enforce email uniqueness: Create fails with
// domain.ErrEmailAlreadyExists and Update with domain.ErrEmailConflict.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByToken never matches the empty token.
	FindByToken(ctx context.Context, token string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	Update(ctx context.Context, id int, fn func(u *domain.User) error) (*domain.User, error)
	Delete(ctx context.Context, id int) (*domain.User, error)
}
