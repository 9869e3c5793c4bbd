package ports

import (
	"context"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/query"
)

// UserInput is the body of an admin user creation.
type UserInput struct {
	Email       string
	Password    string
	PhoneNumber string
	Address     domain.Address
	Avatar      string
}

// UserUpdateInput is the body of a profile update. Password must equal the
// stored password; it is the confirmation, not a new value.
type UserUpdateInput struct {
	Email       string
	Password    string
	PhoneNumber string
	Address     domain.Address
	Avatar      string
}

// AccountSettingInput is the admin override of a user's credentials.
type AccountSettingInput struct {
	NewEmail    string
	NewPassword string
}

type UserService interface {
	All(ctx context.Context) ([]domain.User, error)
	// Query searches on email.
	Query(ctx context.Context, spec query.Spec) (*query.Page[domain.User], error)
	Get(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, in UserInput) (*domain.User, error)
	Update(ctx context.Context, id int, in UserUpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id int) (*domain.User, error)
	UpdateAccount(ctx context.Context, id int, in AccountSettingInput) (*domain.User, error)
	GrantRole(ctx context.Context, id int, role string) (*domain.User, error)
}
