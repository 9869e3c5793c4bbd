package ports

import (
	"context"

	"github.com/99minutos/commerce-api/internal/core/domain"
)

type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	FindByID(ctx context.Context, id int) (*domain.Customer, error)
}
