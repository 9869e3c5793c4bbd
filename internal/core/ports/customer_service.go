package ports

import (
	"context"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/query"
)

type CustomerService interface {
	// Query filters on city and searches on name.
	Query(ctx context.Context, spec query.Spec) (*query.Page[domain.Customer], error)
	Get(ctx context.Context, id int) (*domain.Customer, error)
}
