package ports

import (
	"context"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/query"
)

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name      string
	Price     float64
	Color     int
	Thumbnail string
	DetailImg []string
	ColorImg  []string
	Size      []string
	Type      string
	Gender    string
}

type ProductService interface {
	All(ctx context.Context) ([]domain.Product, error)
	// Query filters on type, searches on name and sorts on price.
	Query(ctx context.Context, spec query.Spec) (*query.Page[domain.Product], error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int) (*domain.Product, error)
}
