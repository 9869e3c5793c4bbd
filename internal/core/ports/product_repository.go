package ports

import (
	"context"

	"github.com/99minutos/commerce-api/internal/core/domain"
)

// ProductRepository owns the product collection.
type ProductRepository interface {
	// List returns a copy of the collection in insertion order.
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	// Create assigns the next sequential id and appends p.
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	// Update runs fn against the stored record under the collection lock.
	Update(ctx context.Context, id int, fn func(p *domain.Product) error) (*domain.Product, error)
	// Delete removes the record and returns the removed snapshot.
	Delete(ctx context.Context, id int) (*domain.Product, error)
}
