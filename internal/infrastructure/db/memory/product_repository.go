package memory

import (
	"context"

	"github.com/99minutos/commerce-api/internal/core/domain"
)

// ProductRepository is the product view of a DB.
type ProductRepository struct {
	db *DB
}

// Products returns the product repository.
func (db *DB) Products() *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns a copy of all products.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	r.db.productsMu.RLock()
	defer r.db.productsMu.RUnlock()

	out := make([]domain.Product, len(r.db.products))
	for i, p := range r.db.products {
		out[i] = p.Clone()
	}
	return out, nil
}

// FindByID retrieves a product by id.
func (r *ProductRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	r.db.productsMu.RLock()
	defer r.db.productsMu.RUnlock()

	for _, p := range r.db.products {
		if p.ID == id {
			c := p.Clone()
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create appends p under the next sequential id.
func (r *ProductRepository) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	r.db.productsMu.Lock()
	defer r.db.productsMu.Unlock()

	r.db.productSeq++
	p = p.Clone()
	p.ID = r.db.productSeq
	r.db.products = append(r.db.products, p)
	publish(r.db, domain.KindProducts, r.db.products, domain.Product.Clone)

	c := p.Clone()
	return &c, nil
}

// Update applies fn to a working copy and stores it only when fn succeeds.
func (r *ProductRepository) Update(ctx context.Context, id int, fn func(p *domain.Product) error) (*domain.Product, error) {
	r.db.productsMu.Lock()
	defer r.db.productsMu.Unlock()

	for i := range r.db.products {
		if r.db.products[i].ID != id {
			continue
		}
		work := r.db.products[i].Clone()
		if err := fn(&work); err != nil {
			return nil, err
		}
		work.ID = id
		r.db.products[i] = work
		publish(r.db, domain.KindProducts, r.db.products, domain.Product.Clone)

		c := work.Clone()
		return &c, nil
	}
	return nil, domain.ErrNotFound
}

// Delete removes a product and returns what was removed.
func (r *ProductRepository) Delete(ctx context.Context, id int) (*domain.Product, error) {
	r.db.productsMu.Lock()
	defer r.db.productsMu.Unlock()

	for i, p := range r.db.products {
		if p.ID == id {
			r.db.products = append(r.db.products[:i], r.db.products[i+1:]...)
			publish(r.db, domain.KindProducts, r.db.products, domain.Product.Clone)
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}
