package memory

import (
	"context"

	"github.com/99minutos/commerce-api/internal/core/domain"
)

// CustomerRepository is the read-only customer view of a DB.
type CustomerRepository struct {
	db *DB
}

// Customers returns the customer repository.
func (db *DB) Customers() *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	r.db.customersMu.RLock()
	defer r.db.customersMu.RUnlock()

	return append([]domain.Customer{}, r.db.customers...), nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int) (*domain.Customer, error) {
	r.db.customersMu.RLock()
	defer r.db.customersMu.RUnlock()

	for _, c := range r.db.customers {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}
