package memory

import (
	"context"
	"slices"

	"github.com/99minutos/commerce-api/internal/core/domain"
)

// CartRepository is the cart view of a DB.
type CartRepository struct {
	db *DB
}

// Carts returns the cart repository.
func (db *DB) Carts() *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	r.db.cartsMu.RLock()
	defer r.db.cartsMu.RUnlock()

	out := []domain.CartItem{}
	for _, it := range r.db.carts {
		if it.IDUser == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *CartRepository) Add(ctx context.Context, item domain.CartItem) (*domain.CartItem, error) {
	r.db.cartsMu.Lock()
	defer r.db.cartsMu.Unlock()

	item.ID = r.db.newID()
	r.db.carts = append(r.db.carts, item)
	publish(r.db, domain.KindCarts, r.db.carts, identity[domain.CartItem])
	return &item, nil
}

func (r *CartRepository) Remove(ctx context.Context, userID, itemID string) (*domain.CartItem, error) {
	r.db.cartsMu.Lock()
	defer r.db.cartsMu.Unlock()

	for i, it := range r.db.carts {
		if it.ID == itemID && it.IDUser == userID {
			r.db.carts = append(r.db.carts[:i], r.db.carts[i+1:]...)
			publish(r.db, domain.KindCarts, r.db.carts, identity[domain.CartItem])
			return &it, nil
		}
	}
	return nil, domain.ErrNotFound
}

// OrderRepository is the order view of a DB.
type OrderRepository struct {
	db *DB
}

// Orders returns the order repository.
func (db *DB) Orders() *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	r.db.ordersMu.RLock()
	defer r.db.ordersMu.RUnlock()

	out := []domain.Order{}
	for _, o := range r.db.orders {
		if o.IDUser == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// Checkout holds the cart lock and then the order lock for the whole move,
// so no reader sees an item in both collections or in neither.
func (r *OrderRepository) Checkout(ctx context.Context, userID string, build func(domain.CartItem) domain.Order) ([]domain.Order, error) {
	r.db.cartsMu.Lock()
	defer r.db.cartsMu.Unlock()
	r.db.ordersMu.Lock()
	defer r.db.ordersMu.Unlock()

	var (
		moved []domain.Order
		kept  = make([]domain.CartItem, 0, len(r.db.carts))
	)
	for _, it := range r.db.carts {
		if it.IDUser != userID {
			kept = append(kept, it)
			continue
		}
		o := build(it)
		o.ID = r.db.newID()
		moved = append(moved, o)
	}
	if len(moved) == 0 {
		return []domain.Order{}, nil
	}
	// Each item is prepended in cart order, so the last one added leads.
	slices.Reverse(moved)

	orders := make([]domain.Order, 0, len(moved)+len(r.db.orders))
	orders = append(orders, moved...)
	orders = append(orders, r.db.orders...)

	r.db.carts = kept
	r.db.orders = orders
	publish(r.db, domain.KindCarts, r.db.carts, identity[domain.CartItem])
	publish(r.db, domain.KindOrders, r.db.orders, identity[domain.Order])

	return moved, nil
}
