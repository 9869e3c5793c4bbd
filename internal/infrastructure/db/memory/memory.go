// Package memory implements the in-memory collection store backing every
// repository. Each collection has its own lock; every read-modify-write
// (id assignment, updates, checkout) happens while holding it.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/ports"
)

// DB owns all collections for the process lifetime.
type DB struct {
	productsMu sync.RWMutex
	products   []domain.Product
	productSeq int

	usersMu sync.RWMutex
	users   []domain.User
	userSeq int

	cartsMu sync.RWMutex
	carts   []domain.CartItem

	ordersMu sync.RWMutex
	orders   []domain.Order

	customersMu sync.RWMutex
	customers   []domain.Customer

	onChange func(ports.Snapshot)
	newID    func() string
}

// New creates an empty database.
func New() *DB {
	return &DB{newID: uuid.NewString}
}

// Ensure interfaces are met.
var _ ports.ProductRepository = (*ProductRepository)(nil)
var _ ports.UserRepository = (*UserRepository)(nil)
var _ ports.CartRepository = (*CartRepository)(nil)
var _ ports.OrderRepository = (*OrderRepository)(nil)
var _ ports.CustomerRepository = (*CustomerRepository)(nil)

// OnChange registers fn to receive a snapshot of a collection after every
// successful write to it. fn runs while the collection lock is held, so
// snapshots of one collection arrive in write order; it must not call back
// into the DB. Register before serving traffic.
func (db *DB) OnChange(fn func(ports.Snapshot)) {
	db.onChange = fn
}

// Seed replaces every collection with the records held by src and resets the
// id sequences to the highest id loaded.
func (db *DB) Seed(ctx context.Context, src ports.SeedSource) error {
	var (
		products  []domain.Product
		users     []domain.User
		carts     []domain.CartItem
		orders    []domain.Order
		customers []domain.Customer
	)
	targets := map[string]any{
		domain.KindProducts:  &products,
		domain.KindUsers:     &users,
		domain.KindCarts:     &carts,
		domain.KindOrders:    &orders,
		domain.KindCustomers: &customers,
	}
	for _, kind := range domain.Kinds {
		if err := src.Load(ctx, kind, targets[kind]); err != nil {
			return fmt.Errorf("seed %s: %w", kind, err)
		}
	}

	db.productsMu.Lock()
	db.products = products
	db.productSeq = 0
	for _, p := range products {
		db.productSeq = max(db.productSeq, p.ID)
	}
	db.productsMu.Unlock()

	db.usersMu.Lock()
	db.users = users
	db.userSeq = 0
	for _, u := range users {
		db.userSeq = max(db.userSeq, u.ID)
	}
	db.usersMu.Unlock()

	db.cartsMu.Lock()
	db.carts = carts
	db.cartsMu.Unlock()

	db.ordersMu.Lock()
	db.orders = orders
	db.ordersMu.Unlock()

	db.customersMu.Lock()
	db.customers = customers
	db.customersMu.Unlock()

	return nil
}

// publish hands a snapshot of records to the change hook. Callers hold the
// collection's write lock.
func publish[T any](db *DB, kind string, records []T, clone func(T) T) {
	if db.onChange == nil {
		return
	}
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = clone(r)
	}
	db.onChange(ports.Snapshot{Kind: kind, Records: out, TakenAt: time.Now().UTC()})
}

func identity[T any](v T) T { return v }
