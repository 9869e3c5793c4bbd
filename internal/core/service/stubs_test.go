package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/99minutos/commerce-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu    sync.Mutex
	users []domain.User
	seq   int
}

func newStubUserRepo(seed ...domain.User) *stubUserRepo {
	r := &stubUserRepo{}
	for _, u := range seed {
		r.users = append(r.users, u.Clone())
		r.seq = max(r.seq, u.ID)
	}
	return r
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, len(r.users))
	for i, u := range r.users {
		out[i] = u.Clone()
	}
	return out, nil
}

func (r *stubUserRepo) find(match func(domain.User) bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			c := u.Clone()
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.ID == id })
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Email == email })
}

func (r *stubUserRepo) FindByToken(_ context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrNotFound
	}
	return r.find(func(u domain.User) bool { return u.Token == token })
}

func (r *stubUserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	r.seq++
	u.ID = r.seq
	r.users = append(r.users, u.Clone())
	return &u, nil
}

func (r *stubUserRepo) Update(_ context.Context, id int, fn func(u *domain.User) error) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}
		work := r.users[i].Clone()
		if err := fn(&work); err != nil {
			return nil, err
		}
		for _, other := range r.users {
			if other.ID != id && other.Email == work.Email {
				return nil, domain.ErrEmailConflict
			}
		}
		r.users[i] = work
		c := work.Clone()
		return &c, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id int) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// stored returns the raw record, bypassing the service.
func (r *stubUserRepo) stored(id int) domain.User {
	u, _ := r.FindByID(context.Background(), id)
	if u == nil {
		return domain.User{}
	}
	return *u
}

type stubProductRepo struct {
	products []domain.Product
	seq      int
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	return append([]domain.Product(nil), r.products...), nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id int) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubProductRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	r.seq++
	p.ID = r.seq
	r.products = append(r.products, p)
	return &p, nil
}

func (r *stubProductRepo) Update(_ context.Context, id int, fn func(p *domain.Product) error) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			work := r.products[i].Clone()
			if err := fn(&work); err != nil {
				return nil, err
			}
			r.products[i] = work
			return &work, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubProductRepo) Delete(_ context.Context, id int) (*domain.Product, error) {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubCartRepo struct {
	items []domain.CartItem
	seq   int
}

func (r *stubCartRepo) ListByUser(_ context.Context, userID string) ([]domain.CartItem, error) {
	out := []domain.CartItem{}
	for _, it := range r.items {
		if it.IDUser == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *stubCartRepo) Add(_ context.Context, item domain.CartItem) (*domain.CartItem, error) {
	r.seq++
	item.ID = "item-" + strconv.Itoa(r.seq)
	r.items = append(r.items, item)
	return &item, nil
}

func (r *stubCartRepo) Remove(_ context.Context, userID, itemID string) (*domain.CartItem, error) {
	for i, it := range r.items {
		if it.ID == itemID && it.IDUser == userID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return &it, nil
		}
	}
	return nil, domain.ErrNotFound
}

// stubOrderRepo checks out against the cart stub it shares state with.
type stubOrderRepo struct {
	carts  *stubCartRepo
	orders []domain.Order
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	out := []domain.Order{}
	for _, o := range r.orders {
		if o.IDUser == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) Checkout(_ context.Context, userID string, build func(domain.CartItem) domain.Order) ([]domain.Order, error) {
	var moved []domain.Order
	var kept []domain.CartItem
	for _, it := range r.carts.items {
		if it.IDUser != userID {
			kept = append(kept, it)
			continue
		}
		o := build(it)
		o.ID = "order-" + it.ID
		moved = append([]domain.Order{o}, moved...)
	}
	r.carts.items = kept
	r.orders = append(moved, r.orders...)
	return moved, nil
}

type stubCustomerRepo struct {
	customers []domain.Customer
}

func (r *stubCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	return append([]domain.Customer(nil), r.customers...), nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id int) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}
