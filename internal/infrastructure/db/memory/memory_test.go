package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Seed source stub
// ---------------------------------------------------------------------------

// mapSource serves JSON documents keyed by collection kind.
type mapSource map[string]string

func (m mapSource) Load(_ context.Context, kind string, dst any) error {
	raw, ok := m[kind]
	if !ok {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}

type failingSource struct{}

func (failingSource) Load(context.Context, string, any) error { return errors.New("disk gone") }

func seeded(t *testing.T) *DB {
	t.Helper()
	db := New()
	err := db.Seed(context.Background(), mapSource{
		domain.KindProducts: `[{"id":3,"name":"Shoe","price":20},{"id":7,"name":"Hat","price":5}]`,
		domain.KindUsers:    `[{"id":1,"email":"a@x.io","password":"p","token":"tok-a","rules":["user"]}]`,
		domain.KindCarts:    `[{"id":"c1","idUser":"1","productName":"Shoe","quantity":1,"price":20}]`,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

// ---------------------------------------------------------------------------
// Seeding
// ---------------------------------------------------------------------------

func TestSeed_ContinuesSequenceFromMaxID(t *testing.T) {
	db := seeded(t)

	p, err := db.Products().Create(context.Background(), domain.Product{Name: "Bag"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID != 8 {
		t.Errorf("expected id 8, got %d", p.ID)
	}
	u, _ := db.Users().Create(context.Background(), domain.User{Email: "b@x.io"})
	if u.ID != 2 {
		t.Errorf("expected user id 2, got %d", u.ID)
	}
}

func TestSeed_MissingKindsAreEmpty(t *testing.T) {
	db := seeded(t)

	orders, err := db.Orders().ListByUser(context.Background(), "1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("expected no orders, got %d", len(orders))
	}
	customers, _ := db.Customers().List(context.Background())
	if len(customers) != 0 {
		t.Errorf("expected no customers, got %d", len(customers))
	}
}

func TestSeed_PropagatesSourceError(t *testing.T) {
	if err := New().Seed(context.Background(), failingSource{}); err == nil {
		t.Fatal("expected error from failing source")
	}
}

// ---------------------------------------------------------------------------
// Products
// ---------------------------------------------------------------------------

func TestProducts_ListReturnsCopies(t *testing.T) {
	db := seeded(t)
	ctx := context.Background()

	list, _ := db.Products().List(ctx)
	list[0].Name = "mutated"

	again, _ := db.Products().List(ctx)
	if again[0].Name != "Shoe" {
		t.Errorf("store was mutated through List result: %q", again[0].Name)
	}
}

func TestProducts_UpdateErrorLeavesRecordUntouched(t *testing.T) {
	db := seeded(t)
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := db.Products().Update(ctx, 3, func(p *domain.Product) error {
		p.Name = "half-written"
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	p, _ := db.Products().FindByID(ctx, 3)
	if p.Name != "Shoe" {
		t.Errorf("expected Shoe, got %q", p.Name)
	}
}

func TestProducts_UpdateCannotChangeID(t *testing.T) {
	db := seeded(t)

	p, err := db.Products().Update(context.Background(), 3, func(p *domain.Product) error {
		p.ID = 99
		p.Price = 25
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.ID != 3 || p.Price != 25 {
		t.Errorf("unexpected product %+v", p)
	}
}

func TestProducts_DeleteThenFindIsNotFound(t *testing.T) {
	db := seeded(t)
	ctx := context.Background()

	removed, err := db.Products().Delete(ctx, 7)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.Name != "Hat" {
		t.Errorf("expected removed Hat, got %q", removed.Name)
	}
	if _, err := db.Products().FindByID(ctx, 7); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := db.Products().Delete(ctx, 7); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func TestUsers_CreateRejectsDuplicateEmail(t *testing.T) {
	db := seeded(t)

	_, err := db.Users().Create(context.Background(), domain.User{Email: "a@x.io"})
	if !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestUsers_UpdateRejectsEmailOfAnotherUser(t *testing.T) {
	db := seeded(t)
	ctx := context.Background()
	other, _ := db.Users().Create(ctx, domain.User{Email: "b@x.io"})

	_, err := db.Users().Update(ctx, other.ID, func(u *domain.User) error {
		u.Email = "a@x.io"
		return nil
	})
	if !errors.Is(err, domain.ErrEmailConflict) {
		t.Fatalf("expected ErrEmailConflict, got %v", err)
	}

	// Keeping one's own email is not a conflict.
	_, err = db.Users().Update(ctx, 1, func(u *domain.User) error {
		u.Avatar = "me.png"
		return nil
	})
	if err != nil {
		t.Fatalf("self update: %v", err)
	}
}

func TestUsers_FindByTokenNeverMatchesEmpty(t *testing.T) {
	db := seeded(t)
	ctx := context.Background()
	_, _ = db.Users().Create(ctx, domain.User{Email: "no-session@x.io"})

	if _, err := db.Users().FindByToken(ctx, ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty token, got %v", err)
	}
	u, err := db.Users().FindByToken(ctx, "tok-a")
	if err != nil || u.ID != 1 {
		t.Fatalf("expected user 1, got %+v err=%v", u, err)
	}
}

// ---------------------------------------------------------------------------
// Carts and checkout
// ---------------------------------------------------------------------------

func TestCarts_RemoveRequiresOwner(t *testing.T) {
	db := seeded(t)
	ctx := context.Background()

	if _, err := db.Carts().Remove(ctx, "2", "c1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign item, got %v", err)
	}
	if _, err := db.Carts().Remove(ctx, "1", "c1"); err != nil {
		t.Fatalf("owner remove: %v", err)
	}
}

func TestCarts_AddAssignsDistinctIDs(t *testing.T) {
	db := New()
	ctx := context.Background()

	a, _ := db.Carts().Add(ctx, domain.CartItem{IDUser: "1", ID: "client-chosen"})
	b, _ := db.Carts().Add(ctx, domain.CartItem{IDUser: "1"})
	if a.ID == "" || a.ID == "client-chosen" || a.ID == b.ID {
		t.Errorf("unexpected ids %q %q", a.ID, b.ID)
	}
}

func TestCheckout_MovesOnlyCallerItemsNewestFirst(t *testing.T) {
	db := seeded(t)
	ctx := context.Background()
	_, _ = db.Carts().Add(ctx, domain.CartItem{IDUser: "2", ProductName: "Hat"})

	build := func(it domain.CartItem) domain.Order {
		return domain.NewOrder(it, domain.ShippingInfo{Name: "A", Address: "Main 1", City: "Town"})
	}
	first, err := db.Orders().Checkout(ctx, "1", build)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if len(first) != 1 || first[0].Address != "Main 1, Town" || first[0].ID == "" {
		t.Fatalf("unexpected orders %+v", first)
	}

	_, _ = db.Carts().Add(ctx, domain.CartItem{IDUser: "1", ProductName: "Bag"})
	if _, err := db.Orders().Checkout(ctx, "1", build); err != nil {
		t.Fatalf("second checkout: %v", err)
	}

	orders, _ := db.Orders().ListByUser(ctx, "1")
	if len(orders) != 2 || orders[0].ProductName != "Bag" || orders[1].ProductName != "Shoe" {
		t.Errorf("expected [Bag Shoe], got %+v", orders)
	}
	left, _ := db.Carts().ListByUser(ctx, "1")
	if len(left) != 0 {
		t.Errorf("expected empty cart, got %d items", len(left))
	}
	others, _ := db.Carts().ListByUser(ctx, "2")
	if len(others) != 1 {
		t.Errorf("other user's cart should be untouched, got %d items", len(others))
	}

	_, _ = db.Carts().Add(ctx, domain.CartItem{IDUser: "9", ProductName: "First"})
	_, _ = db.Carts().Add(ctx, domain.CartItem{IDUser: "9", ProductName: "Second"})
	batch, err := db.Orders().Checkout(ctx, "9", build)
	if err != nil {
		t.Fatalf("batch checkout: %v", err)
	}
	if len(batch) != 2 || batch[0].ProductName != "Second" || batch[1].ProductName != "First" {
		t.Errorf("expected returned batch [Second First], got %+v", batch)
	}
	orders, _ = db.Orders().ListByUser(ctx, "9")
	if len(orders) != 2 || orders[0].ProductName != "Second" || orders[1].ProductName != "First" {
		t.Errorf("expected [Second First], got %+v", orders)
	}
}

func TestCheckout_EmptyCartIsNoop(t *testing.T) {
	db := New()
	var calls int
	db.OnChange(func(ports.Snapshot) { calls++ })

	got, err := db.Orders().Checkout(context.Background(), "1", func(it domain.CartItem) domain.Order {
		return domain.Order{}
	})
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v err=%v", got, err)
	}
	if calls != 0 {
		t.Errorf("expected no snapshots, got %d", calls)
	}
}

func TestCheckout_ConcurrentAddsNeverDuplicateOrLose(t *testing.T) {
	db := New()
	ctx := context.Background()
	build := func(it domain.CartItem) domain.Order { return domain.NewOrder(it, domain.ShippingInfo{}) }

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, _ = db.Carts().Add(ctx, domain.CartItem{IDUser: "1", ProductName: fmt.Sprint(i)})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = db.Orders().Checkout(ctx, "1", build)
		}()
	}
	wg.Wait()

	cart, _ := db.Carts().ListByUser(ctx, "1")
	orders, _ := db.Orders().ListByUser(ctx, "1")
	if len(cart)+len(orders) != n {
		t.Fatalf("expected %d items across cart and orders, got %d + %d", n, len(cart), len(orders))
	}
}

// ---------------------------------------------------------------------------
// Change hook
// ---------------------------------------------------------------------------

func TestOnChange_PublishesDeepCopies(t *testing.T) {
	db := seeded(t)
	var snaps []ports.Snapshot
	db.OnChange(func(s ports.Snapshot) { snaps = append(snaps, s) })

	_, err := db.Users().Update(context.Background(), 1, func(u *domain.User) error {
		u.AddRole(domain.RoleAdmin)
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(snaps) != 1 || snaps[0].Kind != domain.KindUsers {
		t.Fatalf("expected one users snapshot, got %+v", snaps)
	}
	u := snaps[0].Records[0].(domain.User)
	u.Rules[0] = "tampered"

	stored, _ := db.Users().FindByID(context.Background(), 1)
	if stored.Rules[0] != "user" {
		t.Errorf("snapshot shares memory with the store: %v", stored.Rules)
	}
}
