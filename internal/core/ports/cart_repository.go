package ports

import (
	"context"

	"github.com/99minutos/commerce-api/internal/core/domain"
)

// CartRepository owns the cart collection.
type CartRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	// Add assigns a fresh opaque id and appends item.
	Add(ctx context.Context, item domain.CartItem) (*domain.CartItem, error)
	// Remove deletes the item only when it belongs to userID.
	Remove(ctx context.Context, userID, itemID string) (*domain.CartItem, error)
}

// OrderRepository owns the order collection, most recent first.
type OrderRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// Checkout moves every cart item of userID into the order collection in a
	// single step: the items leave the cart, build converts each one, and the
	// resulting orders are prepended. Either all items move or none do.
	Checkout(ctx context.Context, userID string, build func(domain.CartItem) domain.Order) ([]domain.Order, error)
}
