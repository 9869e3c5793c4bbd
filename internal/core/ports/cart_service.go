package ports

import (
	"context"

	"github.com/99minutos/commerce-api/internal/core/domain"
)

// CartItemInput is the body of an add-to-cart request.
type CartItemInput struct {
	URLImg      string
	ProductName string
	Size        string
	Price       float64
}

type CartService interface {
	List(ctx context.Context, userID string) ([]domain.CartItem, error)
	// Add appends an item with quantity 1. A non-empty idempotencyKey that was
	// already used fails with domain.ErrDuplicateRequest.
	Add(ctx context.Context, userID string, in CartItemInput, idempotencyKey string) (*domain.CartItem, error)
	// Remove returns the removed item and what is left in the user's cart.
	Remove(ctx context.Context, userID, itemID string) (*domain.CartItem, []domain.CartItem, error)
	// Checkout converts the user's cart into orders and returns the user's
	// orders, most recent first.
	Checkout(ctx context.Context, userID string, ship domain.ShippingInfo) ([]domain.Order, error)
}

type OrderService interface {
	// ListByUser returns the user's orders, optionally narrowed by a
	// case-insensitive search on product name.
	ListByUser(ctx context.Context, userID, search string) ([]domain.Order, error)
}
