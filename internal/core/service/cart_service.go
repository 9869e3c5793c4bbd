package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/ports"
	"github.com/99minutos/commerce-api/internal/pkg/metrics"
)

const cartAddScope = "cart-add"

// IdempotencyGuard remembers request keys for a while (Redis).
type IdempotencyGuard interface {
	// Claim records key under scope and reports whether it was new.
	Claim(ctx context.Context, scope, key string) (bool, error)
}

type CartService struct {
	carts  ports.CartRepository
	orders ports.OrderRepository
	guard  IdempotencyGuard
	log    zerolog.Logger
}

// NewCartService wires the cart use cases. guard may be nil, in which case
// idempotency keys are ignored.
func NewCartService(carts ports.CartRepository, orders ports.OrderRepository, guard IdempotencyGuard, log zerolog.Logger) *CartService {
	return &CartService{carts: carts, orders: orders, guard: guard, log: log}
}

func (s *CartService) List(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return s.carts.ListByUser(ctx, userID)
}

// Add puts one unit of a product in the user's cart.
func (s *CartService) Add(ctx context.Context, userID string, in ports.CartItemInput, idempotencyKey string) (*domain.CartItem, error) {
	if idempotencyKey != "" && s.guard != nil {
		fresh, err := s.guard.Claim(ctx, cartAddScope+":"+userID, idempotencyKey)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("user_id", userID).Msg("idempotency check failed, processing anyway")
		case !fresh:
			s.log.Debug().Str("user_id", userID).Str("key", idempotencyKey).Msg("duplicate add-to-cart skipped")
			return nil, domain.NewError(domain.ErrDuplicateRequest, "Idempotency-Key", "This request was already processed")
		}
	}

	item, err := s.carts.Add(ctx, domain.CartItem{
		IDUser:      userID,
		URLImg:      in.URLImg,
		ProductName: in.ProductName,
		Size:        in.Size,
		Quantity:    1,
		Price:       in.Price,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Str("item_id", item.ID).Msg("cart item added")
	return item, nil
}

func (s *CartService) Remove(ctx context.Context, userID, itemID string) (*domain.CartItem, []domain.CartItem, error) {
	removed, err := s.carts.Remove(ctx, userID, itemID)
	if err != nil {
		return nil, nil, notFoundAs(err, domain.NewError(domain.ErrNotFound, "id", "Cannot find order with id:"+itemID))
	}
	remaining, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return removed, remaining, nil
}

// Checkout turns every item in the user's cart into an order.
func (s *CartService) Checkout(ctx context.Context, userID string, ship domain.ShippingInfo) ([]domain.Order, error) {
	created, err := s.orders.Checkout(ctx, userID, func(item domain.CartItem) domain.Order {
		return domain.NewOrder(item, ship)
	})
	if err != nil {
		return nil, err
	}

	metrics.CheckoutsTotal.Inc()
	metrics.CheckoutItemsTotal.Add(float64(len(created)))
	s.log.Info().Str("user_id", userID).Int("orders", len(created)).Msg("cart checked out")

	return s.orders.ListByUser(ctx, userID)
}
