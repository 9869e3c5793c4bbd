package service

import (
	"context"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/ports"
	"github.com/99minutos/commerce-api/internal/core/query"
)

// OrderSchema searches orders on product name.
var OrderSchema = query.Schema[domain.Order]{
	Search: func(o domain.Order) string { return o.ProductName },
}

type OrderService struct {
	repo ports.OrderRepository
}

func NewOrderService(repo ports.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

func (s *OrderService) ListByUser(ctx context.Context, userID, search string) ([]domain.Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	page := query.Run(orders, OrderSchema, query.Spec{Search: search, Limit: query.NoLimit})
	return page.Results, nil
}
