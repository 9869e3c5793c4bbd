package service

import (
	"context"
	"strconv"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/ports"
	"github.com/99minutos/commerce-api/internal/core/query"
	"github.com/99minutos/commerce-api/internal/pkg/metrics"
)

var CustomerSchema = query.Schema[domain.Customer]{
	Filter: func(c domain.Customer) string { return c.City },
	Search: func(c domain.Customer) string { return c.Name },
}

type CustomerService struct {
	repo ports.CustomerRepository
}

func NewCustomerService(repo ports.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Query(ctx context.Context, spec query.Spec) (*query.Page[domain.Customer], error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	page := query.Run(customers, CustomerSchema, spec)
	metrics.QueriesTotal.WithLabelValues(domain.KindCustomers).Inc()
	return &page, nil
}

func (s *CustomerService) Get(ctx context.Context, id int) (*domain.Customer, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.NewError(domain.ErrNotFound, "id", "Cannot find customer with id:"+strconv.Itoa(id)))
	}
	return c, nil
}
