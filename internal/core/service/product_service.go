package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/ports"
	"github.com/99minutos/commerce-api/internal/core/query"
	"github.com/99minutos/commerce-api/internal/pkg/metrics"
)

// ProductSchema wires products into the query pipeline: filter on type,
// search on name, sort on price.
var ProductSchema = query.Schema[domain.Product]{
	Filter: func(p domain.Product) string { return p.Type },
	Search: func(p domain.Product) string { return p.Name },
	Sort: map[string]func(domain.Product) float64{
		"price": func(p domain.Product) float64 { return p.Price },
	},
}

type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) All(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Query(ctx context.Context, spec query.Spec) (*query.Page[domain.Product], error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	page := query.Run(items, ProductSchema, spec)
	metrics.QueriesTotal.WithLabelValues(domain.KindProducts).Inc()

	s.log.Debug().
		Int("skip", spec.Skip).
		Int("limit", spec.Limit).
		Str("type", spec.Filter).
		Str("search", spec.Search).
		Str("sort_by", spec.SortField).
		Str("sort_val", string(spec.SortDir)).
		Int("total", page.TotalRecords).
		Msg("product query")
	return &page, nil
}

func (s *ProductService) Get(ctx context.Context, id int) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, productNotFound(id))
	}
	return p, nil
}

// Create stores a new product under the next sequential id.
func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	created, err := s.repo.Create(ctx, domain.Product{
		Name:      in.Name,
		Price:     in.Price,
		Color:     in.Color,
		Thumbnail: in.Thumbnail,
		DetailImg: in.DetailImg,
		ColorImg:  in.ColorImg,
		Size:      in.Size,
		Type:      in.Type,
		Gender:    in.Gender,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("product_id", created.ID).Msg("product created")
	return created, nil
}

// Update copies the editable fields onto the stored product. Gender is not
// editable once a product exists.
func (s *ProductService) Update(ctx context.Context, id int, in ports.ProductInput) (*domain.Product, error) {
	updated, err := s.repo.Update(ctx, id, func(p *domain.Product) error {
		p.Name = in.Name
		p.Price = in.Price
		p.Size = in.Size
		p.Thumbnail = in.Thumbnail
		p.Type = in.Type
		p.Color = in.Color
		p.ColorImg = in.ColorImg
		p.DetailImg = in.DetailImg
		return nil
	})
	if err != nil {
		return nil, notFoundAs(err, productNotFound(id))
	}
	s.log.Info().Int("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int) (*domain.Product, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, productNotFound(id))
	}
	s.log.Info().Int("product_id", id).Msg("product deleted")
	return removed, nil
}

func productNotFound(id int) error {
	return domain.NewError(domain.ErrNotFound, "id", "Cannot find product with id:"+strconv.Itoa(id))
}
