package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/shopverse/storefront/internal/core/catalog"
	"github.com/shopverse/storefront/internal/core/domain"
	"github.com/shopverse/storefront/internal/core/ports"
	"github.com/shopverse/storefront/internal/pkg/metrics"
)

const (
	// PlaceholderImage is used for products created without images.
	PlaceholderImage = "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=600&h=600&fit=crop"
	// DefaultRating is the rating a new product starts with.
	DefaultRating = 4.5
	// LowStockThreshold marks products the dashboard flags for restocking.
	LowStockThreshold = 30
	// RelatedLimit is how many related products a detail page shows.
	RelatedLimit = 4
)

type CatalogService struct {
	products ports.CatalogRepository
	orders   ports.OrderRepository
	logger   zerolog.Logger
}

var _ ports.CatalogService = (*CatalogService)(nil)

func NewCatalogService(products ports.CatalogRepository, orders ports.OrderRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, orders: orders, logger: logger}
}

// Query runs the listing over a snapshot of the catalog.
func (s *CatalogService) Query(ctx context.Context, l *catalog.Listing, pageSize int) (catalog.Page, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return catalog.Page{}, fmt.Errorf("list products: %w", err)
	}
	metrics.CatalogQueriesTotal.WithLabelValues(string(l.Query().Sort)).Inc()
	return l.Run(all, pageSize), nil
}

func (s *CatalogService) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.products.Get(ctx, id)
}

// Featured returns the featured products in catalog order.
func (s *CatalogService) Featured(ctx context.Context) ([]domain.Product, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

// Related returns up to n products of the same category as p, excluding p,
// in catalog order.
func (s *CatalogService) Related(ctx context.Context, p domain.Product, n int) ([]domain.Product, error) {
	if n <= 0 {
		n = RelatedLimit
	}
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]domain.Product, 0, n)
	for _, candidate := range all {
		if len(out) == n {
			break
		}
		if candidate.Category == p.Category && candidate.ID != p.ID {
			out = append(out, candidate)
		}
	}
	return out, nil
}

// Categories lists every category with its product count, in display order.
func (s *CatalogService) Categories(ctx context.Context) ([]ports.CategorySummary, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	counts := make(map[string]int, len(domain.Categories))
	for _, p := range all {
		counts[p.Category]++
	}
	out := make([]ports.CategorySummary, len(domain.Categories))
	for i, name := range domain.Categories {
		out[i] = ports.CategorySummary{Name: name, Icon: domain.CategoryIcons[name], Products: counts[name]}
	}
	return out, nil
}

// Create adds a product ahead of the existing ones. The original price
// defaults to the price, the rating to DefaultRating and the images to a
// placeholder.
func (s *CatalogService) Create(ctx context.Context, changes domain.ProductChanges) (*domain.Product, error) {
	p := changes.Apply(domain.Product{Rating: DefaultRating})
	if len(p.Images) == 0 {
		p.Images = []string{PlaceholderImage}
	}
	p = withOriginalPrice(p)
	if err := validateProduct(p); err != nil {
		return nil, err
	}

	created, err := s.products.Create(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.logger.Info().Int("product_id", created.ID).Str("title", created.Title).Msg("product created")
	return created, nil
}

// Update merges changes into the product. Id, review count and images are
// kept unless changes says otherwise.
func (s *CatalogService) Update(ctx context.Context, id int, changes domain.ProductChanges) (*domain.Product, error) {
	current, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p := withOriginalPrice(changes.Apply(*current))
	p.ID = id
	if err := validateProduct(p); err != nil {
		return nil, err
	}

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info().Int("product_id", id).Msg("product updated")
	return &p, nil
}

func (s *CatalogService) Delete(ctx context.Context, id int) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int("product_id", id).Msg("product deleted")
	return nil
}

// Stats summarises the catalog and the order book.
func (s *CatalogService) Stats(ctx context.Context) (*ports.CatalogStats, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	stats := &ports.CatalogStats{Products: len(all), Orders: len(orders)}
	for _, p := range all {
		if p.Stock < LowStockThreshold {
			stats.LowStock++
		}
	}
	revenue := decimal.Zero
	for _, o := range orders {
		if o.Status == domain.OrderCancelled {
			continue
		}
		revenue = revenue.Add(decimal.NewFromFloat(o.Summary.Total))
	}
	stats.Revenue = revenue.Round(2).InexactFloat64()
	return stats, nil
}

// withOriginalPrice raises an empty or too low original price to the price.
func withOriginalPrice(p domain.Product) domain.Product {
	if p.OriginalPrice < p.Price {
		p.OriginalPrice = p.Price
	}
	return p
}

func validateProduct(p domain.Product) error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return domain.NewValidationError("title is required")
	case !domain.IsCategory(p.Category):
		return domain.NewValidationError(fmt.Sprintf("unknown category %q", p.Category))
	case p.Price < 0:
		return domain.NewValidationError("price must not be negative")
	case p.Stock < 0:
		return domain.NewValidationError("stock must not be negative")
	case p.Rating < 0 || p.Rating > 5:
		return domain.NewValidationError("rating must be between 0 and 5")
	}
	return nil
}
