package service

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopverse/storefront/internal/core/catalog"
	"github.com/shopverse/storefront/internal/core/domain"
	"github.com/shopverse/storefront/internal/infrastructure/db/memory"
)

func seedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Wireless Headphones", Category: domain.CategoryElectronics, Price: 79.99, Stock: 45, Rating: 4.5, Featured: true, Images: []string{"1.jpg"}},
		{ID: 2, Title: "Smart Watch", Category: domain.CategoryElectronics, Price: 199.99, Stock: 12, Rating: 4.7, Images: []string{"2.jpg"}},
		{ID: 3, Title: "Denim Jacket", Category: domain.CategoryFashion, Price: 59.5, Stock: 80, Rating: 4.1, Featured: true, Images: []string{"3.jpg"}},
		{ID: 4, Title: "USB-C Hub", Category: domain.CategoryElectronics, Price: 29.99, Stock: 200, Rating: 4.2, Images: []string{"4.jpg"}},
		{ID: 5, Title: "Desk Lamp", Category: domain.CategoryHomeLiving, Price: 34, Stock: 5, Rating: 3.9, Images: []string{"5.jpg"}},
		{ID: 6, Title: "Mechanical Keyboard", Category: domain.CategoryElectronics, Price: 129, Stock: 33, Rating: 4.8, Images: []string{"6.jpg"}},
		{ID: 7, Title: "Webcam", Category: domain.CategoryElectronics, Price: 49, Stock: 60, Rating: 4, Images: []string{"7.jpg"}},
	}
}

func newTestCatalogService() (*CatalogService, *memory.OrderRepository) {
	orders := memory.NewOrderRepository()
	return NewCatalogService(memory.NewCatalogRepository(seedProducts()), orders, zerolog.Nop()), orders
}

func ptr[T any](v T) *T { return &v }

func TestCatalogService_Query(t *testing.T) {
	s, _ := newTestCatalogService()
	l := catalog.NewListing(url.Values{"category": {"Electronics"}})
	l.SetSort(domain.SortPriceLow)

	page, err := s.Query(context.Background(), l, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalCount != 5 || page.TotalPages != 3 {
		t.Fatalf("unexpected totals: count=%d pages=%d", page.TotalCount, page.TotalPages)
	}
	if len(page.Items) != 2 || page.Items[0].ID != 4 || page.Items[1].ID != 7 {
		t.Fatalf("unexpected first page: %+v", page.Items)
	}
}

func TestCatalogService_FeaturedAndRelated(t *testing.T) {
	s, _ := newTestCatalogService()
	ctx := context.Background()

	featured, _ := s.Featured(ctx)
	if len(featured) != 2 || featured[0].ID != 1 || featured[1].ID != 3 {
		t.Fatalf("unexpected featured: %+v", featured)
	}

	p, _ := s.Get(ctx, 1)
	related, _ := s.Related(ctx, *p, RelatedLimit)
	if len(related) != 4 {
		t.Fatalf("expected 4 related, got %d", len(related))
	}
	for _, r := range related {
		if r.ID == 1 || r.Category != domain.CategoryElectronics {
			t.Fatalf("unexpected related product: %+v", r)
		}
	}
	if related[0].ID != 2 || related[3].ID != 7 {
		t.Fatalf("related should keep catalog order: %+v", related)
	}
}

func TestCatalogService_Categories(t *testing.T) {
	s, _ := newTestCatalogService()
	cats, err := s.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cats) != len(domain.Categories) {
		t.Fatalf("expected %d categories, got %d", len(domain.Categories), len(cats))
	}
	if cats[0].Name != domain.CategoryElectronics || cats[0].Products != 5 || cats[0].Icon == "" {
		t.Fatalf("unexpected first category: %+v", cats[0])
	}
	if cats[5].Name != domain.CategoryBooks || cats[5].Products != 0 {
		t.Fatalf("unexpected last category: %+v", cats[5])
	}
}

func TestCatalogService_CreateDefaults(t *testing.T) {
	s, _ := newTestCatalogService()
	ctx := context.Background()

	created, err := s.Create(ctx, domain.ProductChanges{
		Title:    ptr("Yoga Mat"),
		Category: ptr(domain.CategorySports),
		Price:    ptr(25.0),
		Stock:    ptr(40),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 8 {
		t.Fatalf("expected id 8, got %d", created.ID)
	}
	if created.OriginalPrice != 25 || created.Rating != DefaultRating || created.ReviewCount != 0 {
		t.Fatalf("defaults not applied: %+v", created)
	}
	if len(created.Images) != 1 || created.Images[0] != PlaceholderImage {
		t.Fatalf("expected placeholder image, got %v", created.Images)
	}

	l := catalog.NewListing(nil)
	l.SetSort(domain.SortNewest)
	page, _ := s.Query(ctx, l, 100)
	if page.TotalCount != 8 || page.Items[0].ID != 8 {
		t.Fatalf("new product should lead the newest listing: %+v", page.Items[0])
	}
}

func TestCatalogService_CreateValidation(t *testing.T) {
	s, _ := newTestCatalogService()
	cases := []domain.ProductChanges{
		{Title: ptr(" "), Category: ptr(domain.CategoryBooks), Price: ptr(1.0)},
		{Title: ptr("Book"), Category: ptr("Toys"), Price: ptr(1.0)},
		{Title: ptr("Book"), Category: ptr(domain.CategoryBooks), Price: ptr(-1.0)},
		{Title: ptr("Book"), Category: ptr(domain.CategoryBooks), Price: ptr(1.0), Rating: ptr(6.0)},
	}
	for i, c := range cases {
		if _, err := s.Create(context.Background(), c); !domain.IsValidation(err) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestCatalogService_UpdateMerges(t *testing.T) {
	s, _ := newTestCatalogService()
	ctx := context.Background()

	updated, err := s.Update(ctx, 2, domain.ProductChanges{Price: ptr(149.99), Stock: ptr(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != 2 || updated.Title != "Smart Watch" || updated.Images[0] != "2.jpg" {
		t.Fatalf("untouched fields should be kept: %+v", updated)
	}
	if updated.Price != 149.99 || updated.OriginalPrice != 149.99 || updated.Stock != 3 {
		t.Fatalf("changes not applied: %+v", updated)
	}

	stored, _ := s.Get(ctx, 2)
	if stored.Price != 149.99 {
		t.Fatalf("update not persisted")
	}
}

func TestCatalogService_UpdateKeepsHigherOriginalPrice(t *testing.T) {
	s, _ := newTestCatalogService()
	updated, err := s.Update(context.Background(), 3, domain.ProductChanges{Price: ptr(40.0), OriginalPrice: ptr(59.5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.OriginalPrice != 59.5 {
		t.Fatalf("expected original price 59.5, got %v", updated.OriginalPrice)
	}
}

func TestCatalogService_UpdateDeleteNotFound(t *testing.T) {
	s, _ := newTestCatalogService()
	ctx := context.Background()

	if _, err := s.Update(ctx, 99, domain.ProductChanges{}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if err := s.Delete(ctx, 99); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if err := s.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, 1); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("deleted product still present")
	}
}

func TestCatalogService_Stats(t *testing.T) {
	s, orders := newTestCatalogService()
	ctx := context.Background()
	now := time.Now()
	_ = orders.Create(ctx, &domain.Order{ID: "ORD-000001", Summary: domain.OrderSummary{Total: 100.10}, Status: domain.OrderPending, CreatedAt: now})
	_ = orders.Create(ctx, &domain.Order{ID: "ORD-000002", Summary: domain.OrderSummary{Total: 20.20}, Status: domain.OrderDelivered, CreatedAt: now})
	_ = orders.Create(ctx, &domain.Order{ID: "ORD-000003", Summary: domain.OrderSummary{Total: 999}, Status: domain.OrderCancelled, CreatedAt: now})

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Products != 7 || stats.LowStock != 2 || stats.Orders != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.Revenue != 120.30 {
		t.Fatalf("expected revenue 120.30, got %v", stats.Revenue)
	}
}
