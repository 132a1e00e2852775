package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopverse/storefront/internal/core/domain"
)

func TestCatalogRepository_CreatePrependsWithNextID(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository([]domain.Product{{ID: 3, Title: "a"}, {ID: 9, Title: "b"}})

	created, err := repo.Create(ctx, domain.Product{Title: "new", Images: []string{"x"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 10 {
		t.Fatalf("expected id 10, got %d", created.ID)
	}

	all, _ := repo.List(ctx)
	if len(all) != 3 || all[0].ID != 10 {
		t.Fatalf("new product should come first: %+v", all)
	}
}

func TestCatalogRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository([]domain.Product{{ID: 1, Images: []string{"a"}}})

	p, _ := repo.Get(ctx, 1)
	p.Images[0] = "mutated"

	again, _ := repo.Get(ctx, 1)
	if again.Images[0] != "a" {
		t.Fatalf("repository state leaked through Get")
	}
}

func TestCatalogRepository_UpdateDeleteMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(nil)

	if err := repo.Update(ctx, domain.Product{ID: 5}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, 5); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := repo.Get(ctx, 5); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestOrderRepository_ListOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	now := time.Now()

	_ = repo.Create(ctx, &domain.Order{ID: "ORD-1", UserID: "u1", CreatedAt: now.Add(-time.Hour)})
	_ = repo.Create(ctx, &domain.Order{ID: "ORD-2", UserID: "u2", CreatedAt: now})
	_ = repo.Create(ctx, &domain.Order{ID: "ORD-3", UserID: "u1", CreatedAt: now})

	mine, _ := repo.ListByUser(ctx, "u1")
	if len(mine) != 2 || mine[0].ID != "ORD-3" || mine[1].ID != "ORD-1" {
		t.Fatalf("unexpected user orders: %+v", mine)
	}

	all, _ := repo.List(ctx)
	if len(all) != 3 || all[2].ID != "ORD-1" {
		t.Fatalf("unexpected order list: %+v", all)
	}

	if err := repo.UpdateStatus(ctx, "ORD-1", domain.OrderShipped); err != nil {
		t.Fatalf("update status: %v", err)
	}
	o, _ := repo.FindByID(ctx, "ORD-1")
	if o.Status != domain.OrderShipped {
		t.Fatalf("status not updated: %s", o.Status)
	}
	if err := repo.UpdateStatus(ctx, "ORD-x", domain.OrderShipped); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestIdempotencyGuard_ClaimReleaseExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	g := NewIdempotencyGuard(time.Minute)
	g.now = func() time.Time { return now }

	if ok, _ := g.Claim(ctx, "k1"); !ok {
		t.Fatalf("first claim should succeed")
	}
	if ok, _ := g.Claim(ctx, "k1"); ok {
		t.Fatalf("second claim should be rejected")
	}

	_ = g.Release(ctx, "k1")
	if ok, _ := g.Claim(ctx, "k1"); !ok {
		t.Fatalf("claim after release should succeed")
	}

	now = now.Add(2 * time.Minute)
	if ok, _ := g.Claim(ctx, "k1"); !ok {
		t.Fatalf("claim after expiry should succeed")
	}
}
