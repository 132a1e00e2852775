package ports

import (
	"context"

	"github.com/shopverse/storefront/internal/core/domain"
)

// KeyValueStore is string-keyed storage holding opaque values, the server-side
// stand-in for browser local storage. Get reports ok=false for absent keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// CatalogRepository defines persistence operations for products.
type CatalogRepository interface {
	// List returns every product, newest first as stored.
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	// Create assigns the next id (max+1) and stores p ahead of the others.
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int) error
}

// OrderRepository defines persistence operations for placed orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// ListByUser returns the orders of userID, most recent first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	// List returns all orders, most recent first.
	List(ctx context.Context) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}
