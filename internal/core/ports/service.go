package ports

import (
	"context"

	"github.com/shopverse/storefront/internal/core/catalog"
	"github.com/shopverse/storefront/internal/core/domain"
)

// CatalogStats is the headline of the admin dashboard.
type CatalogStats struct {
	Products int
	LowStock int
	Orders   int
	Revenue  float64
}

// CategorySummary is one entry of the category navigation.
type CategorySummary struct {
	Name     string
	Icon     string
	Products int
}

// CatalogService defines the use cases over the product catalog.
type CatalogService interface {
	Query(ctx context.Context, l *catalog.Listing, pageSize int) (catalog.Page, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Featured(ctx context.Context) ([]domain.Product, error)
	Related(ctx context.Context, p domain.Product, n int) ([]domain.Product, error)
	Categories(ctx context.Context) ([]CategorySummary, error)

	Create(ctx context.Context, changes domain.ProductChanges) (*domain.Product, error)
	Update(ctx context.Context, id int, changes domain.ProductChanges) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
	Stats(ctx context.Context) (*CatalogStats, error)
}

// PlaceOrderInput carries what checkout needs besides the session cart.
type PlaceOrderInput struct {
	Address        domain.ShippingAddress
	IdempotencyKey string
}

// CheckoutService defines checkout and order history use cases.
type CheckoutService interface {
	Summary(cart domain.Cart) domain.OrderSummary
	PlaceOrder(ctx context.Context, s Session, in PlaceOrderInput) (*domain.Order, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.Order, error)
	ListAll(ctx context.Context) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

// TokenIssuer signs access tokens for authenticated sessions.
type TokenIssuer interface {
	Issue(user *domain.User, sessionID string) (string, error)
}
