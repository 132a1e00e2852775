package ports

import (
	"context"

	"github.com/shopverse/storefront/internal/core/domain"
)

// AuthStore is the single source of truth for who is logged in on a session.
type AuthStore interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate)
	// User returns a copy of the current user, or nil.
	User() *domain.User
}

// CartStore is the single source of truth for a session's cart.
type CartStore interface {
	Add(ctx context.Context, product domain.Product, quantity int)
	Remove(ctx context.Context, productID int)
	UpdateQuantity(ctx context.Context, productID, quantity int)
	Clear(ctx context.Context)
	// Items returns a copy of the line items in insertion order.
	Items() domain.Cart
	Total() float64
	Count() int
}

// Session bundles the stores owned by one shopper.
type Session interface {
	ID() string
	Auth() AuthStore
	Cart() CartStore
}

// SessionManager resolves session ids to live sessions.
type SessionManager interface {
	// Open returns the session for id, restoring it from storage on first use.
	// A blank or malformed id opens a new session.
	Open(ctx context.Context, id string) (Session, error)
}
