package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/shopverse/storefront/internal/core/domain"
	"github.com/shopverse/storefront/internal/core/ports"
	"github.com/shopverse/storefront/internal/pkg/metrics"
	"github.com/shopverse/storefront/internal/pkg/storage"
)

// CartKey is the storage key of the cart line items.
const CartKey = "shopverse_cart"

// CartStore holds the cart of one session. Totals are recomputed on every
// mutation, before the mutation returns, and the whole line-item sequence is
// written to storage each time.
//
// Stock is deliberately not checked here; only the product page bounds the
// quantity it offers.
type CartStore struct {
	mu    sync.Mutex
	items domain.Cart
	total float64
	count int

	slot *storage.Slot[domain.Cart]
	log  zerolog.Logger
}

var _ ports.CartStore = (*CartStore)(nil)

// NewCartStore restores the cart persisted in kv. A stored value that cannot
// be decoded is dropped and the cart starts empty.
func NewCartStore(ctx context.Context, kv ports.KeyValueStore, log zerolog.Logger) *CartStore {
	s := &CartStore{
		items: domain.Cart{},
		slot:  storage.NewSlot[domain.Cart](kv, CartKey),
		log:   log,
	}
	s.restore(ctx)
	return s
}

func (s *CartStore) restore(ctx context.Context) {
	items, ok, err := s.slot.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrDecode):
		metrics.StorageDecodeFailuresTotal.WithLabelValues(CartKey).Inc()
		s.log.Warn().Err(err).Msg("discarding malformed stored cart")
		if err := s.slot.Clear(ctx); err != nil {
			s.log.Warn().Err(err).Msg("failed to clear stored cart")
		}
	case err != nil:
		s.log.Warn().Err(err).Msg("failed to restore cart, starting empty")
	case ok:
		s.items = sanitize(items)
	}
	s.recompute()
}

// sanitize drops entries a well-behaved store never writes: non-positive
// quantities and repeated product ids (the first occurrence wins, with the
// quantities summed).
func sanitize(items domain.Cart) domain.Cart {
	out := make(domain.Cart, 0, len(items))
	for _, li := range items {
		if li.Quantity < 1 {
			continue
		}
		if i := out.Index(li.ID); i >= 0 {
			out[i].Quantity += li.Quantity
			continue
		}
		out = append(out, li)
	}
	return out
}

// Add puts quantity units of product in the cart. An existing line for the
// same product id is incremented; otherwise a new line is appended holding a
// snapshot of product. A quantity below 1 counts as 1.
func (s *CartStore) Add(ctx context.Context, product domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.items.Index(product.ID); i >= 0 {
		s.items[i].Quantity += quantity
	} else {
		s.items = append(s.items, domain.CartLineItem{Product: product.Clone(), Quantity: quantity})
	}
	s.commit(ctx, "add")
}

// Remove deletes the line for productID. Unknown ids are ignored.
func (s *CartStore) Remove(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(ctx, productID)
}

func (s *CartStore) remove(ctx context.Context, productID int) {
	i := s.items.Index(productID)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.commit(ctx, "remove")
}

// UpdateQuantity sets the quantity of the line for productID. A quantity
// below 1 removes the line. Unknown ids are ignored.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		s.remove(ctx, productID)
		return
	}
	i := s.items.Index(productID)
	if i < 0 {
		return
	}
	s.items[i].Quantity = quantity
	s.commit(ctx, "update")
}

// Clear empties the cart.
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = domain.Cart{}
	s.commit(ctx, "clear")
}

// Items returns a copy of the line items in insertion order.
func (s *CartStore) Items() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Clone()
}

// Total is Σ price × quantity over the current items.
func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Count is Σ quantity over the current items.
func (s *CartStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// commit must be called with mu held.
func (s *CartStore) commit(ctx context.Context, op string) {
	s.recompute()
	metrics.CartMutationsTotal.WithLabelValues(op).Inc()
	if err := s.slot.Save(ctx, s.items); err != nil {
		s.log.Warn().Err(err).Str("op", op).Msg("failed to persist cart")
	}
}

func (s *CartStore) recompute() {
	s.total = s.items.Total()
	s.count = s.items.Count()
}
