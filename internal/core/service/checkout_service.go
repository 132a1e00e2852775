package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopverse/storefront/internal/core/domain"
	"github.com/shopverse/storefront/internal/core/format"
	"github.com/shopverse/storefront/internal/core/ports"
	"github.com/shopverse/storefront/internal/pkg/metrics"
)

// DefaultCheckoutDelay is the simulated order processing time.
const DefaultCheckoutDelay = 1500 * time.Millisecond

// DefaultCountry fills an empty country on the shipping form.
const DefaultCountry = "United States"

// IdempotencyGuard abstracts the checkout idempotency store (Redis or memory).
type IdempotencyGuard interface {
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// CheckoutOptions configures a CheckoutService.
type CheckoutOptions struct {
	// Delay is the simulated processing time of PlaceOrder.
	Delay time.Duration
	Now   func() time.Time
	NewID func() string
}

type CheckoutService struct {
	orders ports.OrderRepository
	guard  IdempotencyGuard
	opts   CheckoutOptions
	log    zerolog.Logger
}

var _ ports.CheckoutService = (*CheckoutService)(nil)

// NewCheckoutService returns a CheckoutService. guard may be nil, in which
// case idempotency keys are ignored.
func NewCheckoutService(orders ports.OrderRepository, guard IdempotencyGuard, opts CheckoutOptions, log zerolog.Logger) *CheckoutService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = generateOrderID
	}
	return &CheckoutService{orders: orders, guard: guard, opts: opts, log: log}
}

// Summary prices the cart for the checkout page.
func (s *CheckoutService) Summary(cart domain.Cart) domain.OrderSummary {
	return domain.Summarize(cart)
}

// PlaceOrder turns the session cart into a Pending order and empties the cart.
// The cart is captured before the processing delay; items added meanwhile
// stay out of the order but are cleared with it.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sess ports.Session, in ports.PlaceOrderInput) (*domain.Order, error) {
	items := sess.Cart().Items()
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	key := strings.TrimSpace(in.IdempotencyKey)
	scoped := idempotencyScope(sess.ID(), key)
	if key != "" && s.guard != nil {
		first, err := s.guard.Claim(ctx, scoped)
		if err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency check failed, processing anyway")
		} else if !first {
			s.log.Info().Str("idempotency_key", key).Msg("duplicate checkout rejected")
			return nil, domain.ErrDuplicateOrder
		}
	}

	format.Sleep(s.opts.Delay)

	address := in.Address
	if strings.TrimSpace(address.Country) == "" {
		address.Country = DefaultCountry
	}
	order := &domain.Order{
		ID:              s.opts.NewID(),
		SessionID:       sess.ID(),
		Items:           items,
		ShippingAddress: address,
		Summary:         domain.Summarize(items),
		Status:          domain.OrderPending,
		CreatedAt:       s.opts.Now().UTC(),
	}
	if u := sess.Auth().User(); u != nil {
		order.UserID = u.ID
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.log.Error().Err(err).Msg("failed to store order")
		if key != "" && s.guard != nil {
			if rerr := s.guard.Release(ctx, scoped); rerr != nil {
				s.log.Warn().Err(rerr).Str("idempotency_key", key).Msg("failed to release idempotency key")
			}
		}
		return nil, fmt.Errorf("place order: %w", err)
	}

	sess.Cart().Clear(ctx)

	metrics.OrdersPlacedTotal.Inc()
	metrics.OrderValueDollars.Observe(order.Summary.Total)
	s.log.Info().
		Str("order_id", order.ID).
		Str("user_id", order.UserID).
		Float64("total", order.Summary.Total).
		Msg("order placed")
	return order, nil
}

// idempotencyScope binds a client key to its session so two shoppers
// picking the same key never collide.
func idempotencyScope(sessionID, key string) string {
	return sessionID + ":" + key
}

func (s *CheckoutService) ListForUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *CheckoutService) ListAll(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}

// UpdateStatus moves an order along the fulfilment state machine.
func (s *CheckoutService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, status)
	}
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.log.Info().Str("order_id", id).Str("from", string(order.Status)).Str("to", string(status)).Msg("order status updated")
	order.Status = status
	return order, nil
}

// generateOrderID returns an id in the format ORD-NNNNNN.
func generateOrderID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		// fallback: use the clock
		return fmt.Sprintf("ORD-%06d", time.Now().UnixMilli()%1_000_000)
	}
	return fmt.Sprintf("ORD-%06d", n.Int64())
}
