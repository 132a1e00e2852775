package memory

import (
	"context"
	"sync"
	"time"
)

const defaultIdempotencyTTL = 24 * time.Hour

// IdempotencyGuard remembers keys in a map until they expire.
type IdempotencyGuard struct {
	mu   sync.Mutex
	seen map[string]time.Time
	ttl  time.Duration
	now  func() time.Time
}

// NewIdempotencyGuard creates a guard whose keys expire after ttl (24h when
// ttl <= 0).
func NewIdempotencyGuard(ttl time.Duration) *IdempotencyGuard {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyGuard{seen: make(map[string]time.Time), ttl: ttl, now: time.Now}
}

// Claim records key and reports whether this call was the first to do so
// within the ttl.
func (g *IdempotencyGuard) Claim(_ context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.now()
	for k, expires := range g.seen {
		if !now.Before(expires) {
			delete(g.seen, k)
		}
	}
	if _, ok := g.seen[key]; ok {
		return false, nil
	}
	g.seen[key] = now.Add(g.ttl)
	return true, nil
}

// Release forgets key.
func (g *IdempotencyGuard) Release(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.seen, key)
	return nil
}
