package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopverse/storefront/internal/core/ports"
	"github.com/shopverse/storefront/internal/pkg/metrics"
	"github.com/shopverse/storefront/internal/pkg/storage"
)

const (
	defaultIdleTTL       = 30 * time.Minute
	minimumSweepInterval = time.Second
)

// Session is one shopper's tab: an auth store and a cart store sharing a
// storage namespace.
type Session struct {
	id   string
	auth *AuthStore
	cart *CartStore

	lastSeen atomic.Int64
}

var _ ports.Session = (*Session)(nil)

func (s *Session) ID() string            { return s.id }
func (s *Session) Auth() ports.AuthStore { return s.auth }
func (s *Session) Cart() ports.CartStore { return s.cart }

func (s *Session) touch(now time.Time) { s.lastSeen.Store(now.UnixNano()) }

func (s *Session) idleSince() time.Time { return time.Unix(0, s.lastSeen.Load()) }

// SessionOptions configures a SessionManager.
type SessionOptions struct {
	Auth AuthOptions
	// IdleTTL is how long an untouched session stays in memory. Its state
	// remains in storage after eviction.
	IdleTTL time.Duration
	Now     func() time.Time
}

// SessionManager keeps the live sessions of the process, keyed by id, and
// restores each one from storage on first use.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	kv   ports.KeyValueStore
	opts SessionOptions
	log  zerolog.Logger
}

var _ ports.SessionManager = (*SessionManager)(nil)

func NewSessionManager(kv ports.KeyValueStore, opts SessionOptions, log zerolog.Logger) *SessionManager {
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = defaultIdleTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &SessionManager{
		sessions: make(map[string]*Session),
		kv:       kv,
		opts:     opts,
		log:      log,
	}
}

// Namespace returns the storage prefix of a session id.
func Namespace(id string) string {
	return "session:" + id + ":"
}

// Open returns the session for id. A blank or non-UUID id opens a new session
// under a fresh id; callers read the effective id back from the session.
func (m *SessionManager) Open(ctx context.Context, id string) (ports.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	now := m.opts.Now()

	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if ok {
		s.touch(now)
		return s, nil
	}

	s = m.restore(ctx, id)
	s.touch(now)

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[id]; ok {
		// A concurrent request restored it first.
		existing.touch(now)
		return existing, nil
	}
	m.sessions[id] = s
	metrics.SessionsActive.Inc()
	m.log.Debug().Str("session_id", id).Msg("session opened")
	return s, nil
}

func (m *SessionManager) restore(ctx context.Context, id string) *Session {
	kv := storage.Namespace(m.kv, Namespace(id))
	log := m.log.With().Str("session_id", id).Logger()
	return &Session{
		id:   id,
		auth: NewAuthStore(ctx, kv, m.opts.Auth, log),
		cart: NewCartStore(ctx, kv, log),
	}
}

// Len returns the number of resident sessions.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle for longer than the idle TTL and returns how
// many were dropped.
func (m *SessionManager) Sweep() int {
	cutoff := m.opts.Now().Add(-m.opts.IdleTTL)

	m.mu.Lock()
	defer m.mu.Unlock()
	evicted := 0
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			delete(m.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		metrics.SessionsActive.Sub(float64(evicted))
	}
	return evicted
}

// Start launches the sweeper goroutine. It stops when ctx is cancelled.
func (m *SessionManager) Start(ctx context.Context) {
	interval := m.opts.IdleTTL / 2
	if interval < minimumSweepInterval {
		interval = minimumSweepInterval
	}
	go m.runSweeper(ctx, interval)
}

func (m *SessionManager) runSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			m.log.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.log.Info().Int("evicted", n).Msg("idle sessions evicted")
			}
		}
	}
}
