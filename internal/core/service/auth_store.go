package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopverse/storefront/internal/core/domain"
	"github.com/shopverse/storefront/internal/core/format"
	"github.com/shopverse/storefront/internal/core/ports"
	"github.com/shopverse/storefront/internal/pkg/metrics"
	"github.com/shopverse/storefront/internal/pkg/storage"
)

// UserKey is the storage key of the logged-in user.
const UserKey = "shopverse_user"

// DefaultAdminEmail is the reserved address that logs in as administrator.
const DefaultAdminEmail = "admin@shopverse.com"

// AdminUser returns the fixed administrator identity for email.
func AdminUser(email string) *domain.User {
	return &domain.User{
		ID:    "admin-001",
		Name:  "Admin User",
		Email: email,
		Role:  domain.RoleAdmin,
	}
}

// AuthOptions configures an AuthStore. Zero values pick the defaults.
type AuthOptions struct {
	AdminEmail string
	// Delay is the simulated network latency of Login and Register.
	// Production wiring passes format.DefaultDelay; tests pass zero.
	Delay time.Duration
	NewID func() string
}

func (o AuthOptions) withDefaults() AuthOptions {
	if o.AdminEmail == "" {
		o.AdminEmail = DefaultAdminEmail
	}
	if o.NewID == nil {
		o.NewID = func() string { return "user-" + uuid.NewString() }
	}
	return o
}

// AuthStore holds the current user of one session and mirrors it to storage.
// Login and Register are mock calls: they accept any non-blank credentials.
type AuthStore struct {
	mu   sync.Mutex
	user *domain.User

	slot *storage.Slot[domain.User]
	opts AuthOptions
	log  zerolog.Logger
}

var _ ports.AuthStore = (*AuthStore)(nil)

// NewAuthStore restores the user persisted in kv, if any. A stored value that
// cannot be decoded is dropped and the session starts logged out.
func NewAuthStore(ctx context.Context, kv ports.KeyValueStore, opts AuthOptions, log zerolog.Logger) *AuthStore {
	s := &AuthStore{
		slot: storage.NewSlot[domain.User](kv, UserKey),
		opts: opts.withDefaults(),
		log:  log,
	}
	s.restore(ctx)
	return s
}

func (s *AuthStore) restore(ctx context.Context) {
	u, ok, err := s.slot.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrDecode):
		metrics.StorageDecodeFailuresTotal.WithLabelValues(UserKey).Inc()
		s.log.Warn().Err(err).Msg("discarding malformed stored user")
		if err := s.slot.Clear(ctx); err != nil {
			s.log.Warn().Err(err).Msg("failed to clear stored user")
		}
	case err != nil:
		s.log.Warn().Err(err).Msg("failed to restore user, starting logged out")
	case ok:
		s.user = &u
	}
}

// Login waits the simulated delay, then signs in. The reserved admin address
// (compared case-sensitively) yields the administrator; any other address a
// customer named after its local part.
func (s *AuthStore) Login(ctx context.Context, email, password string) (*domain.User, error) {
	format.Sleep(s.opts.Delay)

	if isBlank(email) || isBlank(password) {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid").Inc()
		return nil, domain.NewValidationError("email and password are required")
	}

	var u *domain.User
	if email == s.opts.AdminEmail {
		u = AdminUser(email)
	} else {
		local, _, _ := strings.Cut(email, "@")
		u = &domain.User{
			ID:    s.opts.NewID(),
			Name:  local,
			Email: email,
			Role:  domain.RoleCustomer,
		}
	}

	s.set(ctx, u)
	metrics.AuthAttemptsTotal.WithLabelValues("login", "ok").Inc()
	s.log.Info().Str("user_id", u.ID).Str("role", u.Role).Msg("user logged in")
	return cloneUser(u), nil
}

// Register waits the simulated delay, then signs in a new customer.
func (s *AuthStore) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	format.Sleep(s.opts.Delay)

	if isBlank(name) || isBlank(email) || isBlank(password) {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "invalid").Inc()
		return nil, domain.NewValidationError("all fields are required")
	}

	u := &domain.User{
		ID:    s.opts.NewID(),
		Name:  name,
		Email: email,
		Role:  domain.RoleCustomer,
	}

	s.set(ctx, u)
	metrics.AuthAttemptsTotal.WithLabelValues("register", "ok").Inc()
	s.log.Info().Str("user_id", u.ID).Msg("user registered")
	return cloneUser(u), nil
}

// Logout forgets the current user.
func (s *AuthStore) Logout(ctx context.Context) {
	s.set(ctx, nil)
}

// UpdateProfile merges update into the current user. Without a user it does
// nothing.
func (s *AuthStore) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	next := *s.user
	if update.Name != nil {
		next.Name = *update.Name
	}
	if update.Email != nil {
		next.Email = *update.Email
	}
	s.user = &next
	s.persist(ctx)
}

// User returns a copy of the current user, or nil when logged out.
func (s *AuthStore) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneUser(s.user)
}

func (s *AuthStore) set(ctx context.Context, u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.persist(ctx)
}

// persist must be called with mu held.
func (s *AuthStore) persist(ctx context.Context) {
	var err error
	if s.user == nil {
		err = s.slot.Clear(ctx)
	} else {
		err = s.slot.Save(ctx, *s.user)
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to persist user")
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
