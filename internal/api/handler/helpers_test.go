package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopverse/storefront/internal/api/middleware"
	"github.com/shopverse/storefront/internal/core/domain"
	"github.com/shopverse/storefront/internal/core/ports"
	"github.com/shopverse/storefront/internal/core/service"
	"github.com/shopverse/storefront/internal/infrastructure/db/memory"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Wireless Headphones", Description: "Noise cancelling over-ear headphones", Category: domain.CategoryElectronics, Price: 79.99, OriginalPrice: 99.99, Stock: 45, Rating: 4.5, Featured: true, Images: []string{"https://img.test/1.jpg"}},
		{ID: 2, Title: "Smart Watch", Category: domain.CategoryElectronics, Price: 199.99, Stock: 12, Rating: 4.7, Images: []string{"https://img.test/2.jpg"}},
		{ID: 3, Title: "Denim Jacket", Category: domain.CategoryFashion, Price: 59.5, Stock: 80, Rating: 4.1, Featured: true, Images: []string{"https://img.test/3.jpg"}},
		{ID: 4, Title: "USB-C Hub", Category: domain.CategoryElectronics, Price: 29.99, Stock: 0, Rating: 4.2, Images: []string{"https://img.test/4.jpg"}},
		{ID: 5, Title: "Desk Lamp", Category: domain.CategoryHomeLiving, Price: 34, Stock: 5, Rating: 3.9, Images: []string{"https://img.test/5.jpg"}},
	}
}

type fixture struct {
	catalog  *service.CatalogService
	checkout *service.CheckoutService
	sessions *service.SessionManager
	orders   *memory.OrderRepository
}

func newFixture() *fixture {
	orders := memory.NewOrderRepository()
	return &fixture{
		catalog:  service.NewCatalogService(memory.NewCatalogRepository(testProducts()), orders, zerolog.Nop()),
		checkout: service.NewCheckoutService(orders, memory.NewIdempotencyGuard(0), service.CheckoutOptions{}, zerolog.Nop()),
		sessions: service.NewSessionManager(memory.NewKeyValueStore(), service.SessionOptions{}, zerolog.Nop()),
		orders:   orders,
	}
}

func (f *fixture) session(t *testing.T) ports.Session {
	t.Helper()
	s, err := f.sessions.Open(context.Background(), "")
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	return s
}

// newContext builds an echo context with the validator installed and, when
// sess is non-nil, the session already resolved.
func newContext(method, target, body string, sess ports.Session) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		c.Set(middleware.ContextKeySession, sess)
	}
	return c, rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json: %v (%s)", err, rec.Body.String())
	}
	return v
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	return he.Code
}

type stubTokens struct {
	user      *domain.User
	sessionID string
}

func (s *stubTokens) Issue(user *domain.User, sessionID string) (string, error) {
	s.user, s.sessionID = user, sessionID
	return "token-" + user.ID, nil
}
