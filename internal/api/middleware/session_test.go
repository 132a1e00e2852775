package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopverse/storefront/internal/core/domain"
	"github.com/shopverse/storefront/internal/core/ports"
)

type stubAuth struct {
	ports.AuthStore
	user *domain.User
}

func (a stubAuth) User() *domain.User { return a.user }

type stubSession struct {
	id   string
	user *domain.User
}

func (s *stubSession) ID() string            { return s.id }
func (s *stubSession) Auth() ports.AuthStore { return stubAuth{user: s.user} }
func (s *stubSession) Cart() ports.CartStore { return nil }

type stubManager struct {
	requested string
	replaceID string
	user      *domain.User
	err       error
}

func (m *stubManager) Open(_ context.Context, id string) (ports.Session, error) {
	m.requested = id
	if m.err != nil {
		return nil, m.err
	}
	if id == "" {
		id = "fresh-id"
	}
	if m.replaceID != "" {
		id = m.replaceID
	}
	return &stubSession{id: id, user: m.user}, nil
}

func TestSession_OpensAndEchoesID(t *testing.T) {
	e := echo.New()
	manager := &stubManager{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderSessionID, "abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(manager)(func(c echo.Context) error {
		s, ok := c.Get(ContextKeySession).(ports.Session)
		if !ok || s.ID() != "abc" {
			t.Fatalf("session not injected")
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if manager.requested != "abc" {
		t.Fatalf("expected header id to be requested, got %q", manager.requested)
	}
	if rec.Header().Get(HeaderSessionID) != "abc" {
		t.Fatalf("session id not echoed")
	}
}

func TestSession_AssignsWhenMissing(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(&stubManager{})(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Header().Get(HeaderSessionID) != "fresh-id" {
		t.Fatalf("expected assigned id, got %q", rec.Header().Get(HeaderSessionID))
	}
}

func TestSession_OpenError(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	boom := errors.New("storage down")

	handler := Session(&stubManager{err: boom})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); !errors.Is(err, boom) {
		t.Fatalf("expected open error, got %v", err)
	}
}
