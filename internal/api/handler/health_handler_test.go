package handler

import (
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestHealthHandler_Liveness(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health", "", nil)
	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthDependencies_MemoryOnly(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health/ready", "", nil)
	if err := NewHealthDependenciesHandler(nil, nil).Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decode[readinessResponse](t, rec)
	if rec.Code != http.StatusOK || resp.Status != "ok" || len(resp.Dependencies) != 0 {
		t.Fatalf("unexpected readiness: %d %+v", rec.Code, resp)
	}
}

func TestHealthDependencies_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	h := NewHealthDependenciesHandler(nil, client)

	c, rec := newContext(http.MethodGet, "/health/ready", "", nil)
	if err := h.Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decode[readinessResponse](t, rec); rec.Code != http.StatusOK || resp.Dependencies["redis"].Status != "ok" {
		t.Fatalf("unexpected readiness: %d %+v", rec.Code, resp)
	}

	mr.Close()
	c, rec = newContext(http.MethodGet, "/health/ready", "", nil)
	if err := h.Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decode[readinessResponse](t, rec)
	if rec.Code != http.StatusServiceUnavailable || resp.Status != "degraded" || resp.Dependencies["redis"].Status != "unhealthy" {
		t.Fatalf("unexpected readiness: %d %+v", rec.Code, resp)
	}
}
