package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/shopverse/storefront/internal/core/domain"
)

func TestProductHandler_List(t *testing.T) {
	f := newFixture()
	h := NewProductHandler(f.catalog, 8)

	c, rec := newContext(http.MethodGet, "/v1/products?category=Electronics&sort=price-low&page_size=2", "", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decode[map[string]any](t, rec)
	if resp["totalCount"] != float64(3) || resp["totalPages"] != float64(2) || resp["page"] != float64(1) {
		t.Fatalf("unexpected totals: %+v", resp)
	}
	items := resp["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	first := items[0].(map[string]any)
	if first["id"] != float64(4) || first["formattedPrice"] != "$29.99" || first["inStock"] != false {
		t.Fatalf("unexpected first item: %+v", first)
	}
	pages := resp["pages"].([]any)
	if len(pages) != 2 || pages[0] != float64(1) || pages[1] != float64(2) {
		t.Fatalf("unexpected page strip: %v", pages)
	}
	if resp["query"] != "category=Electronics&page_size=2&sort=price-low" {
		t.Fatalf("unexpected canonical query: %v", resp["query"])
	}
}

func TestProductHandler_ListFilters(t *testing.T) {
	f := newFixture()
	h := NewProductHandler(f.catalog, 8)

	c, rec := newContext(http.MethodGet, "/v1/products?min_price=50&max_price=100", "", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decode[map[string]any](t, rec)
	items := resp["items"].([]any)
	if len(items) != 2 || items[0].(map[string]any)["id"] != float64(1) || items[1].(map[string]any)["id"] != float64(3) {
		t.Fatalf("unexpected items: %v", items)
	}
	if resp["pages"] != nil {
		t.Fatalf("single page should have no strip, got %v", resp["pages"])
	}

	c, rec = newContext(http.MethodGet, "/v1/products?search=LAMP", "", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp = decode[map[string]any](t, rec)
	if resp["totalCount"] != float64(1) {
		t.Fatalf("search should match one product, got %v", resp["totalCount"])
	}
}

func TestProductHandler_ListBadParams(t *testing.T) {
	h := NewProductHandler(newFixture().catalog, 8)

	for _, target := range []string{
		"/v1/products?min_price=cheap",
		"/v1/products?page=two",
		"/v1/products?page_size=0",
		"/v1/products?page_size=500",
	} {
		c, _ := newContext(http.MethodGet, target, "", nil)
		if code := httpCode(t, h.List(c)); code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, code)
		}
	}
}

func TestProductHandler_Get(t *testing.T) {
	h := NewProductHandler(newFixture().catalog, 8)

	c, rec := newContext(http.MethodGet, "/v1/products/1", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decode[map[string]any](t, rec)
	p := resp["product"].(map[string]any)
	if p["discount"] != float64(20) || p["formattedOriginalPrice"] != "$99.99" {
		t.Fatalf("unexpected pricing: %+v", p)
	}
	stars := p["stars"].([]any)
	if len(stars) != 5 || stars[3] != "full" || stars[4] != "half" {
		t.Fatalf("unexpected stars: %v", stars)
	}
	if resp["maxQuantity"] != float64(45) {
		t.Fatalf("expected max quantity 45, got %v", resp["maxQuantity"])
	}
	related := resp["related"].([]any)
	if len(related) != 2 || related[0].(map[string]any)["id"] != float64(2) {
		t.Fatalf("unexpected related: %v", related)
	}
}

func TestProductHandler_GetErrors(t *testing.T) {
	h := NewProductHandler(newFixture().catalog, 8)

	c, _ := newContext(http.MethodGet, "/v1/products/99", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("99")
	if err := h.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	c, _ = newContext(http.MethodGet, "/v1/products/abc", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	if code := httpCode(t, h.Get(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestProductHandler_FeaturedAndCategories(t *testing.T) {
	h := NewProductHandler(newFixture().catalog, 8)

	c, rec := newContext(http.MethodGet, "/v1/products/featured", "", nil)
	if err := h.Featured(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if featured := decode[[]map[string]any](t, rec); len(featured) != 2 {
		t.Fatalf("expected 2 featured, got %d", len(featured))
	}

	c, rec = newContext(http.MethodGet, "/v1/categories", "", nil)
	if err := h.Categories(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	cats := decode[[]categoryResponse](t, rec)
	if len(cats) != len(domain.Categories) {
		t.Fatalf("expected %d categories, got %d", len(domain.Categories), len(cats))
	}
	if cats[0].Name != domain.CategoryElectronics || cats[0].Products != 3 || cats[0].Icon != "💻" {
		t.Fatalf("unexpected first category: %+v", cats[0])
	}
}
