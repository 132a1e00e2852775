package memory

import (
	"context"
	"sync"

	"github.com/shopverse/storefront/internal/core/domain"
)

// CatalogRepository keeps products in a slice, in catalog order.
type CatalogRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewCatalogRepository seeds the repository with a copy of products.
func NewCatalogRepository(products []domain.Product) *CatalogRepository {
	r := &CatalogRepository{products: make([]domain.Product, 0, len(products))}
	for _, p := range products {
		r.products = append(r.products, p.Clone())
	}
	return r
}

func (r *CatalogRepository) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, len(r.products))
	for i, p := range r.products {
		out[i] = p.Clone()
	}
	return out, nil
}

func (r *CatalogRepository) Get(_ context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(id)
	if i < 0 {
		return nil, domain.ErrProductNotFound
	}
	p := r.products[i].Clone()
	return &p, nil
}

func (r *CatalogRepository) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := 1
	for _, existing := range r.products {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	p = p.Clone()
	p.ID = next
	r.products = append([]domain.Product{p}, r.products...)

	created := p.Clone()
	return &created, nil
}

func (r *CatalogRepository) Update(_ context.Context, p domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(p.ID)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	r.products[i] = p.Clone()
	return nil
}

func (r *CatalogRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

func (r *CatalogRepository) index(id int) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
