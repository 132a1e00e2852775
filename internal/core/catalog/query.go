// Package catalog derives product listings from an in-memory catalog: search,
// filters, ordering, paging and the page indicator strip.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopverse/storefront/internal/core/domain"
)

// DefaultPageSize is the number of products per listing page.
const DefaultPageSize = 8

// Query is everything that decides which products a listing shows and in
// what order.
type Query struct {
	Search  string
	Filters domain.FilterState
	Sort    domain.SortKey
}

// Apply runs search, category, price and rating filters in that order and then
// sorts the survivors. The input slice is left untouched.
func Apply(products []domain.Product, q Query) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	needle := strings.ToLower(q.Search)

	for _, p := range products {
		if needle != "" && !matchesSearch(p, needle) {
			continue
		}
		if !matchesFilters(p, q.Filters) {
			continue
		}
		out = append(out, p)
	}

	Sort(out, q.Sort)
	return out
}

func matchesSearch(p domain.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}

func matchesFilters(p domain.Product, f domain.FilterState) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.PriceRange != nil && !f.PriceRange.Contains(p.Price) {
		return false
	}
	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}
	return true
}

// Sort orders products in place. The sort is stable, so ties keep the order
// they had in the filtered set.
func Sort(products []domain.Product, key domain.SortKey) {
	slices.SortStableFunc(products, comparator(key))
}

func comparator(key domain.SortKey) func(a, b domain.Product) int {
	switch key {
	case domain.SortPriceLow:
		return func(a, b domain.Product) int { return cmp.Compare(a.Price, b.Price) }
	case domain.SortPriceHigh:
		return func(a, b domain.Product) int { return cmp.Compare(b.Price, a.Price) }
	case domain.SortRating:
		return func(a, b domain.Product) int { return cmp.Compare(b.Rating, a.Rating) }
	case domain.SortNewest:
		return func(a, b domain.Product) int { return cmp.Compare(b.ID, a.ID) }
	default:
		// featured first, no secondary key
		return func(a, b domain.Product) int { return cmp.Compare(rank(b.Featured), rank(a.Featured)) }
	}
}

func rank(featured bool) int {
	if featured {
		return 1
	}
	return 0
}

// Page is one slice of an ordered listing.
type Page struct {
	Items      []domain.Product
	Page       int
	PageSize   int
	TotalPages int
	TotalCount int
}

// Paginate cuts the 1-based page out of products. A page past the end yields
// no items; an empty listing has zero pages.
func Paginate(products []domain.Product, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(products)
	res := Page{
		Items:      []domain.Product{},
		Page:       page,
		PageSize:   size,
		TotalPages: TotalPages(total, size),
		TotalCount: total,
	}

	start := (page - 1) * size
	if start >= total {
		return res
	}
	end := min(start+size, total)
	res.Items = products[start:end]
	return res
}

// TotalPages is ceil(count/size).
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Run applies q and returns the requested page.
func Run(products []domain.Product, q Query, page, size int) Page {
	return Paginate(Apply(products, q), page, size)
}
