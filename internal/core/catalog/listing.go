package catalog

import (
	"net/url"

	"github.com/shopverse/storefront/internal/core/domain"
)

// Query-string keys understood by a listing.
const (
	ParamCategory = "category"
	ParamSearch   = "search"
)

// Listing is the state behind a product listing page: search, filters, sort
// and current page, kept in step with the address query string.
//
// Changing search, filters or sort goes back to page 1. Only the category is
// written back into the query string; the search term is read once.
type Listing struct {
	params url.Values
	query  Query
	page   int
}

// NewListing seeds category and search from params. params is copied.
func NewListing(params url.Values) *Listing {
	cp := url.Values{}
	for k, v := range params {
		cp[k] = append([]string(nil), v...)
	}
	return &Listing{
		params: cp,
		query: Query{
			Search:  cp.Get(ParamSearch),
			Filters: domain.FilterState{Category: cp.Get(ParamCategory)},
			Sort:    domain.SortFeatured,
		},
		page: 1,
	}
}

// SetFilters replaces the filter state and mirrors its category into the
// query string.
func (l *Listing) SetFilters(f domain.FilterState) {
	if !l.query.Filters.Equal(f) {
		l.page = 1
	}
	l.query.Filters = f
	if f.Category != "" {
		l.params.Set(ParamCategory, f.Category)
	} else {
		l.params.Del(ParamCategory)
	}
}

// SetSort changes the ordering.
func (l *Listing) SetSort(k domain.SortKey) {
	if l.query.Sort != k {
		l.page = 1
	}
	l.query.Sort = k
}

// SetSearch changes the search term without touching the query string.
func (l *Listing) SetSearch(s string) {
	if l.query.Search != s {
		l.page = 1
	}
	l.query.Search = s
}

// SetPage moves to page p (1-based).
func (l *Listing) SetPage(p int) {
	if p < 1 {
		p = 1
	}
	l.page = p
}

// Page returns the current page.
func (l *Listing) Page() int { return l.page }

// Query returns the current engine input.
func (l *Listing) Query() Query { return l.query }

// Params returns a copy of the current query string.
func (l *Listing) Params() url.Values {
	cp := url.Values{}
	for k, v := range l.params {
		cp[k] = append([]string(nil), v...)
	}
	return cp
}

// Run evaluates the listing over products.
func (l *Listing) Run(products []domain.Product, size int) Page {
	return Run(products, l.query, l.page, size)
}
