package domain

import "math"

// SortKey selects the ordering of a product listing.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// SortKeys lists the supported keys, default first.
var SortKeys = []SortKey{SortFeatured, SortPriceLow, SortPriceHigh, SortRating, SortNewest}

// ParseSortKey maps s to a known key, falling back to SortFeatured.
func ParseSortKey(s string) SortKey {
	for _, k := range SortKeys {
		if string(k) == s {
			return k
		}
	}
	return SortFeatured
}

// PriceRange is a closed interval [Min, Max]. Max may be +Inf.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Unbounded returns a range with no upper limit.
func Unbounded(min float64) PriceRange {
	return PriceRange{Min: min, Max: math.Inf(1)}
}

// Contains reports whether price lies in the range, bounds included.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// FilterState is the sidebar selection of a listing.
type FilterState struct {
	Category   string      // empty means any category
	PriceRange *PriceRange // nil means any price
	MinRating  float64     // 0 means any rating
}

// Equal reports whether two filter states select the same products.
func (f FilterState) Equal(o FilterState) bool {
	if f.Category != o.Category || f.MinRating != o.MinRating {
		return false
	}
	if (f.PriceRange == nil) != (o.PriceRange == nil) {
		return false
	}
	return f.PriceRange == nil || *f.PriceRange == *o.PriceRange
}
