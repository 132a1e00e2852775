package domain

import "errors"

// Category names the fixed set of catalog sections.
const (
	CategoryElectronics = "Electronics"
	CategoryFashion     = "Fashion"
	CategoryHomeLiving  = "Home & Living"
	CategorySports      = "Sports"
	CategoryBeauty      = "Beauty"
	CategoryBooks       = "Books"
)

// Categories lists every valid category in display order.
var Categories = []string{
	CategoryElectronics,
	CategoryFashion,
	CategoryHomeLiving,
	CategorySports,
	CategoryBeauty,
	CategoryBooks,
}

// CategoryIcons maps each category to the glyph shown on its card.
var CategoryIcons = map[string]string{
	CategoryElectronics: "💻",
	CategoryFashion:     "👗",
	CategoryHomeLiving:  "🏠",
	CategorySports:      "⚽",
	CategoryBeauty:      "💄",
	CategoryBooks:       "📚",
}

var ErrProductNotFound = errors.New("product not found")

// IsCategory reports whether name is one of the known categories.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Product is a catalog record. The catalog treats it as read-only; writers
// always replace whole values.
type Product struct {
	ID            int      `json:"id" bson:"_id"`
	Title         string   `json:"title" bson:"title"`
	Description   string   `json:"description" bson:"description"`
	Category      string   `json:"category" bson:"category"`
	Price         float64  `json:"price" bson:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty" bson:"original_price,omitempty"`
	Stock         int      `json:"stock" bson:"stock"`
	Rating        float64  `json:"rating" bson:"rating"`
	ReviewCount   int      `json:"reviewCount" bson:"review_count"`
	Images        []string `json:"images" bson:"images"`
	Badge         string   `json:"badge,omitempty" bson:"badge,omitempty"`
	Featured      bool     `json:"featured" bson:"featured"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	if p.Images != nil {
		p.Images = append([]string(nil), p.Images...)
	}
	return p
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// ClampQuantity bounds a requested quantity to [1, stock]. It backs the
// quantity stepper on the product page; the cart itself never consults stock.
func (p Product) ClampQuantity(q int) int {
	if q > p.Stock {
		q = p.Stock
	}
	if q < 1 {
		q = 1
	}
	return q
}

// ProductChanges carries the admin form fields. Nil fields are left untouched
// on update.
type ProductChanges struct {
	Title         *string
	Description   *string
	Category      *string
	Price         *float64
	OriginalPrice *float64
	Stock         *int
	Rating        *float64
	Images        []string
	Badge         *string
	Featured      *bool
}

// Apply merges the non-nil fields of c into p.
func (c ProductChanges) Apply(p Product) Product {
	if c.Title != nil {
		p.Title = *c.Title
	}
	if c.Description != nil {
		p.Description = *c.Description
	}
	if c.Category != nil {
		p.Category = *c.Category
	}
	if c.Price != nil {
		p.Price = *c.Price
	}
	if c.OriginalPrice != nil {
		p.OriginalPrice = *c.OriginalPrice
	}
	if c.Stock != nil {
		p.Stock = *c.Stock
	}
	if c.Rating != nil {
		p.Rating = *c.Rating
	}
	if len(c.Images) > 0 {
		p.Images = append([]string(nil), c.Images...)
	}
	if c.Badge != nil {
		p.Badge = *c.Badge
	}
	if c.Featured != nil {
		p.Featured = *c.Featured
	}
	return p
}
