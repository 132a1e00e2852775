// Package seed embeds the initial product catalog.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/shopverse/storefront/internal/core/domain"
)

//go:embed products.json
var productsJSON []byte

// Products decodes the embedded catalog. Every call returns a fresh slice.
func Products() ([]domain.Product, error) {
	var products []domain.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("seed: decode products: %w", err)
	}
	return products, nil
}
