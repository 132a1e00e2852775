package handler

import (
	"github.com/shopverse/storefront/internal/core/domain"
	"github.com/shopverse/storefront/internal/core/format"
	"github.com/shopverse/storefront/internal/core/ports"
)

// --- Request → domain ---

func toProductChanges(req productRequest) domain.ProductChanges {
	return domain.ProductChanges{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Stock:         req.Stock,
		Rating:        req.Rating,
		Images:        req.Images,
		Badge:         req.Badge,
		Featured:      req.Featured,
	}
}

func toShippingAddress(a shippingAddressRequest) domain.ShippingAddress {
	return domain.ShippingAddress{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Phone:     a.Phone,
		Address:   a.Address,
		City:      a.City,
		State:     a.State,
		ZipCode:   a.ZipCode,
		Country:   a.Country,
	}
}

// --- Domain → HTTP response ---

func toProductResponse(p domain.Product) productResponse {
	r := productResponse{
		Product:        p,
		FormattedPrice: format.FormatPrice(p.Price),
		Discount:       format.Discount(p.OriginalPrice, p.Price),
		Stars:          format.StarArray(p.Rating),
		Summary:        format.Truncate(p.Description, format.DefaultTruncateLength),
		InStock:        p.InStock(),
	}
	if r.Discount > 0 {
		r.FormattedOriginalPrice = format.FormatPrice(p.OriginalPrice)
	}
	return r
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

func toCategoryResponses(in []ports.CategorySummary) []categoryResponse {
	out := make([]categoryResponse, len(in))
	for i, c := range in {
		out[i] = categoryResponse{Name: c.Name, Icon: c.Icon, Products: c.Products}
	}
	return out
}

// toCartResponse renders one cart snapshot so lines, count and total agree.
func toCartResponse(items domain.Cart) cartResponse {
	lines := make([]cartLineResponse, len(items))
	for i, li := range items {
		sub := li.Subtotal().Round(2).InexactFloat64()
		lines[i] = cartLineResponse{
			CartLineItem:      li,
			Subtotal:          sub,
			FormattedSubtotal: format.FormatPrice(sub),
		}
	}
	total := items.Total()
	return cartResponse{
		Items:          lines,
		Count:          items.Count(),
		Total:          total,
		FormattedTotal: format.FormatPrice(total),
	}
}

func toSummaryResponse(s domain.OrderSummary) summaryResponse {
	return summaryResponse{OrderSummary: s, FormattedTotal: format.FormatPrice(s.Total)}
}

func toStatsResponse(s *ports.CatalogStats) statsResponse {
	return statsResponse{
		Products:         s.Products,
		LowStock:         s.LowStock,
		Orders:           s.Orders,
		Revenue:          s.Revenue,
		FormattedRevenue: format.FormatPrice(s.Revenue),
	}
}
