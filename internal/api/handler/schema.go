package handler

import (
	"github.com/shopverse/storefront/internal/core/catalog"
	"github.com/shopverse/storefront/internal/core/domain"
	"github.com/shopverse/storefront/internal/core/format"
)

// --- Requests ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type addItemRequest struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
	Quantity  int `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type shippingAddressRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zipCode" validate:"required"`
	Country   string `json:"country"`
}

type checkoutRequest struct {
	ShippingAddress shippingAddressRequest `json:"shippingAddress" validate:"required"`
}

type productRequest struct {
	Title         *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	OriginalPrice *float64 `json:"originalPrice" validate:"omitempty,gte=0"`
	Stock         *int     `json:"stock" validate:"omitempty,gte=0"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Images        []string `json:"images" validate:"omitempty,dive,url"`
	Badge         *string  `json:"badge"`
	Featured      *bool    `json:"featured"`
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Processing Shipped Delivered Cancelled"`
}

// --- Responses ---

type errorResponse struct {
	Error string `json:"error"`
}

type productResponse struct {
	domain.Product
	FormattedPrice         string        `json:"formattedPrice"`
	FormattedOriginalPrice string        `json:"formattedOriginalPrice,omitempty"`
	Discount               int           `json:"discount"`
	Stars                  []format.Star `json:"stars"`
	Summary                string        `json:"summary"`
	InStock                bool          `json:"inStock"`
}

type productDetailResponse struct {
	Product     productResponse   `json:"product"`
	MaxQuantity int               `json:"maxQuantity"`
	Related     []productResponse `json:"related"`
}

type productListResponse struct {
	Items      []productResponse   `json:"items"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	TotalPages int                 `json:"totalPages"`
	TotalCount int                 `json:"totalCount"`
	Pages      []catalog.Indicator `json:"pages"`
	Query      string              `json:"query"`
}

type categoryResponse struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Products int    `json:"products"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user"`
}

type cartLineResponse struct {
	domain.CartLineItem
	Subtotal          float64 `json:"subtotal"`
	FormattedSubtotal string  `json:"formattedSubtotal"`
}

type cartResponse struct {
	Items          []cartLineResponse `json:"items"`
	Count          int                `json:"count"`
	Total          float64            `json:"total"`
	FormattedTotal string             `json:"formattedTotal"`
}

type summaryResponse struct {
	domain.OrderSummary
	FormattedTotal string `json:"formattedTotal"`
}

type statsResponse struct {
	Products         int     `json:"products"`
	LowStock         int     `json:"lowStock"`
	Orders           int     `json:"orders"`
	Revenue          float64 `json:"revenue"`
	FormattedRevenue string  `json:"formattedRevenue"`
}
