package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
}

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrDuplicateOrder    = errors.New("order already submitted")
)

// Pricing rules applied at checkout.
var (
	FreeShippingThreshold = decimal.NewFromInt(50)
	FlatShippingFee       = decimal.RequireFromString("9.99")
	TaxRate               = decimal.RequireFromString("0.08")
)

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ShippingAddress is the contact and delivery block of the checkout form.
type ShippingAddress struct {
	FirstName string `json:"firstName" bson:"first_name"`
	LastName  string `json:"lastName" bson:"last_name"`
	Email     string `json:"email" bson:"email"`
	Phone     string `json:"phone" bson:"phone"`
	Address   string `json:"address" bson:"address"`
	City      string `json:"city" bson:"city"`
	State     string `json:"state" bson:"state"`
	ZipCode   string `json:"zipCode" bson:"zip_code"`
	Country   string `json:"country" bson:"country"`
}

// OrderSummary is the price breakdown shown next to the checkout form.
type OrderSummary struct {
	Subtotal              float64 `json:"subtotal" bson:"subtotal"`
	Shipping              float64 `json:"shipping" bson:"shipping"`
	Tax                   float64 `json:"tax" bson:"tax"`
	Total                 float64 `json:"total" bson:"total"`
	FreeShippingRemaining float64 `json:"freeShippingRemaining" bson:"-"`
}

// Summarize prices a cart: free shipping from the threshold up, flat fee
// below it, tax on the subtotal.
func Summarize(c Cart) OrderSummary {
	subtotal := c.TotalDecimal()
	shipping := FlatShippingFee
	remaining := FreeShippingThreshold.Sub(subtotal)
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		shipping = decimal.Zero
		remaining = decimal.Zero
	}
	tax := subtotal.Mul(TaxRate)
	total := subtotal.Add(shipping).Add(tax)

	return OrderSummary{
		Subtotal:              subtotal.Round(2).InexactFloat64(),
		Shipping:              shipping.Round(2).InexactFloat64(),
		Tax:                   tax.Round(2).InexactFloat64(),
		Total:                 total.Round(2).InexactFloat64(),
		FreeShippingRemaining: remaining.Round(2).InexactFloat64(),
	}
}

// Order is a placed checkout.
type Order struct {
	ID              string          `json:"id" bson:"_id"`
	UserID          string          `json:"userId,omitempty" bson:"user_id,omitempty"`
	SessionID       string          `json:"-" bson:"session_id"`
	Items           Cart            `json:"items" bson:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress" bson:"shipping_address"`
	Summary         OrderSummary    `json:"summary" bson:"summary"`
	Status          OrderStatus     `json:"status" bson:"status"`
	CreatedAt       time.Time       `json:"createdAt" bson:"created_at"`
}
