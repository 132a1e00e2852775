package domain

import "github.com/shopspring/decimal"

// CartLineItem is a product snapshot taken when it was added, plus the
// selected quantity. The snapshot is flattened into the JSON object.
type CartLineItem struct {
	Product  `bson:",inline"`
	Quantity int `json:"quantity" bson:"quantity"`
}

// Subtotal returns price × quantity.
func (li CartLineItem) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(li.Price).Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is the ordered sequence of line items of one session, in insertion
// order. It holds at most one item per product id.
type Cart []CartLineItem

// Index returns the position of the item for productID, or -1.
func (c Cart) Index(productID int) int {
	for i, li := range c {
		if li.ID == productID {
			return i
		}
	}
	return -1
}

// TotalDecimal is Σ price × quantity, exact.
func (c Cart) TotalDecimal() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range c {
		sum = sum.Add(li.Subtotal())
	}
	return sum
}

// Total is Σ price × quantity rounded to cents.
func (c Cart) Total() float64 {
	return c.TotalDecimal().Round(2).InexactFloat64()
}

// Count is Σ quantity.
func (c Cart) Count() int {
	n := 0
	for _, li := range c {
		n += li.Quantity
	}
	return n
}

// Clone returns a deep copy.
func (c Cart) Clone() Cart {
	if c == nil {
		return Cart{}
	}
	out := make(Cart, len(c))
	for i, li := range c {
		out[i] = CartLineItem{Product: li.Product.Clone(), Quantity: li.Quantity}
	}
	return out
}
