package entity

import "github.com/shopspring/decimal"

// CartItem is a medicine plus the quantity sitting in the cart.
type CartItem struct {
	Medicine Medicine `json:"medicine"`
	Quantity int      `json:"quantity"`
}

// Subtotal is price × quantity for this line.
func (ci CartItem) Subtotal() decimal.Decimal {
	return ci.Medicine.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
