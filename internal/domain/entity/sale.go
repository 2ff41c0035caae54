package entity

import "github.com/shopspring/decimal"

// Sale is one completed counter sale at the pharmacy desk. Its line
// items share the order line shape; the customer fields are optional
// because walk-in buyers are not registered.
type Sale struct {
	ID            string          `json:"id"`
	Items         []OrderItem     `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	SaleDate      string          `json:"saleDate"`
	CustomerName  string          `json:"customerName,omitempty"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
}
