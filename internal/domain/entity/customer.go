package entity

import "github.com/shopspring/decimal"

// Customer is an admin-console view of a buyer with purchase aggregates.
type Customer struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	TotalOrders int             `json:"totalOrders"`
	TotalSpent  decimal.Decimal `json:"totalSpent"`
	JoinedAt    string          `json:"joinedAt"`
}
