package entity

import "github.com/shopspring/decimal"

// Order statuses. The lifecycle runs new → processing → shipped →
// delivered; cancelled and returned are terminal side exits.
const (
	OrderNew        = "new"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
	OrderReturned   = "returned"
)

// ValidOrderStatus reports whether s is one of the closed status set.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderNew, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled, OrderReturned:
		return true
	}
	return false
}

// OrderItem is a single catalog line inside an order.
type OrderItem struct {
	MedicineID   string          `json:"medicineId"`
	MedicineName string          `json:"medicineName"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
}

// Order is a customer purchase.
type Order struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	ShippingAddress string          `json:"shippingAddress"`
	OrderDate       string          `json:"orderDate"`
	DeliveryDate    string          `json:"deliveryDate,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}
