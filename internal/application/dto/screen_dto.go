package dto

// CartAddRequest add or bump a catalog item in the cart.
type CartAddRequest struct {
	MedicineID string `json:"medicineId"`
	Quantity   int    `json:"quantity"`
}

// CartUpdateRequest set an exact quantity for a cart line.
type CartUpdateRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest delivery details for cart checkout.
type CheckoutRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	Notes           string `json:"notes,omitempty"`
}

// SaleCompleteRequest close the current counter sale.
type SaleCompleteRequest struct {
	CustomerName  string `json:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
}

// MovementRequest register an inventory movement.
type MovementRequest struct {
	MedicineID string `json:"medicineId"`
	Type       string `json:"type"` // in | out
	Quantity   int    `json:"quantity"`
	Reason     string `json:"reason"`
}

// OrderStatusRequest move an order to a new status.
type OrderStatusRequest struct {
	Status string `json:"status"`
}
