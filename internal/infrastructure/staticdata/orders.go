package staticdata

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/dorixona/pharmacy-api/internal/domain"
	"github.com/dorixona/pharmacy-api/internal/domain/entity"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo serves the demo orders plus anything checked out during the
// current process.
type OrderRepo struct {
	mu    sync.RWMutex
	items []entity.Order
}

// NewOrderRepository seeds the demo orders.
func NewOrderRepository() *OrderRepo {
	return &OrderRepo{items: []entity.Order{
		{
			ID:            "ORD001",
			CustomerID:    "1",
			CustomerName:  "Ahmad Karimov",
			CustomerPhone: "+998901234567",
			Items: []entity.OrderItem{
				{MedicineID: "1", MedicineName: "Paracetamol 500mg", Quantity: 2, Price: decimal.NewFromInt(5000), TotalPrice: decimal.NewFromInt(10000)},
				{MedicineID: "2", MedicineName: "Ibuprofen 400mg", Quantity: 1, Price: decimal.NewFromInt(12000), TotalPrice: decimal.NewFromInt(12000)},
			},
			TotalAmount:     decimal.NewFromInt(22000),
			Status:          entity.OrderNew,
			ShippingAddress: "Toshkent shahar, Yunusobod tumani",
			OrderDate:       "2024-06-12T10:30:00Z",
			Notes:           "Tezroq yetkazib bering",
		},
		{
			ID:            "ORD002",
			CustomerID:    "2",
			CustomerName:  "Malika Sultanova",
			CustomerPhone: "+998909876543",
			Items: []entity.OrderItem{
				{MedicineID: "3", MedicineName: "Vitamin D3 1000IU", Quantity: 1, Price: decimal.NewFromInt(25000), TotalPrice: decimal.NewFromInt(25000)},
			},
			TotalAmount:     decimal.NewFromInt(25000),
			Status:          entity.OrderProcessing,
			ShippingAddress: "Toshkent shahar, Chilonzor tumani",
			OrderDate:       "2024-06-11T15:45:00Z",
		},
		{
			ID:            "ORD003",
			CustomerID:    "3",
			CustomerName:  "Mijoz User",
			CustomerPhone: "+998909876543",
			Items: []entity.OrderItem{
				{MedicineID: "1", MedicineName: "Paracetamol 500mg", Quantity: 3, Price: decimal.NewFromInt(5000), TotalPrice: decimal.NewFromInt(15000)},
				{MedicineID: "2", MedicineName: "Ibuprofen 400mg", Quantity: 2, Price: decimal.NewFromInt(12000), TotalPrice: decimal.NewFromInt(24000)},
			},
			TotalAmount:     decimal.NewFromInt(39000),
			Status:          entity.OrderDelivered,
			ShippingAddress: "Toshkent shahar, Mirzo Ulug'bek tumani",
			OrderDate:       "2024-06-09T09:20:00Z",
			DeliveryDate:    "2024-06-10T14:00:00Z",
		},
	}}
}

// List returns all orders, newest first is not guaranteed.
func (r *OrderRepo) List() []entity.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Order, len(r.items))
	copy(out, r.items)
	return out
}

// ListByCustomer returns the orders belonging to one customer.
func (r *OrderRepo) ListByCustomer(customerID string) []entity.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.Order
	for _, o := range r.items {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

// GetByID returns one order or domain.ErrNotFound.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.items {
		if o.ID == id {
			o := o
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create appends a new order (cart checkout).
func (r *OrderRepo) Create(order entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, order)
	return nil
}

// UpdateStatus moves an order to the given status and returns it.
func (r *OrderRepo) UpdateStatus(id, status string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Status = status
			o := r.items[i]
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}
