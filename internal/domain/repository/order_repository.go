package repository

import "github.com/dorixona/pharmacy-api/internal/domain/entity"

// OrderRepository is the port for customer orders.
type OrderRepository interface {
	List() []entity.Order
	ListByCustomer(customerID string) []entity.Order
	GetByID(id string) (*entity.Order, error)
	Create(order entity.Order) error
	UpdateStatus(id, status string) (*entity.Order, error)
}
