package orders

import (
	"github.com/dorixona/pharmacy-api/internal/domain/entity"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
)

// UseCase order listings for both consoles and the admin status flow.
type UseCase struct {
	orders repository.OrderRepository
}

// NewUseCase builds the orders use case.
func NewUseCase(orders repository.OrderRepository) *UseCase {
	return &UseCase{orders: orders}
}

// ListAll returns every order (admin console).
func (uc *UseCase) ListAll() []entity.Order {
	return uc.orders.List()
}

// ListForCustomer returns the orders of one customer.
func (uc *UseCase) ListForCustomer(customerID string) []entity.Order {
	return uc.orders.ListByCustomer(customerID)
}

// Get returns one order or domain.ErrNotFound.
func (uc *UseCase) Get(id string) (*entity.Order, error) {
	return uc.orders.GetByID(id)
}

// SetStatus moves an order to a status from the closed set. Returns
// domain.ErrInvalidInput for unknown statuses.
func (uc *UseCase) SetStatus(id, status string) (*entity.Order, error) {
	return uc.orders.UpdateStatus(id, status)
}
