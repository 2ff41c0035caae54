package cart

import (
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/shopspring/decimal"

	"github.com/dorixona/pharmacy-api/internal/domain"
	"github.com/dorixona/pharmacy-api/internal/domain/entity"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
)

// UseCase is the single shopping cart. Like the session slot there is
// exactly one, owned by the composition root. Logout leaves it intact
// so a returning visitor keeps their picks across sign-ins.
type UseCase struct {
	medicines repository.MedicineRepository
	orders    repository.OrderRepository

	mu    sync.Mutex
	items []entity.CartItem
}

// NewUseCase builds an empty cart.
func NewUseCase(medicines repository.MedicineRepository, orders repository.OrderRepository) *UseCase {
	return &UseCase{medicines: medicines, orders: orders}
}

// Items returns a copy of the cart lines.
func (uc *UseCase) Items() []entity.CartItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.CartItem, len(uc.items))
	copy(out, uc.items)
	return out
}

// Total sums the line subtotals.
func (uc *UseCase) Total() decimal.Decimal {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	total := decimal.Zero
	for _, it := range uc.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Add puts quantity units of a medicine in the cart, merging with an
// existing line. Quantity must be positive and covered by stock.
func (uc *UseCase) Add(medicineID string, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	m, err := uc.medicines.GetByID(medicineID)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i := range uc.items {
		if uc.items[i].Medicine.ID == medicineID {
			next := uc.items[i].Quantity + quantity
			if next > m.Stock {
				return domain.ErrInsufficientStock
			}
			uc.items[i].Quantity = next
			return nil
		}
	}
	if quantity > m.Stock {
		return domain.ErrInsufficientStock
	}
	uc.items = append(uc.items, entity.CartItem{Medicine: *m, Quantity: quantity})
	return nil
}

// SetQuantity sets the exact quantity of a cart line; zero removes it.
func (uc *UseCase) SetQuantity(medicineID string, quantity int) error {
	if quantity < 0 {
		return domain.ErrInvalidInput
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i := range uc.items {
		if uc.items[i].Medicine.ID != medicineID {
			continue
		}
		if quantity == 0 {
			uc.items = append(uc.items[:i], uc.items[i+1:]...)
			return nil
		}
		if quantity > uc.items[i].Medicine.Stock {
			return domain.ErrInsufficientStock
		}
		uc.items[i].Quantity = quantity
		return nil
	}
	return domain.ErrNotFound
}

// Remove drops a line from the cart.
func (uc *UseCase) Remove(medicineID string) error {
	return uc.SetQuantity(medicineID, 0)
}

// Clear empties the cart.
func (uc *UseCase) Clear() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.items = nil
}

// Checkout turns the cart into an order for the given identity and
// clears the cart. The route guard guarantees buyer is a customer.
func (uc *UseCase) Checkout(buyer entity.User, shippingAddress, notes string) (*entity.Order, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if len(uc.items) == 0 {
		return nil, fmt.Errorf("%w: empty cart", domain.ErrInvalidInput)
	}

	order := entity.Order{
		ID:              "ORD-" + ksuid.New().String(),
		CustomerID:      buyer.ID,
		CustomerName:    buyer.Name,
		CustomerPhone:   buyer.Phone,
		Status:          entity.OrderNew,
		ShippingAddress: shippingAddress,
		OrderDate:       time.Now().UTC().Format(time.RFC3339),
		Notes:           notes,
		TotalAmount:     decimal.Zero,
	}
	for _, it := range uc.items {
		line := entity.OrderItem{
			MedicineID:   it.Medicine.ID,
			MedicineName: it.Medicine.Name,
			Quantity:     it.Quantity,
			Price:        it.Medicine.Price,
			TotalPrice:   it.Subtotal(),
		}
		order.Items = append(order.Items, line)
		order.TotalAmount = order.TotalAmount.Add(line.TotalPrice)
	}

	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	uc.items = nil
	return &order, nil
}
