package sales

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

// UseCase is the pharmacy counter sale: one draft sale built from the
// catalog plus the history of completed sales. Like the cart there is
// exactly one draft, owned by the composition root.
type UseCase struct {
	medicines repository.MedicineRepository
	sales     repository.SaleRepository

	mu    sync.Mutex
	items []entity.CartItem
}

// NewUseCase builds a sales desk with an empty draft.
func NewUseCase(medicines repository.MedicineRepository, sales repository.SaleRepository) *UseCase {
	return &UseCase{medicines: medicines, sales: sales}
}

// Items returns a copy of the draft lines.
func (uc *UseCase) Items() []entity.CartItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.CartItem, len(uc.items))
	copy(out, uc.items)
	return out
}

// Total sums the draft line subtotals.
func (uc *UseCase) Total() decimal.Decimal {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	total := decimal.Zero
	for _, it := range uc.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Add puts quantity units of a medicine in the draft, merging with an
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

// SetQuantity sets the exact quantity of a draft line; zero removes it.
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

// Remove drops a line from the draft.
func (uc *UseCase) Remove(medicineID string) error {
	return uc.SetQuantity(medicineID, 0)
}

// Complete closes the draft into a Sale record and clears the draft.
// The customer fields may be empty for walk-in buyers.
func (uc *UseCase) Complete(customerName, customerPhone string) (*entity.Sale, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if len(uc.items) == 0 {
		return nil, fmt.Errorf("%w: empty sale", domain.ErrInvalidInput)
	}

	sale := entity.Sale{
		ID:            "SALE-" + ksuid.New().String(),
		SaleDate:      time.Now().UTC().Format(time.RFC3339),
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		TotalAmount:   decimal.Zero,
	}
	for _, it := range uc.items {
		line := entity.OrderItem{
			MedicineID:   it.Medicine.ID,
			MedicineName: it.Medicine.Name,
			Quantity:     it.Quantity,
			Price:        it.Medicine.Price,
			TotalPrice:   it.Subtotal(),
		}
		sale.Items = append(sale.Items, line)
		sale.TotalAmount = sale.TotalAmount.Add(line.TotalPrice)
	}

	if err := uc.sales.Create(sale); err != nil {
		return nil, err
	}
	uc.items = nil
	return &sale, nil
}

// History returns the completed sales, newest first.
func (uc *UseCase) History() []entity.Sale {
	return uc.sales.List()
}
