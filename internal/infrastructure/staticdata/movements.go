package staticdata

import (
	"sync"

	"github.com/dorixona/pharmacy-api/internal/domain/entity"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo serves the inventory movement log.
type StockMovementRepo struct {
	mu    sync.RWMutex
	items []entity.StockMovement
}

// NewStockMovementRepository seeds the demo movement history.
func NewStockMovementRepository() *StockMovementRepo {
	return &StockMovementRepo{items: []entity.StockMovement{
		{ID: "1", MedicineID: "1", MedicineName: "Paracetamol 500mg", Type: entity.MovementIn, Quantity: 100, Reason: "Yangi partiya keldi", Date: "2024-06-10T10:00:00Z", UserID: "1", UserName: "Admin User"},
		{ID: "2", MedicineID: "1", MedicineName: "Paracetamol 500mg", Type: entity.MovementOut, Quantity: 5, Reason: "Sotildi", Date: "2024-06-12T14:30:00Z", UserID: "1", UserName: "Admin User"},
		{ID: "3", MedicineID: "2", MedicineName: "Ibuprofen 400mg", Type: entity.MovementIn, Quantity: 80, Reason: "Ombor to'ldirish", Date: "2024-06-11T09:15:00Z", UserID: "1", UserName: "Admin User"},
	}}
}

// List returns the full movement log.
func (r *StockMovementRepo) List() []entity.StockMovement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.StockMovement, len(r.items))
	copy(out, r.items)
	return out
}

// Create appends a movement to the log.
func (r *StockMovementRepo) Create(movement entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, movement)
	return nil
}
