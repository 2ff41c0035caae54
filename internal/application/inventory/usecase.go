package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dorixona/pharmacy-api/internal/domain"
	"github.com/dorixona/pharmacy-api/internal/domain/entity"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
)

// MovementInput parameters for registering a stock movement.
type MovementInput struct {
	MedicineID string
	Type       string // entity.MovementIn | entity.MovementOut
	Quantity   int
	Reason     string
	ActorID    string
	ActorName  string
}

// UseCase inventory movements and stock alerts.
type UseCase struct {
	medicines repository.MedicineRepository
	movements repository.StockMovementRepository
}

// NewUseCase builds the inventory use case.
func NewUseCase(medicines repository.MedicineRepository, movements repository.StockMovementRepository) *UseCase {
	return &UseCase{medicines: medicines, movements: movements}
}

// Movements returns the movement log.
func (uc *UseCase) Movements() []entity.StockMovement {
	return uc.movements.List()
}

// LowStock returns catalog items at or below their minimum level.
func (uc *UseCase) LowStock() []entity.Medicine {
	var out []entity.Medicine
	for _, m := range uc.medicines.List() {
		if m.LowStock() {
			out = append(out, m)
		}
	}
	return out
}

// RegisterMovement applies an in/out movement to the medicine stock and
// appends it to the log. An outbound movement larger than the current
// stock is rejected with domain.ErrInsufficientStock and changes
// nothing.
func (uc *UseCase) RegisterMovement(in MovementInput) (*entity.StockMovement, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	if in.Type != entity.MovementIn && in.Type != entity.MovementOut {
		return nil, fmt.Errorf("%w: movement type %q", domain.ErrInvalidInput, in.Type)
	}

	m, err := uc.medicines.GetByID(in.MedicineID)
	if err != nil {
		return nil, err
	}

	switch in.Type {
	case entity.MovementIn:
		m.Stock += in.Quantity
	case entity.MovementOut:
		if in.Quantity > m.Stock {
			return nil, domain.ErrInsufficientStock
		}
		m.Stock -= in.Quantity
	}

	if err := uc.medicines.Update(*m); err != nil {
		return nil, err
	}

	movement := entity.StockMovement{
		ID:           uuid.New().String(),
		MedicineID:   m.ID,
		MedicineName: m.Name,
		Type:         in.Type,
		Quantity:     in.Quantity,
		Reason:       in.Reason,
		Date:         time.Now().UTC().Format(time.RFC3339),
		UserID:       in.ActorID,
		UserName:     in.ActorName,
	}
	if err := uc.movements.Create(movement); err != nil {
		return nil, err
	}
	return &movement, nil
}
