package repository

import "github.com/dorixona/pharmacy-api/internal/domain/entity"

// StockMovementRepository is the port for inventory movements.
type StockMovementRepository interface {
	List() []entity.StockMovement
	Create(movement entity.StockMovement) error
}
