package repository

import "github.com/dorixona/pharmacy-api/internal/domain/entity"

// SaleRepository is the port for completed counter sales.
type SaleRepository interface {
	List() []entity.Sale
	Create(sale entity.Sale) error
}
