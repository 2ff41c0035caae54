package repository

import "github.com/dorixona/pharmacy-api/internal/domain/entity"

// MedicineRepository is the port for the medicine catalog.
type MedicineRepository interface {
	List() []entity.Medicine
	GetByID(id string) (*entity.Medicine, error)
	Update(medicine entity.Medicine) error
}
