package repository

import "github.com/dorixona/pharmacy-api/internal/domain/entity"

// CustomerRepository is the port for the admin customer directory.
type CustomerRepository interface {
	List() []entity.Customer
	GetByID(id string) (*entity.Customer, error)
}
