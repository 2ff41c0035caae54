package staticdata

import (
	"github.com/shopspring/decimal"

	"github.com/dorixona/pharmacy-api/internal/domain"
	"github.com/dorixona/pharmacy-api/internal/domain/entity"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo serves the admin customer directory. Read-only.
type CustomerRepo struct {
	items []entity.Customer
}

// NewCustomerRepository seeds the demo customers.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{items: []entity.Customer{
		{ID: "1", Name: "Ahmad Karimov", Email: "ahmad@example.com", Phone: "+998901234567", Address: "Toshkent, Yunusobod tumani", TotalOrders: 8, TotalSpent: decimal.NewFromInt(420000), JoinedAt: "2024-01-15"},
		{ID: "2", Name: "Malika Sultanova", Email: "malika@example.com", Phone: "+998909876543", Address: "Toshkent, Chilonzor tumani", TotalOrders: 5, TotalSpent: decimal.NewFromInt(185000), JoinedAt: "2024-02-03"},
		{ID: "3", Name: "Bobur Rahimov", Email: "bobur@example.com", Phone: "+998905555555", Address: "Toshkent, Mirobod tumani", TotalOrders: 3, TotalSpent: decimal.NewFromInt(96000), JoinedAt: "2024-03-22"},
		{ID: "4", Name: "Gulnora Azimova", Email: "gulnora@example.com", Phone: "+998907777777", Address: "Toshkent, Shayxontohur tumani", TotalOrders: 6, TotalSpent: decimal.NewFromInt(248000), JoinedAt: "2024-04-10"},
		{ID: "5", Name: "Sardor Toshmatov", Email: "sardor@example.com", Phone: "+998903333333", Address: "Toshkent, Olmazor tumani", TotalOrders: 2, TotalSpent: decimal.NewFromInt(64000), JoinedAt: "2024-05-18"},
	}}
}

// List returns all customers.
func (r *CustomerRepo) List() []entity.Customer {
	out := make([]entity.Customer, len(r.items))
	copy(out, r.items)
	return out
}

// GetByID returns one customer or domain.ErrNotFound.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	for _, c := range r.items {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}
