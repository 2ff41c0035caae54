package staticdata

import (
	"sync"

	"github.com/dorixona/pharmacy-api/internal/domain/entity"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo keeps the counter sale history in memory. The history
// starts empty; Create prepends so List is newest first.
type SaleRepo struct {
	mu    sync.Mutex
	items []entity.Sale
}

// NewSaleRepository builds an empty sale history.
func NewSaleRepository() *SaleRepo {
	return &SaleRepo{}
}

// List returns the sale history, newest first.
func (r *SaleRepo) List() []entity.Sale {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Sale, len(r.items))
	copy(out, r.items)
	return out
}

// Create prepends a completed sale.
func (r *SaleRepo) Create(sale entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]entity.Sale{sale}, r.items...)
	return nil
}
