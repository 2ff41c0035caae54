package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dorixona/pharmacy-api/internal/domain/entity"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
)

// Filter narrows the catalog listing. Zero values mean "no filter".
type Filter struct {
	Query    string          // case-insensitive substring over name, description, manufacturer
	Category string          // exact category
	MinPrice decimal.Decimal // inclusive lower bound, zero = open
	MaxPrice decimal.Decimal // inclusive upper bound, zero = open
}

// UseCase medicine browsing and search.
type UseCase struct {
	medicines repository.MedicineRepository
}

// NewUseCase builds the catalog use case.
func NewUseCase(medicines repository.MedicineRepository) *UseCase {
	return &UseCase{medicines: medicines}
}

// List returns the catalog narrowed by the filter.
func (uc *UseCase) List(f Filter) []entity.Medicine {
	all := uc.medicines.List()
	out := make([]entity.Medicine, 0, len(all))
	q := strings.ToLower(strings.TrimSpace(f.Query))
	for _, m := range all {
		if q != "" && !matches(m, q) {
			continue
		}
		if f.Category != "" && m.Category != f.Category {
			continue
		}
		if !f.MinPrice.IsZero() && m.Price.LessThan(f.MinPrice) {
			continue
		}
		if !f.MaxPrice.IsZero() && m.Price.GreaterThan(f.MaxPrice) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Get returns one catalog item or domain.ErrNotFound.
func (uc *UseCase) Get(id string) (*entity.Medicine, error) {
	return uc.medicines.GetByID(id)
}

// Categories returns the distinct categories in catalog order.
func (uc *UseCase) Categories() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, m := range uc.medicines.List() {
		if _, ok := seen[m.Category]; ok {
			continue
		}
		seen[m.Category] = struct{}{}
		out = append(out, m.Category)
	}
	return out
}

func matches(m entity.Medicine, q string) bool {
	return strings.Contains(strings.ToLower(m.Name), q) ||
		strings.Contains(strings.ToLower(m.Description), q) ||
		strings.Contains(strings.ToLower(m.Manufacturer), q)
}
