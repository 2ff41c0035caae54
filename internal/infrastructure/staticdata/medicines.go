// Package staticdata implements the repository ports over fixed demo
// fixtures held in memory. There is no database behind this service;
// every dataset is seeded here and mutations live for the process only.
package staticdata

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/dorixona/pharmacy-api/internal/domain"
	"github.com/dorixona/pharmacy-api/internal/domain/entity"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
)

var _ repository.MedicineRepository = (*MedicineRepo)(nil)

// MedicineRepo serves the demo medicine catalog.
type MedicineRepo struct {
	mu    sync.RWMutex
	items []entity.Medicine
}

// NewMedicineRepository seeds the catalog.
func NewMedicineRepository() *MedicineRepo {
	return &MedicineRepo{items: []entity.Medicine{
		{
			ID:            "1",
			Name:          "Paracetamol 500mg",
			Description:   "Og'riq qoldiruvchi va isitma tushiruvchi dori",
			Manufacturer:  "Pharmstandard",
			Dosage:        "500mg",
			Type:          entity.MedicineTablet,
			Price:         decimal.NewFromInt(5000),
			Stock:         100,
			ExpiryDate:    "2025-12-31",
			Category:      "Og'riq qoldiruvchi",
			BatchNumber:   "PAR001",
			MinStockLevel: 10,
		},
		{
			ID:            "2",
			Name:          "Ibuprofen 400mg",
			Description:   "Yallig'lanishga qarshi va og'riq qoldiruvchi",
			Manufacturer:  "Bayer",
			Dosage:        "400mg",
			Type:          entity.MedicineTablet,
			Price:         decimal.NewFromInt(12000),
			Stock:         75,
			ExpiryDate:    "2025-10-15",
			Category:      "Og'riq qoldiruvchi",
			BatchNumber:   "IBU002",
			MinStockLevel: 15,
		},
		{
			ID:            "3",
			Name:          "Vitamin D3 1000IU",
			Description:   "Vitamin D tanqisligi uchun",
			Manufacturer:  "Solgar",
			Dosage:        "1000IU",
			Type:          entity.MedicineTablet,
			Price:         decimal.NewFromInt(25000),
			Stock:         50,
			ExpiryDate:    "2026-03-20",
			Category:      "Vitaminlar",
			BatchNumber:   "VIT003",
			MinStockLevel: 20,
		},
		{
			ID:            "4",
			Name:          "Aspirin 100mg",
			Description:   "Yurak va qon tomirlari uchun",
			Manufacturer:  "Bayer",
			Dosage:        "100mg",
			Type:          entity.MedicineTablet,
			Price:         decimal.NewFromInt(8000),
			Stock:         150,
			ExpiryDate:    "2025-08-10",
			Category:      "Yurak dorilar",
			BatchNumber:   "ASP004",
			MinStockLevel: 25,
		},
		{
			ID:            "5",
			Name:          "Amoxicillin 500mg",
			Description:   "Bakterial infeksiyalar uchun antibiotik",
			Manufacturer:  "Antibiotex",
			Dosage:        "500mg",
			Type:          entity.MedicineTablet,
			Price:         decimal.NewFromInt(18000),
			Stock:         80,
			ExpiryDate:    "2025-09-15",
			Category:      "Antibiotik",
			BatchNumber:   "AMX005",
			MinStockLevel: 15,
		},
		{
			ID:            "6",
			Name:          "Nurofen sirop 100ml",
			Description:   "Bolalar uchun isitma tushiruvchi sirop",
			Manufacturer:  "Reckitt",
			Dosage:        "100mg/5ml",
			Type:          entity.MedicineSyrup,
			Price:         decimal.NewFromInt(32000),
			Stock:         8,
			ExpiryDate:    "2025-11-30",
			Category:      "Bolalar dorilari",
			BatchNumber:   "NUR006",
			MinStockLevel: 10,
		},
	}}
}

// List returns a copy of the full catalog.
func (r *MedicineRepo) List() []entity.Medicine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Medicine, len(r.items))
	copy(out, r.items)
	return out
}

// GetByID returns one medicine or domain.ErrNotFound.
func (r *MedicineRepo) GetByID(id string) (*entity.Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.items {
		if m.ID == id {
			m := m
			return &m, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Update replaces a medicine in place (stock adjustments).
func (r *MedicineRepo) Update(medicine entity.Medicine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.items {
		if m.ID == medicine.ID {
			r.items[i] = medicine
			return nil
		}
	}
	return domain.ErrNotFound
}
