package entity

import "github.com/shopspring/decimal"

// Dosage forms available in the catalog.
const (
	MedicineTablet    = "tablet"
	MedicineSyrup     = "syrup"
	MedicineInjection = "injection"
	MedicineCream     = "cream"
	MedicineDrops     = "drops"
)

// Medicine is a catalog item. Price is in so'm.
type Medicine struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Manufacturer  string          `json:"manufacturer"`
	Dosage        string          `json:"dosage"`
	Type          string          `json:"type"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	ExpiryDate    string          `json:"expiryDate"`
	Category      string          `json:"category"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	BatchNumber   string          `json:"batchNumber"`
	MinStockLevel int             `json:"minStockLevel"`
}

// LowStock reports whether the item is at or below its minimum level.
func (m Medicine) LowStock() bool {
	return m.Stock <= m.MinStockLevel
}
