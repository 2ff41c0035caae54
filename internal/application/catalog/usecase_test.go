package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dorixona/pharmacy-api/internal/application/catalog"
	"github.com/dorixona/pharmacy-api/internal/domain"
	"github.com/dorixona/pharmacy-api/internal/infrastructure/staticdata"
)

func TestList_Filters(t *testing.T) {
	uc := catalog.NewUseCase(staticdata.NewMedicineRepository())

	tests := []struct {
		name   string
		filter catalog.Filter
		want   int
	}{
		{"no filter returns full catalog", catalog.Filter{}, 6},
		{"query matches manufacturer", catalog.Filter{Query: "bayer"}, 2},
		{"query is case insensitive", catalog.Filter{Query: "PARACETAMOL"}, 1},
		{"query with no hits", catalog.Filter{Query: "insulin"}, 0},
		{"category exact match", catalog.Filter{Category: "Vitaminlar"}, 1},
		{"min price bound", catalog.Filter{MinPrice: decimal.NewFromInt(20000)}, 2},
		{"max price bound", catalog.Filter{MaxPrice: decimal.NewFromInt(8000)}, 2},
		{"price band", catalog.Filter{MinPrice: decimal.NewFromInt(10000), MaxPrice: decimal.NewFromInt(20000)}, 2},
		{"query and category combined", catalog.Filter{Query: "sirop", Category: "Bolalar dorilari"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, uc.List(tt.filter), tt.want)
		})
	}
}

func TestGet(t *testing.T) {
	uc := catalog.NewUseCase(staticdata.NewMedicineRepository())

	m, err := uc.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol 500mg", m.Name)

	_, err = uc.Get("99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategories_DistinctInCatalogOrder(t *testing.T) {
	uc := catalog.NewUseCase(staticdata.NewMedicineRepository())

	got := uc.Categories()
	assert.Equal(t, []string{
		"Og'riq qoldiruvchi",
		"Vitaminlar",
		"Yurak dorilar",
		"Antibiotik",
		"Bolalar dorilari",
	}, got)
}
