package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dorixona/pharmacy-api/internal/application/analytics"
	"github.com/dorixona/pharmacy-api/internal/domain/entity"
	"github.com/dorixona/pharmacy-api/internal/infrastructure/staticdata"
)

func newAnalytics(t *testing.T) (*analytics.UseCase, *staticdata.SaleRepo) {
	t.Helper()
	saleRepo := staticdata.NewSaleRepository()
	return analytics.NewUseCase(
		staticdata.NewOrderRepository(),
		staticdata.NewMedicineRepository(),
		staticdata.NewCustomerRepository(),
		saleRepo,
	), saleRepo
}

func TestDashboard(t *testing.T) {
	uc, _ := newAnalytics(t)
	now := time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)

	stats := uc.Dashboard(now)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(86000)))
	assert.Equal(t, 5, stats.TotalCustomers)
	assert.Equal(t, 6, stats.TotalMedicines)
	assert.Equal(t, 1, stats.LowStockItems)

	// Only ORD001 was placed on the reference day.
	assert.Equal(t, 1, stats.TodayOrders)
	assert.True(t, stats.TodayRevenue.Equal(decimal.NewFromInt(22000)))
}

func TestDashboard_ExpiringWindow(t *testing.T) {
	uc, _ := newAnalytics(t)

	// Nothing in the fixtures expires within 90 days of mid 2024.
	assert.Equal(t, 0, uc.Dashboard(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)).ExpiringItems)

	// From mid 2025 several batches fall inside the window.
	stats := uc.Dashboard(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 3, stats.ExpiringItems)
}

func TestPharmacy(t *testing.T) {
	uc, saleRepo := newAnalytics(t)
	now := time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)

	stats := uc.Pharmacy(now)
	require.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 2, stats.PendingOrders)
	assert.Equal(t, 1, stats.DeliveredOrders)
	assert.Equal(t, 6, stats.ActiveMedicines)
	assert.Equal(t, 0, stats.TotalSales)
	assert.True(t, stats.SalesRevenue.IsZero())

	require.NoError(t, saleRepo.Create(entity.Sale{ID: "SALE-1", TotalAmount: decimal.NewFromInt(17000), SaleDate: "2024-06-12T11:00:00Z"}))
	require.NoError(t, saleRepo.Create(entity.Sale{ID: "SALE-2", TotalAmount: decimal.NewFromInt(5000), SaleDate: "2024-06-12T11:30:00Z"}))

	stats = uc.Pharmacy(now)
	assert.Equal(t, 2, stats.TotalSales)
	assert.True(t, stats.SalesRevenue.Equal(decimal.NewFromInt(22000)))
}
