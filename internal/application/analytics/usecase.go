package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dorixona/pharmacy-api/internal/domain/entity"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
)

// expiryWindow is how far ahead a medicine counts as "expiring".
const expiryWindow = 90 * 24 * time.Hour

// UseCase dashboard statistics over the demo datasets.
type UseCase struct {
	orders    repository.OrderRepository
	medicines repository.MedicineRepository
	customers repository.CustomerRepository
	sales     repository.SaleRepository
}

// NewUseCase builds the analytics use case.
func NewUseCase(orders repository.OrderRepository, medicines repository.MedicineRepository, customers repository.CustomerRepository, sales repository.SaleRepository) *UseCase {
	return &UseCase{orders: orders, medicines: medicines, customers: customers, sales: sales}
}

// Dashboard computes the headline numbers of the admin dashboard.
func (uc *UseCase) Dashboard(now time.Time) entity.DashboardStats {
	orders := uc.orders.List()
	medicines := uc.medicines.List()
	today := now.UTC().Format("2006-01-02")

	stats := entity.DashboardStats{
		TotalOrders:    len(orders),
		TotalRevenue:   decimal.Zero,
		TotalCustomers: len(uc.customers.List()),
		TotalMedicines: len(medicines),
		TodayRevenue:   decimal.Zero,
	}
	for _, o := range orders {
		stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalAmount)
		if len(o.OrderDate) >= len(today) && o.OrderDate[:len(today)] == today {
			stats.TodayOrders++
			stats.TodayRevenue = stats.TodayRevenue.Add(o.TotalAmount)
		}
	}
	for _, m := range medicines {
		if m.LowStock() {
			stats.LowStockItems++
		}
		if expiring(m, now) {
			stats.ExpiringItems++
		}
	}
	return stats
}

// Pharmacy computes the pharmacy_admin dashboard variant: the headline
// numbers plus fulfilment and counter sale counters.
func (uc *UseCase) Pharmacy(now time.Time) entity.PharmacyStats {
	stats := entity.PharmacyStats{DashboardStats: uc.Dashboard(now), SalesRevenue: decimal.Zero}
	for _, s := range uc.sales.List() {
		stats.TotalSales++
		stats.SalesRevenue = stats.SalesRevenue.Add(s.TotalAmount)
	}
	for _, o := range uc.orders.List() {
		switch o.Status {
		case entity.OrderNew, entity.OrderProcessing:
			stats.PendingOrders++
		case entity.OrderDelivered:
			stats.DeliveredOrders++
		}
	}
	for _, m := range uc.medicines.List() {
		if m.Stock > 0 {
			stats.ActiveMedicines++
		}
	}
	return stats
}

// expiring reports whether the expiry date falls inside the window.
// Unparseable dates do not count.
func expiring(m entity.Medicine, now time.Time) bool {
	exp, err := time.Parse("2006-01-02", m.ExpiryDate)
	if err != nil {
		return false
	}
	return exp.After(now) && exp.Before(now.Add(expiryWindow))
}
