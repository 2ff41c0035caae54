package entity

import "github.com/shopspring/decimal"

// DashboardStats are the headline numbers of the admin dashboard,
// computed over the full dataset.
type DashboardStats struct {
	TotalOrders    int             `json:"totalOrders"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalCustomers int             `json:"totalCustomers"`
	TotalMedicines int             `json:"totalMedicines"`
	LowStockItems  int             `json:"lowStockItems"`
	ExpiringItems  int             `json:"expiringItems"`
	TodayOrders    int             `json:"todayOrders"`
	TodayRevenue   decimal.Decimal `json:"todayRevenue"`
}

// PharmacyStats extends the dashboard numbers for the pharmacy_admin
// dashboard variant with fulfilment-oriented counters.
type PharmacyStats struct {
	DashboardStats
	PendingOrders   int             `json:"pendingOrders"`
	DeliveredOrders int             `json:"deliveredOrders"`
	ActiveMedicines int             `json:"activeMedicines"`
	TotalSales      int             `json:"totalSales"`
	SalesRevenue    decimal.Decimal `json:"salesRevenue"`
}
