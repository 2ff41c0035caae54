package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dorixona/pharmacy-api/internal/application/analytics"
	"github.com/dorixona/pharmacy-api/internal/domain/entity"
)

// DashboardHandler serves the admin dashboards and the analytics
// screen. The dashboard variant is picked by the exact role: the
// pharmacy_admin gets the fulfilment view, the other admin-like roles
// the headline view.
type DashboardHandler struct {
	uc *analytics.UseCase
}

// NewDashboardHandler builds the dashboard handler.
func NewDashboardHandler(uc *analytics.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Admin renders the admin dashboard for the current identity.
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	user := CurrentUser(c)
	now := time.Now()
	if user != nil && user.Role == entity.RolePharmacyAdmin {
		return c.JSON(fiber.Map{
			"dashboard": "pharmacy_admin",
			"stats":     h.uc.Pharmacy(now),
		})
	}
	return c.JSON(fiber.Map{
		"dashboard": "admin",
		"stats":     h.uc.Dashboard(now),
	})
}

// Customer renders the customer dashboard payload.
func (h *DashboardHandler) Customer(c *fiber.Ctx) error {
	payload := fiber.Map{"screen": "customer_dashboard"}
	if user := CurrentUser(c); user != nil {
		payload["user"] = user
	}
	return c.JSON(payload)
}

// Analytics renders the statistics screen.
func (h *DashboardHandler) Analytics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"stats": h.uc.Dashboard(time.Now())})
}
