package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dorixona/pharmacy-api/internal/application/analytics"
	"github.com/dorixona/pharmacy-api/internal/application/cart"
	"github.com/dorixona/pharmacy-api/internal/application/catalog"
	"github.com/dorixona/pharmacy-api/internal/application/dto"
	"github.com/dorixona/pharmacy-api/internal/application/inventory"
	"github.com/dorixona/pharmacy-api/internal/application/orders"
	"github.com/dorixona/pharmacy-api/internal/application/sales"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
	"github.com/dorixona/pharmacy-api/internal/routing"
	"github.com/dorixona/pharmacy-api/internal/session"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	Store         *session.Store
	CatalogUC     *catalog.UseCase
	CartUC        *cart.UseCase
	OrdersUC      *orders.UseCase
	InventoryUC   *inventory.UseCase
	SalesUC       *sales.UseCase
	AnalyticsUC   *analytics.UseCase
	Customers     repository.CustomerRepository
	Notifications repository.NotificationRepository
}

// Router registers the full route surface. Which tree is active is
// never stored: every request re-evaluates the guards against the
// current session state.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.Store)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	cartHandler := NewCartHandler(deps.CartUC)
	ordersHandler := NewOrdersHandler(deps.OrdersUC)
	dashboardHandler := NewDashboardHandler(deps.AnalyticsUC)
	adminHandler := NewAdminHandler(deps.InventoryUC, deps.Customers, deps.Notifications)
	salesHandler := NewSalesHandler(deps.SalesUC)

	// Auth (always reachable)
	app.Get("/auth", authHandler.Screen)
	app.Get("/auth/session", authHandler.Session)
	app.Post("/auth/login", authHandler.Login)
	app.Post("/auth/register", authHandler.Register)
	app.Post("/auth/logout", authHandler.Logout)

	// Customer tree: ungated while logged out, customer-guarded after.
	customer := app.Group("/customer", CustomerAccess(deps.Store))
	customer.Get("/", dashboardHandler.Customer)
	customer.Get("/medicines", catalogHandler.List)
	customer.Get("/medicines/:id", catalogHandler.Get)
	customer.Get("/search", catalogHandler.Search)
	customer.Get("/cart", cartHandler.Show)
	customer.Delete("/cart", cartHandler.Clear)
	customer.Post("/cart/items", cartHandler.Add)
	customer.Put("/cart/items/:medicineId", cartHandler.Update)
	customer.Delete("/cart/items/:medicineId", cartHandler.Remove)
	customer.Post("/cart/checkout", cartHandler.Checkout)
	customer.Get("/orders", ordersHandler.ListMine)

	// Admin tree: always role-guarded.
	admin := app.Group("/admin", RequireRoles(deps.Store, routing.AdminOnly()))
	admin.Get("/", dashboardHandler.Admin)
	admin.Get("/medicines", catalogHandler.List)
	admin.Get("/medicines/:id", catalogHandler.Get)
	admin.Get("/orders", ordersHandler.ListAll)
	admin.Patch("/orders/:id/status", ordersHandler.SetStatus)
	admin.Get("/customers", adminHandler.Customers)
	admin.Get("/inventory", adminHandler.Inventory)
	admin.Post("/inventory/movements", adminHandler.RegisterMovement)
	admin.Get("/analytics", dashboardHandler.Analytics)
	admin.Get("/sales", salesHandler.Show)
	admin.Post("/sales/items", salesHandler.Add)
	admin.Put("/sales/items/:medicineId", salesHandler.Update)
	admin.Delete("/sales/items/:medicineId", salesHandler.Remove)
	admin.Post("/sales/complete", salesHandler.Complete)
	admin.Get("/notifications", adminHandler.Notifications)
	admin.Get("/notifications/:id", adminHandler.Notification)

	// Root redirect by active mode.
	app.Get("/", func(c *fiber.Ctx) error {
		if routing.ModeFor(deps.Store.Snapshot()) == routing.ModeAdmin {
			return c.Redirect("/admin", fiber.StatusFound)
		}
		return c.Redirect("/customer", fiber.StatusFound)
	})

	// Unauthorized page: authenticated but outside the required roles.
	app.Get("/unauthorized", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "Sizda bu sahifaga kirish huquqi yo'q",
		})
	})

	// Unmatched paths: dedicated not-found page, never fatal.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "Sahifa topilmadi",
		})
	})
}
