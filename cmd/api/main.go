package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/dorixona/pharmacy-api/internal/application/analytics"
	"github.com/dorixona/pharmacy-api/internal/application/cart"
	"github.com/dorixona/pharmacy-api/internal/application/catalog"
	"github.com/dorixona/pharmacy-api/internal/application/inventory"
	"github.com/dorixona/pharmacy-api/internal/application/orders"
	"github.com/dorixona/pharmacy-api/internal/application/sales"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
	"github.com/dorixona/pharmacy-api/internal/infrastructure/memstore"
	"github.com/dorixona/pharmacy-api/internal/infrastructure/redisstore"
	"github.com/dorixona/pharmacy-api/internal/infrastructure/staticdata"
	httpRouter "github.com/dorixona/pharmacy-api/internal/interfaces/http"
	"github.com/dorixona/pharmacy-api/internal/seed"
	"github.com/dorixona/pharmacy-api/internal/session"
	"github.com/dorixona/pharmacy-api/pkg/config"
	"github.com/dorixona/pharmacy-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()

	// Persisted session record backend.
	var vault repository.SessionVault
	switch cfg.Session.Backend {
	case "redis":
		rv, err := redisstore.NewVault(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("redis session vault")
		}
		defer rv.Close()
		vault = rv
	default:
		vault = memstore.NewVault()
	}

	directory, err := seed.NewDirectory()
	if err != nil {
		log.Fatal().Err(err).Msg("demo account directory")
	}

	store := session.New(vault, directory, session.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
		LoginDelay: cfg.Session.LoginDelay,
	}, log)
	store.Restore(ctx)

	medicineRepo := staticdata.NewMedicineRepository()
	orderRepo := staticdata.NewOrderRepository()
	customerRepo := staticdata.NewCustomerRepository()
	movementRepo := staticdata.NewStockMovementRepository()
	notificationRepo := staticdata.NewNotificationRepository()
	saleRepo := staticdata.NewSaleRepository()

	catalogUC := catalog.NewUseCase(medicineRepo)
	cartUC := cart.NewUseCase(medicineRepo, orderRepo)
	ordersUC := orders.NewUseCase(orderRepo)
	inventoryUC := inventory.NewUseCase(medicineRepo, movementRepo)
	salesUC := sales.NewUseCase(medicineRepo, saleRepo)
	analyticsUC := analytics.NewUseCase(orderRepo, medicineRepo, customerRepo, saleRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:         store,
		CatalogUC:     catalogUC,
		CartUC:        cartUC,
		OrdersUC:      ordersUC,
		InventoryUC:   inventoryUC,
		SalesUC:       salesUC,
		AnalyticsUC:   analyticsUC,
		Customers:     customerRepo,
		Notifications: notificationRepo,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
