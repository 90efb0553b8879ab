package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/TiendaPOS-api/internal/application/auth"
	"github.com/jhoicas/TiendaPOS-api/internal/application/ledger"
	"github.com/jhoicas/TiendaPOS-api/internal/application/purchasing"
	"github.com/jhoicas/TiendaPOS-api/internal/application/reports"
	"github.com/jhoicas/TiendaPOS-api/internal/application/sales"
	"github.com/jhoicas/TiendaPOS-api/internal/application/usecase"
	infrainsights "github.com/jhoicas/TiendaPOS-api/internal/infrastructure/insights"
	"github.com/jhoicas/TiendaPOS-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/TiendaPOS-api/internal/interfaces/http"
	"github.com/jhoicas/TiendaPOS-api/pkg/config"
	"github.com/jhoicas/TiendaPOS-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	returnRepo := postgres.NewReturnRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockLedger := ledger.NewStockLedger(txRunner)

	productUC := usecase.NewProductUseCase(productRepo, stockLedger)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	movementUC := usecase.NewMovementUseCase(movementRepo, stockLedger)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, returnRepo, cfg.App.DefaultStore)
	purchaseUC := purchasing.NewPurchaseOrderUseCase(txRunner, orderRepo, productRepo, supplierRepo, cfg.App.DefaultStore)
	reportUC := reports.NewReportUseCase(reportRepo)

	insightsClient := infrainsights.NewClient(cfg.Insights)
	insightsUC := usecase.NewInsightsUseCase(insightsClient, reportRepo, productRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	// RequestLogger va antes de recover: un panic recuperado responde 500 y
	// queda registrado como cualquier otra petición.
	app.Use(httpRouter.RequestLogger(log))
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TiendaPOS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		SupplierUC: supplierUC,
		MovementUC: movementUC,
		InsightsUC: insightsUC,
		SaleUC:     saleUC,
		PurchaseUC: purchaseUC,
		ReportUC:   reportUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
