package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/TiendaPOS-api/internal/application/auth"
	"github.com/jhoicas/TiendaPOS-api/internal/application/purchasing"
	"github.com/jhoicas/TiendaPOS-api/internal/application/reports"
	"github.com/jhoicas/TiendaPOS-api/internal/application/sales"
	"github.com/jhoicas/TiendaPOS-api/internal/application/usecase"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	SupplierUC *usecase.SupplierUseCase
	MovementUC *usecase.MovementUseCase
	InsightsUC *usecase.InsightsUseCase
	SaleUC     *sales.SaleUseCase
	PurchaseUC *purchasing.PurchaseOrderUseCase
	ReportUC   *reports.ReportUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
// Lecturas: cualquier usuario autenticado. Mutaciones de inventario y compras:
// admin o bodeguero. Ventas y devoluciones: admin o vendedor.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	inventoryRole := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	salesRole := RequireRole(entity.RoleAdmin, entity.RoleVendedor)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", inventoryRole, productHandler.Create)
	products.Patch("/:id", inventoryRole, productHandler.Update)
	products.Delete("/:id", inventoryRole, productHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", inventoryRole, categoryHandler.Create)
	categories.Patch("/:id", inventoryRole, categoryHandler.Update)
	categories.Delete("/:id", inventoryRole, categoryHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", inventoryRole, supplierHandler.Create)
	suppliers.Patch("/:id", inventoryRole, supplierHandler.Update)
	suppliers.Delete("/:id", inventoryRole, supplierHandler.Delete)

	// Movements (log del ledger + ajustes manuales)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Post("/", inventoryRole, movementHandler.Create)

	// Sales y Returns
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup := protected.Group("/sales")
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Post("/", salesRole, saleHandler.Create)
	salesGroup.Post("/bulk", salesRole, saleHandler.CreateBulk)

	returns := protected.Group("/returns")
	returns.Get("/", saleHandler.ListReturns)
	returns.Post("/", salesRole, saleHandler.CreateReturn)

	// Purchase orders
	orders := protected.Group("/purchase-orders")
	purchaseHandler := NewPurchaseOrderHandler(deps.PurchaseUC)
	orders.Get("/", purchaseHandler.List)
	orders.Get("/:id", purchaseHandler.GetByID)
	orders.Post("/", inventoryRole, purchaseHandler.Create)
	orders.Post("/receive-all", inventoryRole, purchaseHandler.ReceiveAll)
	orders.Post("/:id/receive", inventoryRole, purchaseHandler.Receive)
	orders.Post("/:id/cancel", inventoryRole, purchaseHandler.Cancel)

	// Reports
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/low-stock", reportHandler.LowStock)
	reportsGroup.Get("/out-of-stock", reportHandler.OutOfStock)
	reportsGroup.Get("/top-products", reportHandler.TopProducts)
	reportsGroup.Get("/weekly-sales", reportHandler.WeeklySales)
	reportsGroup.Get("/dashboard", reportHandler.Dashboard)

	// Insights (proxy a servicios externos)
	insights := protected.Group("/insights")
	insightsHandler := NewInsightsHandler(deps.InsightsUC)
	insights.Post("/forecast", insightsHandler.Forecast)
	insights.Post("/promotions", insightsHandler.Promotions)
}
