package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/entity"
)

// TopProductResult producto con sus unidades vendidas acumuladas en un período.
type TopProductResult struct {
	ProductID    int64
	SKU          string
	ProductName  string
	UnitsSold    int64
	TotalRevenue decimal.Decimal
}

// DailySalesResult total vendido en un día (bucket por fecha).
type DailySalesResult struct {
	Day         time.Time
	SalesCount  int64
	UnitsSold   int64
	TotalAmount decimal.Decimal
}

// SalesTotals agregado de ventas de un período.
type SalesTotals struct {
	SalesCount  int64
	UnitsSold   int64
	TotalAmount decimal.Decimal
}

// ReportRepository consultas de solo lectura derivadas del estado del ledger.
// Siempre se recalculan bajo demanda; no hay estado materializado.
type ReportRepository interface {
	LowStock(ctx context.Context) ([]*entity.Product, error)
	OutOfStock(ctx context.Context) ([]*entity.Product, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductResult, error)
	SalesByDay(ctx context.Context, from, to time.Time) ([]DailySalesResult, error)
	GetSalesTotals(ctx context.Context, from, to time.Time) (SalesTotals, error)
}
