package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockAlertDTO producto en estado de alerta (stock bajo o agotado).
type StockAlertDTO struct {
	ProductID    int64  `json:"product_id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Quantity     int64  `json:"quantity"`
	ReorderLevel int64  `json:"reorder_level"`
}

// TopProductDTO producto con mayores unidades vendidas en el período.
type TopProductDTO struct {
	ProductID    int64           `json:"product_id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	UnitsSold    int64           `json:"units_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// DailySalesDTO total vendido en un día.
type DailySalesDTO struct {
	Day         string          `json:"day"` // YYYY-MM-DD
	SalesCount  int64           `json:"sales_count"`
	UnitsSold   int64           `json:"units_sold"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// WeeklySalesDTO agregado de los últimos 7 días, bucket por día.
type WeeklySalesDTO struct {
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Days        []DailySalesDTO `json:"days"`
}

// DashboardSummaryDTO resumen del día y del mes para el panel principal.
type DashboardSummaryDTO struct {
	TodaySales  decimal.Decimal `json:"today_sales"`
	TodayUnits  int64           `json:"today_units"`
	MonthSales  decimal.Decimal `json:"month_sales"`
	MonthUnits  int64           `json:"month_units"`
	LowStock    int             `json:"low_stock_count"`
	OutOfStock  int             `json:"out_of_stock_count"`
	TopProducts []TopProductDTO `json:"top_products"`
	GeneratedAt time.Time       `json:"generated_at"`
}
