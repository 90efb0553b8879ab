package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// Quantity es la única fuente de verdad del stock disponible y solo se
// modifica a través del motor de inventario (ledger); nunca por un update
// directo del catálogo.
type Product struct {
	ID           int64
	SKU          string // código único
	Name         string
	Description  string
	CategoryID   *int64
	SupplierID   *int64
	CostPrice    decimal.Decimal // costo de compra
	RetailPrice  decimal.Decimal // precio de venta al público
	Quantity     int64           // stock disponible, nunca negativo
	ReorderLevel int64           // umbral de stock bajo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el producto está en o por debajo de su punto de reorden
// (con existencias; un producto agotado se reporta aparte).
func (p *Product) IsLowStock() bool {
	return p.Quantity > 0 && p.Quantity <= p.ReorderLevel
}

// IsOutOfStock indica si el producto está agotado.
func (p *Product) IsOutOfStock() bool {
	return p.Quantity == 0
}
