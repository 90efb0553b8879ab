package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// InitialQuantity > 0 genera un movimiento de inventario inicial vía ledger.
type CreateProductRequest struct {
	SKU             string          `json:"sku" validate:"required,min=1,max=100"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Description     string          `json:"description"`
	CategoryID      *int64          `json:"category_id"`
	SupplierID      *int64          `json:"supplier_id"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	RetailPrice     decimal.Decimal `json:"retail_price"`
	ReorderLevel    int64           `json:"reorder_level"`
	InitialQuantity int64           `json:"initial_quantity"`
}

// UpdateProductRequest entrada para actualización parcial (PATCH).
// Quantity no aparece: el stock solo se muta vía movimientos del ledger.
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description"`
	CategoryID   *int64           `json:"category_id"`
	SupplierID   *int64           `json:"supplier_id"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	RetailPrice  *decimal.Decimal `json:"retail_price"`
	ReorderLevel *int64           `json:"reorder_level"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CategoryID   *int64          `json:"category_id,omitempty"`
	SupplierID   *int64          `json:"supplier_id,omitempty"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	RetailPrice  decimal.Decimal `json:"retail_price"`
	Quantity     int64           `json:"quantity"`
	ReorderLevel int64           `json:"reorder_level"`
	LowStock     bool            `json:"low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
