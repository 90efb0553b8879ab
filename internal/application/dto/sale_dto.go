package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest body para POST /api/sales.
// DateSold vacío usa la fecha actual; Store vacío usa la tienda por defecto.
type RecordSaleRequest struct {
	ProductID int64      `json:"product_id" validate:"required"`
	Quantity  int64      `json:"quantity" validate:"required,min=1"`
	DateSold  *time.Time `json:"date_sold"`
	Store     string     `json:"store"`
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID             int64           `json:"id"`
	ProductID      int64           `json:"product_id"`
	Quantity       int64           `json:"quantity"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	DateSold       time.Time       `json:"date_sold"`
	Store          string          `json:"store"`
	RemainingStock int64           `json:"remaining_stock"`
	CreatedAt      time.Time       `json:"created_at"`
}

// BulkSaleItemResult resultado de un ítem dentro de una venta en lote.
type BulkSaleItemResult struct {
	Index int           `json:"index"`
	Sale  *SaleResponse `json:"sale,omitempty"`
	Error string        `json:"error,omitempty"`
}

// BulkSaleResponse resumen de una carga en lote: la operación no aborta en el
// primer error, reporta conteos de éxito y fallo por ítem.
type BulkSaleResponse struct {
	Created int                  `json:"created"`
	Failed  int                  `json:"failed"`
	Items   []BulkSaleItemResult `json:"items"`
}

// ProcessReturnRequest body para POST /api/returns.
type ProcessReturnRequest struct {
	SaleID   int64  `json:"sale_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,min=1"`
	Reason   string `json:"reason"`
}

// ReturnResponse salida de una devolución procesada.
type ReturnResponse struct {
	ID           int64           `json:"id"`
	SaleID       int64           `json:"sale_id"`
	ProductID    int64           `json:"product_id"`
	Quantity     int64           `json:"quantity"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
	Reason       string          `json:"reason,omitempty"`
	NewStock     int64           `json:"new_stock"`
	CreatedAt    time.Time       `json:"created_at"`
}
