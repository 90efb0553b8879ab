package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Return representa una devolución parcial o total sobre una venta existente.
// ProductID se desnormaliza desde la venta para consultas directas.
type Return struct {
	ID           int64
	SaleID       int64
	ProductID    int64
	Quantity     int64           // 1 <= Quantity <= venta original menos devoluciones previas
	RefundAmount decimal.Decimal // precio unitario histórico de la venta * Quantity
	Reason       string
	CreatedAt    time.Time
}
