package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada. Inmutable una vez creada: cualquier
// corrección posterior se expresa como una devolución (Return), nunca editando
// la venta original.
type Sale struct {
	ID          int64
	ProductID   int64
	Quantity    int64           // unidades vendidas, >= 1
	TotalAmount decimal.Decimal // Quantity * RetailPrice al momento de la venta
	DateSold    time.Time
	Store       string // etiqueta informativa; no particiona el stock
	CreatedAt   time.Time
}

// UnitPrice devuelve el precio unitario histórico de la venta
// (TotalAmount / Quantity). Los reembolsos se calculan sobre este valor,
// no sobre el precio actual del producto.
func (s *Sale) UnitPrice() decimal.Decimal {
	if s.Quantity == 0 {
		return decimal.Zero
	}
	return s.TotalAmount.Div(decimal.NewFromInt(s.Quantity))
}
