package sales

import (
	"context"

	"github.com/jhoicas/TiendaPOS-api/internal/domain/repository"
)

// TxRunner transacción con los repositorios que necesita el registro de
// ventas y devoluciones: la escritura de negocio (venta/devolución) y el
// ledger comparten la misma tx.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		saleRepo repository.SaleRepository,
		returnRepo repository.ReturnRepository,
	) error) error
}
