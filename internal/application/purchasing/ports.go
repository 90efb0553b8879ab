package purchasing

import (
	"context"

	"github.com/jhoicas/TiendaPOS-api/internal/domain/repository"
)

// TxRunner transacción con los repositorios de la recepción de órdenes:
// la transición de estado y el crédito de stock comparten la misma tx.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error) error
}
