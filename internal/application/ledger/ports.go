package ledger

import (
	"context"

	"github.com/jhoicas/TiendaPOS-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que el update de cantidad y el insert del movimiento sean una sola unidad de trabajo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
