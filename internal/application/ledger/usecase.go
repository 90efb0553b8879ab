package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/TiendaPOS-api/internal/domain"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/entity"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/repository"
)

// StockLedger es el motor de inventario: aplica un delta con signo sobre la
// cantidad de un producto y deja constancia en el log de movimientos. Toda
// mutación de stock del sistema (venta, devolución, recepción de orden,
// ajuste manual) pasa por aquí.
type StockLedger struct {
	txRunner TxRunner
}

// NewStockLedger construye el motor.
func NewStockLedger(txRunner TxRunner) *StockLedger {
	return &StockLedger{txRunner: txRunner}
}

// ApplyInput entrada para aplicar un cambio de stock.
type ApplyInput struct {
	ProductID int64
	Delta     int64  // con signo, distinto de cero
	Reason    string // causa legible para el log de auditoría
	CreatedBy string // UserID, opcional
}

// Apply ejecuta el cambio en su propia transacción: bloquea la fila del
// producto, valida el signo, persiste la nueva cantidad e inserta el
// movimiento. Commit o Rollback como unidad. Devuelve la cantidad resultante.
func (l *StockLedger) Apply(ctx context.Context, in ApplyInput) (int64, error) {
	txID := uuid.New().String()
	var newQty int64
	err := l.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		qty, err := ApplyChange(productRepo, movementRepo, txID, in)
		if err != nil {
			return err
		}
		newQty = qty
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newQty, nil
}

// ApplyChange ejecuta el delta usando los repositorios proporcionados, dentro
// de la transacción del caller. Lo usan los servicios de venta, devolución y
// compras para que su escritura de negocio y el ledger compartan tx.
//
// Reglas:
//   - Delta cero se rechaza: generaría una entrada de auditoría vacía.
//   - La fila del producto se bloquea (SELECT FOR UPDATE); dos operaciones
//     concurrentes sobre el mismo producto se serializan y no se pierden updates.
//   - La cantidad nunca queda negativa: se valida ya con la fila bloqueada,
//     antes de cualquier escritura.
func ApplyChange(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	txID string,
	in ApplyInput,
) (int64, error) {
	if in.Delta == 0 {
		return 0, domain.ErrInvalidInput
	}
	product, err := productRepo.GetForUpdate(in.ProductID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	newQty := product.Quantity + in.Delta
	if newQty < 0 {
		return 0, domain.ErrInsufficientStock
	}
	if err := productRepo.UpdateQuantity(in.ProductID, newQty); err != nil {
		return 0, err
	}
	mov := &entity.Movement{
		TransactionID: txID,
		ProductID:     in.ProductID,
		QtyChange:     in.Delta,
		Reason:        in.Reason,
		CreatedAt:     time.Now(),
		CreatedBy:     in.CreatedBy,
	}
	if err := movementRepo.Create(mov); err != nil {
		return 0, err
	}
	return newQty, nil
}
