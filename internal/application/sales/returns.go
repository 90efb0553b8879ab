package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/TiendaPOS-api/internal/application/dto"
	"github.com/jhoicas/TiendaPOS-api/internal/application/ledger"
	"github.com/jhoicas/TiendaPOS-api/internal/domain"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/entity"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/repository"
)

// ProcessReturn procesa una devolución contra una venta existente.
//
// El reembolso se calcula con el precio unitario histórico de la venta
// (TotalAmount / Quantity), no con el precio actual del producto: si el precio
// cambió después de la venta, el cliente recibe lo que pagó.
//
// La fila de la venta se bloquea y se suma lo ya devuelto: devoluciones
// parciales sucesivas nunca pueden exceder en conjunto la cantidad vendida.
func (uc *SaleUseCase) ProcessReturn(ctx context.Context, userID string, in dto.ProcessReturnRequest) (*dto.ReturnResponse, error) {
	if in.SaleID <= 0 || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	txID := uuid.New().String()

	var out *dto.ReturnResponse
	err := uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		saleRepo repository.SaleRepository,
		returnRepo repository.ReturnRepository,
	) error {
		sale, err := saleRepo.GetForUpdate(in.SaleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrSaleNotFound
		}

		alreadyReturned, err := returnRepo.SumQuantityBySale(in.SaleID)
		if err != nil {
			return err
		}
		if in.Quantity > sale.Quantity-alreadyReturned {
			return domain.ErrReturnExceedsSale
		}

		refund := sale.TotalAmount.
			Div(decimal.NewFromInt(sale.Quantity)).
			Mul(decimal.NewFromInt(in.Quantity)).
			Round(2)

		ret := &entity.Return{
			SaleID:       sale.ID,
			ProductID:    sale.ProductID,
			Quantity:     in.Quantity,
			RefundAmount: refund,
			Reason:       in.Reason,
			CreatedAt:    now,
		}
		if err := returnRepo.Create(ret); err != nil {
			return err
		}

		reason := fmt.Sprintf("Devolución venta #%d", sale.ID)
		if in.Reason != "" {
			reason = fmt.Sprintf("Devolución venta #%d: %s", sale.ID, in.Reason)
		}
		newQty, err := ledger.ApplyChange(productRepo, movementRepo, txID, ledger.ApplyInput{
			ProductID: sale.ProductID,
			Delta:     in.Quantity,
			Reason:    reason,
			CreatedBy: userID,
		})
		if err != nil {
			return err
		}

		out = &dto.ReturnResponse{
			ID:           ret.ID,
			SaleID:       ret.SaleID,
			ProductID:    ret.ProductID,
			Quantity:     ret.Quantity,
			RefundAmount: ret.RefundAmount,
			Reason:       ret.Reason,
			NewStock:     newQty,
			CreatedAt:    ret.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
