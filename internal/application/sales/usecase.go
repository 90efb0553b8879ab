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

// SaleUseCase registra ventas y devoluciones de forma transaccional:
// el insert de la venta, el update de stock y el movimiento del ledger
// hacen Commit o Rollback como una sola unidad.
type SaleUseCase struct {
	txRunner     TxRunner
	saleRepo     repository.SaleRepository
	returnRepo   repository.ReturnRepository
	defaultStore string
}

// NewSaleUseCase construye el caso de uso. saleRepo y returnRepo atados al
// pool se usan solo para lecturas; las escrituras pasan por txRunner.
func NewSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	returnRepo repository.ReturnRepository,
	defaultStore string,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		returnRepo:   returnRepo,
		defaultStore: defaultStore,
	}
}

// RecordSale registra una venta: verifica stock con la fila bloqueada,
// calcula total = precio de venta vigente * cantidad, inserta la venta y
// descuenta el stock vía ledger. Si el stock no alcanza devuelve
// ErrInsufficientStock sin efecto parcial alguno.
func (uc *SaleUseCase) RecordSale(ctx context.Context, userID string, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID <= 0 || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	store := in.Store
	if store == "" {
		store = uc.defaultStore
	}
	now := time.Now()
	dateSold := now
	if in.DateSold != nil {
		dateSold = *in.DateSold
	}
	txID := uuid.New().String()

	var out *dto.SaleResponse
	err := uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		saleRepo repository.SaleRepository,
		_ repository.ReturnRepository,
	) error {
		// Bloquea la fila del producto: el precio y el stock que se leen son
		// los mismos sobre los que se escribirá.
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}

		total := product.RetailPrice.Mul(decimal.NewFromInt(in.Quantity))
		sale := &entity.Sale{
			ProductID:   in.ProductID,
			Quantity:    in.Quantity,
			TotalAmount: total,
			DateSold:    dateSold,
			Store:       store,
			CreatedAt:   now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		newQty, err := ledger.ApplyChange(productRepo, movementRepo, txID, ledger.ApplyInput{
			ProductID: in.ProductID,
			Delta:     -in.Quantity,
			Reason:    fmt.Sprintf("Venta de %d unidades", in.Quantity),
			CreatedBy: userID,
		})
		if err != nil {
			return err
		}

		out = &dto.SaleResponse{
			ID:             sale.ID,
			ProductID:      sale.ProductID,
			Quantity:       sale.Quantity,
			TotalAmount:    sale.TotalAmount,
			DateSold:       sale.DateSold,
			Store:          sale.Store,
			RemainingStock: newQty,
			CreatedAt:      sale.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RecordBulk registra varias ventas, cada una en su propia transacción.
// No aborta en el primer error: devuelve conteos de creadas y fallidas con
// el detalle por ítem.
func (uc *SaleUseCase) RecordBulk(ctx context.Context, userID string, items []dto.RecordSaleRequest) *dto.BulkSaleResponse {
	out := &dto.BulkSaleResponse{Items: make([]dto.BulkSaleItemResult, 0, len(items))}
	for i, item := range items {
		sale, err := uc.RecordSale(ctx, userID, item)
		if err != nil {
			out.Failed++
			out.Items = append(out.Items, dto.BulkSaleItemResult{Index: i, Error: err.Error()})
			continue
		}
		out.Created++
		out.Items = append(out.Items, dto.BulkSaleItemResult{Index: i, Sale: sale})
	}
	return out
}
