package purchasing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/TiendaPOS-api/internal/application/dto"
	"github.com/jhoicas/TiendaPOS-api/internal/application/ledger"
	"github.com/jhoicas/TiendaPOS-api/internal/domain"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/entity"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/repository"
)

// PurchaseOrderUseCase maneja el ciclo de vida de las órdenes de compra:
// pending -> received (acredita stock vía ledger) o pending -> cancelled
// (requiere nota, sin efecto en stock). received y cancelled son terminales.
type PurchaseOrderUseCase struct {
	txRunner     TxRunner
	orderRepo    repository.PurchaseOrderRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	defaultStore string
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	defaultStore string,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		defaultStore: defaultStore,
	}
}

// Create crea una orden en estado pending. Valida que producto y proveedor existan.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.ProductID <= 0 || in.SupplierID <= 0 || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	store := in.Store
	if store == "" {
		store = uc.defaultStore
	}
	now := time.Now()
	order := &entity.PurchaseOrder{
		ProductID:            in.ProductID,
		SupplierID:           in.SupplierID,
		Quantity:             in.Quantity,
		ExpectedDeliveryDate: in.ExpectedDeliveryDate,
		Status:               entity.POStatusPending,
		InvoiceNumber:        in.InvoiceNumber,
		Notes:                in.Notes,
		Store:                store,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden; (nil, nil) si no existe.
func (uc *PurchaseOrderUseCase) GetByID(ctx context.Context, id int64) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List lista órdenes, opcionalmente filtradas por estado.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, status string, limit, offset int) ([]dto.PurchaseOrderResponse, error) {
	if status != "" && status != entity.POStatusPending && status != entity.POStatusReceived && status != entity.POStatusCancelled {
		return nil, domain.ErrInvalidInput
	}
	orders, err := uc.orderRepo.ListByStatus(status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// Receive marca la orden como recibida y acredita el stock vía ledger, todo en
// una transacción. Recibir una orden ya recibida es un no-op sin efecto en
// stock; recibir una cancelada es un conflicto.
func (uc *PurchaseOrderUseCase) Receive(ctx context.Context, userID string, id int64) (*dto.PurchaseOrderResponse, error) {
	order, _, err := uc.receive(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// receive devuelve además si el stock fue realmente acreditado, para que la
// recepción en lote distinga recibidas de saltadas.
func (uc *PurchaseOrderUseCase) receive(ctx context.Context, userID string, id int64) (*entity.PurchaseOrder, bool, error) {
	var (
		out      *entity.PurchaseOrder
		credited bool
	)
	txID := uuid.New().String()
	err := uc.txRunner.RunPurchase(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error {
		// Bloquea la fila de la orden: dos recepciones simultáneas no pueden
		// acreditar el stock dos veces.
		order, err := orderRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		switch order.Status {
		case entity.POStatusReceived:
			// Ya recibida: no-op para efectos de stock.
			out = order
			return nil
		case entity.POStatusCancelled:
			return domain.ErrConflict
		}

		reason := fmt.Sprintf("Orden de compra #%d recibida", order.ID)
		if order.InvoiceNumber != "" {
			reason = fmt.Sprintf("Orden de compra %s recibida", order.InvoiceNumber)
		}
		if _, err := ledger.ApplyChange(productRepo, movementRepo, txID, ledger.ApplyInput{
			ProductID: order.ProductID,
			Delta:     order.Quantity,
			Reason:    reason,
			CreatedBy: userID,
		}); err != nil {
			return err
		}
		if err := orderRepo.UpdateStatus(order.ID, entity.POStatusReceived, order.Notes); err != nil {
			return err
		}
		order.Status = entity.POStatusReceived
		order.UpdatedAt = time.Now()
		out = order
		credited = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, credited, nil
}

// Cancel cancela una orden pendiente. La nota de cancelación es obligatoria y
// se agrega a las notas de la orden. No tiene efecto en stock.
func (uc *PurchaseOrderUseCase) Cancel(ctx context.Context, id int64, note string) (*dto.PurchaseOrderResponse, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.PurchaseOrder
	err := uc.txRunner.RunPurchase(ctx, func(
		_ repository.ProductRepository,
		_ repository.MovementRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error {
		order, err := orderRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.IsTerminal() {
			return domain.ErrConflict
		}
		notes := order.Notes
		if notes != "" {
			notes += "\n"
		}
		notes += "Cancelada: " + note
		if err := orderRepo.UpdateStatus(order.ID, entity.POStatusCancelled, notes); err != nil {
			return err
		}
		order.Status = entity.POStatusCancelled
		order.Notes = notes
		order.UpdatedAt = time.Now()
		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(out), nil
}

// ReceiveAll recibe todas las órdenes pendientes, cada una en su propia
// transacción. Las que dejaron de estar pendientes entre el listado y la
// recepción se cuentan como saltadas; los errores no abortan el lote.
func (uc *PurchaseOrderUseCase) ReceiveAll(ctx context.Context, userID string) (*dto.ReceiveAllResponse, error) {
	ids, err := uc.orderRepo.PendingIDs()
	if err != nil {
		return nil, err
	}
	out := &dto.ReceiveAllResponse{}
	for _, id := range ids {
		_, credited, err := uc.receive(ctx, userID, id)
		if err != nil {
			out.Failed++
			out.Errors = append(out.Errors, dto.OrderError{OrderID: id, Error: err.Error()})
			continue
		}
		if credited {
			out.Received++
		} else {
			out.Skipped++
		}
	}
	return out, nil
}

func toOrderResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	if o == nil {
		return nil
	}
	return &dto.PurchaseOrderResponse{
		ID:                   o.ID,
		ProductID:            o.ProductID,
		SupplierID:           o.SupplierID,
		Quantity:             o.Quantity,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		Status:               o.Status,
		InvoiceNumber:        o.InvoiceNumber,
		Notes:                o.Notes,
		Store:                o.Store,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}
