package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/TiendaPOS-api/internal/application/dto"
	"github.com/jhoicas/TiendaPOS-api/internal/application/ledger"
	"github.com/jhoicas/TiendaPOS-api/internal/domain"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/repository"
)

// MovementUseCase consulta el log del ledger y registra ajustes manuales.
type MovementUseCase struct {
	repo   repository.MovementRepository
	ledger *ledger.StockLedger
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository, stockLedger *ledger.StockLedger) *MovementUseCase {
	return &MovementUseCase{repo: repo, ledger: stockLedger}
}

// CreateAdjustment registra un ajuste manual de stock a través del motor de
// inventario. La razón es obligatoria: todo movimiento debe tener causa.
func (uc *MovementUseCase) CreateAdjustment(ctx context.Context, userID string, in dto.CreateMovementRequest) (int64, error) {
	reason := strings.TrimSpace(in.Reason)
	if in.ProductID <= 0 || in.QtyChange == 0 || reason == "" {
		return 0, domain.ErrInvalidInput
	}
	return uc.ledger.Apply(ctx, ledger.ApplyInput{
		ProductID: in.ProductID,
		Delta:     in.QtyChange,
		Reason:    "Ajuste manual: " + reason,
		CreatedBy: userID,
	})
}

// List lista movimientos con filtros y paginación.
func (uc *MovementUseCase) List(ctx context.Context, filter repository.MovementFilter) (*dto.MovementListResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			ProductID:     m.ProductID,
			QtyChange:     m.QtyChange,
			Reason:        m.Reason,
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
		})
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}
