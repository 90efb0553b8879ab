package sales

import (
	"context"

	"github.com/jhoicas/TiendaPOS-api/internal/application/dto"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/entity"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/repository"
)

// ListSales lista ventas con filtros opcionales.
func (uc *SaleUseCase) ListSales(ctx context.Context, filter repository.SaleFilter) ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// GetSale obtiene una venta por ID; (nil, nil) si no existe.
func (uc *SaleUseCase) GetSale(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	resp := toSaleResponse(sale)
	return &resp, nil
}

// ListReturns lista devoluciones paginadas.
func (uc *SaleUseCase) ListReturns(ctx context.Context, limit, offset int) ([]dto.ReturnResponse, error) {
	list, err := uc.returnRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReturnResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.ReturnResponse{
			ID:           r.ID,
			SaleID:       r.SaleID,
			ProductID:    r.ProductID,
			Quantity:     r.Quantity,
			RefundAmount: r.RefundAmount,
			Reason:       r.Reason,
			CreatedAt:    r.CreatedAt,
		})
	}
	return out, nil
}

// toSaleResponse mapea la entidad a DTO. RemainingStock queda en cero en los
// listados: solo se conoce en el momento de registrar la venta.
func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		Quantity:    s.Quantity,
		TotalAmount: s.TotalAmount,
		DateSold:    s.DateSold,
		Store:       s.Store,
		CreatedAt:   s.CreatedAt,
	}
}
