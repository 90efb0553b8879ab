package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/TiendaPOS-api/internal/application/dto"
	"github.com/jhoicas/TiendaPOS-api/internal/application/ports"
	"github.com/jhoicas/TiendaPOS-api/internal/domain"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/repository"
)

// InsightsUseCase orquesta las consultas a los endpoints externos de
// pronóstico y promociones. Si la petición no trae productos, arma la entrada
// con los más vendidos de los últimos 30 días y su stock actual.
//
// Aplica un timeout por llamada para que las latencias del servicio externo
// no bloqueen los goroutines del servidor.
type InsightsUseCase struct {
	svc         ports.InsightsService
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
}

// NewInsightsUseCase construye el caso de uso.
func NewInsightsUseCase(svc ports.InsightsService, reportRepo repository.ReportRepository, productRepo repository.ProductRepository) *InsightsUseCase {
	return &InsightsUseCase{svc: svc, reportRepo: reportRepo, productRepo: productRepo}
}

const insightsTimeout = 30 * time.Second

// Forecast pide un pronóstico de demanda al servicio externo.
func (uc *InsightsUseCase) Forecast(ctx context.Context, req dto.ForecastRequest) (*dto.ForecastResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, insightsTimeout)
	defer cancel()

	if len(req.Products) == 0 {
		products, err := uc.defaultProducts(ctx)
		if err != nil {
			return nil, err
		}
		req.Products = products
	}
	return uc.svc.Forecast(ctx, req)
}

// Promotions pide un plan de promociones al servicio externo.
func (uc *InsightsUseCase) Promotions(ctx context.Context, req dto.PromotionsRequest) (*dto.PromotionsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, insightsTimeout)
	defer cancel()

	if len(req.Products) == 0 {
		products, err := uc.defaultProducts(ctx)
		if err != nil {
			return nil, err
		}
		req.Products = products
	}
	return uc.svc.Promotions(ctx, req)
}

// defaultProducts arma la entrada con los productos más vendidos de los
// últimos 30 días, enriquecidos con su stock y punto de reorden actuales.
func (uc *InsightsUseCase) defaultProducts(ctx context.Context) ([]dto.ForecastProductInput, error) {
	now := time.Now()
	top, err := uc.reportRepo.TopProducts(ctx, now.AddDate(0, 0, -30), now, 20)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return nil, domain.ErrInvalidInput
	}

	inputs := make([]dto.ForecastProductInput, 0, len(top))
	for _, t := range top {
		in := dto.ForecastProductInput{
			ProductID: t.ProductID,
			Name:      t.ProductName,
			UnitsSold: t.UnitsSold,
		}
		if p, err := uc.productRepo.GetByID(t.ProductID); err == nil && p != nil {
			in.Quantity = p.Quantity
			in.ReorderLvl = p.ReorderLevel
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}
