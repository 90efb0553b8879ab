package ports

import (
	"context"

	"github.com/jhoicas/TiendaPOS-api/internal/application/dto"
)

// InsightsService puerto hacia los endpoints externos de pronóstico de demanda
// y planes de promoción. El servicio es una caja negra: recibe JSON y devuelve
// JSON estructurado; sus fallos se traducen a domain.ErrUpstreamService.
type InsightsService interface {
	Forecast(ctx context.Context, in dto.ForecastRequest) (*dto.ForecastResponse, error)
	Promotions(ctx context.Context, in dto.PromotionsRequest) (*dto.PromotionsResponse, error)
}
