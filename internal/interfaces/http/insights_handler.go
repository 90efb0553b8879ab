package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/TiendaPOS-api/internal/application/dto"
	"github.com/jhoicas/TiendaPOS-api/internal/application/usecase"
)

// InsightsHandler proxy hacia los endpoints externos de pronóstico y
// promociones (protegido).
type InsightsHandler struct {
	uc *usecase.InsightsUseCase
}

// NewInsightsHandler construye el handler.
func NewInsightsHandler(uc *usecase.InsightsUseCase) *InsightsHandler {
	return &InsightsHandler{uc: uc}
}

// Forecast godoc
// @Summary      Pronóstico de demanda
// @Description  Reenvía las ventas recientes al servicio externo de pronóstico.
// @Tags         insights
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForecastRequest  false  "Productos a pronosticar; vacío usa los más vendidos"
// @Success      200   {object}  dto.ForecastResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/insights/forecast [post]
func (h *InsightsHandler) Forecast(c *fiber.Ctx) error {
	var in dto.ForecastRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "INVALID_BODY", "cuerpo inválido")
		}
	}
	out, err := h.uc.Forecast(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Promotions godoc
// @Summary      Plan de promociones
// @Description  Reenvía el estado de stock y ventas al servicio externo de promociones.
// @Tags         insights
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PromotionsRequest  false  "Productos a considerar; vacío usa los más vendidos"
// @Success      200   {object}  dto.PromotionsResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/insights/promotions [post]
func (h *InsightsHandler) Promotions(c *fiber.Ctx) error {
	var in dto.PromotionsRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "INVALID_BODY", "cuerpo inválido")
		}
	}
	out, err := h.uc.Promotions(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
