package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/TiendaPOS-api/internal/application/reports"
)

// ReportHandler expone las vistas de lectura derivadas del ledger (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockAlertDTO
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// OutOfStock godoc
// @Summary      Productos agotados
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockAlertDTO
// @Router       /api/reports/out-of-stock [get]
func (h *ReportHandler) OutOfStock(c *fiber.Ctx) error {
	out, err := h.uc.OutOfStock(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos más vendidos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        days   query  int  false  "Ventana en días"  default(30)
// @Param        limit  query  int  false  "Cantidad"         default(10)
// @Success      200  {array}  dto.TopProductDTO
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	if days <= 0 {
		days = 30
	}
	limit := c.QueryInt("limit", 10)
	now := time.Now()
	out, err := h.uc.TopProducts(c.UserContext(), now.AddDate(0, 0, -days), now, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// WeeklySales godoc
// @Summary      Ventas de los últimos 7 días, por día
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WeeklySalesDTO
// @Router       /api/reports/weekly-sales [get]
func (h *ReportHandler) WeeklySales(c *fiber.Ctx) error {
	out, err := h.uc.WeeklySales(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Resumen para el panel principal
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
