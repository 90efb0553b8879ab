// Package reports contiene las vistas de lectura derivadas del estado del
// ledger: alertas de stock, productos más vendidos, ventas por período y el
// resumen del dashboard. Solo consultas; ningún efecto secundario.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/TiendaPOS-api/internal/application/dto"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/entity"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/repository"
)

const (
	defaultTopN   = 10
	maxTopN       = 100
	dashboardTopN = 5 // número de productos en el widget del dashboard
)

// ReportUseCase vistas de lectura sobre ReportRepository.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// LowStock productos con existencias en o bajo su punto de reorden (sin contar agotados).
func (uc *ReportUseCase) LowStock(ctx context.Context) ([]dto.StockAlertDTO, error) {
	list, err := uc.repo.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	return toStockAlerts(list), nil
}

// OutOfStock productos agotados (cantidad cero).
func (uc *ReportUseCase) OutOfStock(ctx context.Context) ([]dto.StockAlertDTO, error) {
	list, err := uc.repo.OutOfStock(ctx)
	if err != nil {
		return nil, err
	}
	return toStockAlerts(list), nil
}

// TopProducts los N productos con más unidades vendidas en el período.
// Si from/to vienen en cero se usan los últimos 30 días.
func (uc *ReportUseCase) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]dto.TopProductDTO, error) {
	if limit <= 0 {
		limit = defaultTopN
	}
	if limit > maxTopN {
		limit = maxTopN
	}
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	results, err := uc.repo.TopProducts(ctx, from, to, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.TopProductDTO{
			ProductID:    r.ProductID,
			SKU:          r.SKU,
			Name:         r.ProductName,
			UnitsSold:    r.UnitsSold,
			TotalRevenue: r.TotalRevenue,
		})
	}
	return out, nil
}

// WeeklySales total vendido en los últimos 7 días, bucket por día.
// Los días sin ventas aparecen con total cero para que la serie sea continua.
func (uc *ReportUseCase) WeeklySales(ctx context.Context) (*dto.WeeklySalesDTO, error) {
	now := time.Now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		Add(24*time.Hour - time.Nanosecond)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -6)

	rows, err := uc.repo.SalesByDay(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]repository.DailySalesResult, len(rows))
	for _, r := range rows {
		byDay[r.Day.Format("2006-01-02")] = r
	}

	out := &dto.WeeklySalesDTO{From: from, To: to, TotalAmount: decimal.Zero}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		day := dto.DailySalesDTO{Day: key, TotalAmount: decimal.Zero}
		if r, ok := byDay[key]; ok {
			day.SalesCount = r.SalesCount
			day.UnitsSold = r.UnitsSold
			day.TotalAmount = r.TotalAmount
		}
		out.TotalAmount = out.TotalAmount.Add(day.TotalAmount)
		out.Days = append(out.Days, day)
	}
	return out, nil
}

// Dashboard resumen del día y del mes más alertas de stock y top de productos.
//
// Cuatro consultas independientes lanzadas en paralelo; la primera que falle
// invalida el resumen completo.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type totalsResult struct {
		totals repository.SalesTotals
		err    error
	}
	type topResult struct {
		top []repository.TopProductResult
		err error
	}
	type alertsResult struct {
		low, out []*entity.Product
		err      error
	}

	todayCh := make(chan totalsResult, 1)
	monthCh := make(chan totalsResult, 1)
	topCh := make(chan topResult, 1)
	alertsCh := make(chan alertsResult, 1)

	go func() {
		t, err := uc.repo.GetSalesTotals(ctx, todayStart, todayEnd)
		todayCh <- totalsResult{totals: t, err: err}
	}()
	go func() {
		t, err := uc.repo.GetSalesTotals(ctx, monthStart, todayEnd)
		monthCh <- totalsResult{totals: t, err: err}
	}()
	go func() {
		top, err := uc.repo.TopProducts(ctx, monthStart, todayEnd, dashboardTopN)
		topCh <- topResult{top: top, err: err}
	}()
	go func() {
		low, err := uc.repo.LowStock(ctx)
		if err != nil {
			alertsCh <- alertsResult{err: err}
			return
		}
		out, err := uc.repo.OutOfStock(ctx)
		alertsCh <- alertsResult{low: low, out: out, err: err}
	}()

	today := <-todayCh
	month := <-monthCh
	top := <-topCh
	alerts := <-alertsCh
	for _, err := range []error{today.err, month.err, top.err, alerts.err} {
		if err != nil {
			return nil, err
		}
	}

	topDTOs := make([]dto.TopProductDTO, 0, len(top.top))
	for _, r := range top.top {
		topDTOs = append(topDTOs, dto.TopProductDTO{
			ProductID:    r.ProductID,
			SKU:          r.SKU,
			Name:         r.ProductName,
			UnitsSold:    r.UnitsSold,
			TotalRevenue: r.TotalRevenue,
		})
	}

	return &dto.DashboardSummaryDTO{
		TodaySales:  today.totals.TotalAmount,
		TodayUnits:  today.totals.UnitsSold,
		MonthSales:  month.totals.TotalAmount,
		MonthUnits:  month.totals.UnitsSold,
		LowStock:    len(alerts.low),
		OutOfStock:  len(alerts.out),
		TopProducts: topDTOs,
		GeneratedAt: now,
	}, nil
}

func toStockAlerts(list []*entity.Product) []dto.StockAlertDTO {
	out := make([]dto.StockAlertDTO, 0, len(list))
	for _, p := range list {
		out = append(out, dto.StockAlertDTO{
			ProductID:    p.ID,
			SKU:          p.SKU,
			Name:         p.Name,
			Quantity:     p.Quantity,
			ReorderLevel: p.ReorderLevel,
		})
	}
	return out
}
