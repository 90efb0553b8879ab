package reports_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/TiendaPOS-api/internal/application/reports"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/entity"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/repository"
)

// fakeReportRepo devuelve datos fijos; captura los límites recibidos para
// verificar los defaults del caso de uso.
type fakeReportRepo struct {
	low, out  []*entity.Product
	top       []repository.TopProductResult
	byDay     []repository.DailySalesResult
	totals    map[string]repository.SalesTotals // key: from truncado a día
	gotLimit  int
	failTotal error
}

func (r *fakeReportRepo) LowStock(ctx context.Context) ([]*entity.Product, error) { return r.low, nil }
func (r *fakeReportRepo) OutOfStock(ctx context.Context) ([]*entity.Product, error) { return r.out, nil }

func (r *fakeReportRepo) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	r.gotLimit = limit
	return r.top, nil
}

func (r *fakeReportRepo) SalesByDay(ctx context.Context, from, to time.Time) ([]repository.DailySalesResult, error) {
	return r.byDay, nil
}

func (r *fakeReportRepo) GetSalesTotals(ctx context.Context, from, to time.Time) (repository.SalesTotals, error) {
	if r.failTotal != nil {
		return repository.SalesTotals{}, r.failTotal
	}
	if r.totals == nil {
		return repository.SalesTotals{}, nil
	}
	return r.totals[from.Format("2006-01-02")], nil
}

func money(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestLowStock_MapeaAlertas(t *testing.T) {
	repo := &fakeReportRepo{low: []*entity.Product{
		{ID: 1, SKU: "CRV-001", Name: "Cerveza corona sixpack", Quantity: 3, ReorderLevel: 10},
	}}
	uc := reports.NewReportUseCase(repo)

	out, err := uc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "CRV-001", out[0].SKU)
	assert.Equal(t, int64(3), out[0].Quantity)
	assert.Equal(t, int64(10), out[0].ReorderLevel)
}

func TestTopProducts_AplicaDefaults(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := reports.NewReportUseCase(repo)
	ctx := context.Background()

	_, err := uc.TopProducts(ctx, time.Time{}, time.Time{}, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.gotLimit, "limit cero usa el default")

	_, err = uc.TopProducts(ctx, time.Time{}, time.Time{}, 5000)
	require.NoError(t, err)
	assert.Equal(t, 100, repo.gotLimit, "limit se acota al máximo")
}

func TestWeeklySales_SerieContinuaConDiasVacios(t *testing.T) {
	today := time.Now()
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	repo := &fakeReportRepo{byDay: []repository.DailySalesResult{
		{Day: midnight.AddDate(0, 0, -2), SalesCount: 2, UnitsSold: 5, TotalAmount: money("50.00")},
		{Day: midnight, SalesCount: 1, UnitsSold: 1, TotalAmount: money("11.99")},
	}}
	uc := reports.NewReportUseCase(repo)

	out, err := uc.WeeklySales(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Days, 7, "la serie cubre 7 días aunque falten ventas")
	assert.True(t, out.TotalAmount.Equal(money("61.99")), "obtuvo %s", out.TotalAmount)

	// Los días sin ventas aparecen en cero.
	var zeroDays int
	for _, d := range out.Days {
		if d.SalesCount == 0 {
			assert.True(t, d.TotalAmount.IsZero())
			zeroDays++
		}
	}
	assert.Equal(t, 5, zeroDays)
	assert.Equal(t, out.Days[6].Day, midnight.Format("2006-01-02"), "el último bucket es hoy")
}

func TestDashboard_AgregaLasCuatroConsultas(t *testing.T) {
	now := time.Now()
	todayKey := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	monthKey := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")

	repo := &fakeReportRepo{
		low: []*entity.Product{{ID: 1}, {ID: 2}},
		out: []*entity.Product{{ID: 3}},
		top: []repository.TopProductResult{
			{ProductID: 1, SKU: "CRV-001", ProductName: "Cerveza corona sixpack", UnitsSold: 40, TotalRevenue: money("479.60")},
		},
		totals: map[string]repository.SalesTotals{
			todayKey: {SalesCount: 3, UnitsSold: 7, TotalAmount: money("83.93")},
			monthKey: {SalesCount: 30, UnitsSold: 90, TotalAmount: money("1079.10")},
		},
	}
	uc := reports.NewReportUseCase(repo)

	out, err := uc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.True(t, out.TodaySales.Equal(money("83.93")))
	assert.Equal(t, int64(7), out.TodayUnits)
	assert.True(t, out.MonthSales.Equal(money("1079.10")))
	assert.Equal(t, int64(90), out.MonthUnits)
	assert.Equal(t, 2, out.LowStock)
	assert.Equal(t, 1, out.OutOfStock)
	require.Len(t, out.TopProducts, 1)
	assert.Equal(t, "CRV-001", out.TopProducts[0].SKU)
	assert.Equal(t, 5, repo.gotLimit, "el dashboard pide el top 5")
}

func TestDashboard_PropagaErrores(t *testing.T) {
	repo := &fakeReportRepo{failTotal: errors.New("conexión perdida")}
	uc := reports.NewReportUseCase(repo)

	_, err := uc.Dashboard(context.Background())
	assert.Error(t, err, "cualquier consulta fallida invalida el resumen")
}
