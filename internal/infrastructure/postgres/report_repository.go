package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/TiendaPOS-api/internal/domain/entity"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura. Siempre derivan del estado
// actual de products/sales; no hay vistas materializadas que invalidar.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// LowStock lista productos con existencias en o bajo su punto de reorden,
// excluyendo los agotados (esos van en OutOfStock).
func (r *ReportRepo) LowStock(ctx context.Context) ([]*entity.Product, error) {
	return r.stockQuery(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE quantity > 0 AND quantity <= reorder_level
		 ORDER BY quantity, name`)
}

// OutOfStock lista productos agotados.
func (r *ReportRepo) OutOfStock(ctx context.Context) ([]*entity.Product, error) {
	return r.stockQuery(ctx,
		`SELECT `+productColumns+` FROM products WHERE quantity = 0 ORDER BY name`)
}

func (r *ReportRepo) stockQuery(ctx context.Context, query string) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stock report: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.Description, &p.CategoryID, &p.SupplierID,
			&p.CostPrice, &p.RetailPrice, &p.Quantity, &p.ReorderLevel, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// TopProducts devuelve los productos más vendidos por unidades en el período,
// con desempate por ingresos.
func (r *ReportRepo) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	rows, err := r.q.Query(ctx,
		`SELECT s.product_id, p.sku, p.name,
		        SUM(s.quantity) AS units_sold,
		        SUM(s.total_amount) AS total_revenue
		 FROM sales s
		 JOIN products p ON p.id = s.product_id
		 WHERE s.date_sold >= $1 AND s.date_sold <= $2
		 GROUP BY s.product_id, p.sku, p.name
		 ORDER BY units_sold DESC, total_revenue DESC
		 LIMIT $3`,
		from, to, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.SKU, &t.ProductName, &t.UnitsSold, &t.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		results = append(results, t)
	}
	return results, rows.Err()
}

// SalesByDay agrega las ventas del período por día calendario. Solo devuelve
// días con ventas; el caso de uso rellena los días vacíos de la serie.
func (r *ReportRepo) SalesByDay(ctx context.Context, from, to time.Time) ([]repository.DailySalesResult, error) {
	rows, err := r.q.Query(ctx,
		`SELECT date_trunc('day', date_sold) AS day,
		        COUNT(*) AS sales_count,
		        SUM(quantity) AS units_sold,
		        SUM(total_amount) AS total_amount
		 FROM sales
		 WHERE date_sold >= $1 AND date_sold <= $2
		 GROUP BY day
		 ORDER BY day`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("sales by day: %w", err)
	}
	defer rows.Close()

	var results []repository.DailySalesResult
	for rows.Next() {
		var d repository.DailySalesResult
		if err := rows.Scan(&d.Day, &d.SalesCount, &d.UnitsSold, &d.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan daily sales: %w", err)
		}
		results = append(results, d)
	}
	return results, rows.Err()
}

// GetSalesTotals devuelve los agregados de ventas del período.
func (r *ReportRepo) GetSalesTotals(ctx context.Context, from, to time.Time) (repository.SalesTotals, error) {
	var totals repository.SalesTotals
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(quantity), 0),
		        COALESCE(SUM(total_amount), 0)
		 FROM sales
		 WHERE date_sold >= $1 AND date_sold <= $2`,
		from, to,
	).Scan(&totals.SalesCount, &totals.UnitsSold, &totals.TotalAmount)
	if err != nil {
		return repository.SalesTotals{}, fmt.Errorf("sales totals: %w", err)
	}
	return totals, nil
}
