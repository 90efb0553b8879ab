package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/entity"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/repository"
)

var _ repository.ReturnRepository = (*ReturnRepo)(nil)

const returnColumns = `id, sale_id, product_id, quantity, refund_amount, reason, created_at`

// ReturnRepo implementación de ReturnRepository sobre PostgreSQL.
type ReturnRepo struct {
	q Querier
}

// NewReturnRepository construye el adaptador.
func NewReturnRepository(q Querier) *ReturnRepo {
	return &ReturnRepo{q: q}
}

// Create persiste una devolución.
func (r *ReturnRepo) Create(ret *entity.Return) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO returns (sale_id, product_id, quantity, refund_amount, reason, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		ret.SaleID, ret.ProductID, ret.Quantity, ret.RefundAmount, ret.Reason, ret.CreatedAt,
	).Scan(&ret.ID)
	if err != nil {
		return fmt.Errorf("insert return: %w", err)
	}
	return nil
}

// SumQuantityBySale devuelve el total de unidades ya devueltas contra una
// venta. Se lee dentro de la misma transacción que bloquea la venta, así el
// tope acumulado no admite carreras.
func (r *ReturnRepo) SumQuantityBySale(saleID int64) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM returns WHERE sale_id = $1`, saleID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum returns: %w", err)
	}
	return total, nil
}

// ListBySale lista las devoluciones de una venta.
func (r *ReturnRepo) ListBySale(saleID int64) ([]*entity.Return, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+returnColumns+` FROM returns WHERE sale_id = $1 ORDER BY created_at`, saleID,
	)
	if err != nil {
		return nil, fmt.Errorf("list returns by sale: %w", err)
	}
	defer rows.Close()
	return scanReturns(rows)
}

// List lista devoluciones con paginación, de la más reciente a la más antigua.
func (r *ReturnRepo) List(limit, offset int) ([]*entity.Return, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+returnColumns+` FROM returns ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list returns: %w", err)
	}
	defer rows.Close()
	return scanReturns(rows)
}

func scanReturns(rows pgx.Rows) ([]*entity.Return, error) {
	var list []*entity.Return
	for rows.Next() {
		var ret entity.Return
		if err := rows.Scan(&ret.ID, &ret.SaleID, &ret.ProductID, &ret.Quantity, &ret.RefundAmount, &ret.Reason, &ret.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan return: %w", err)
		}
		list = append(list, &ret)
	}
	return list, rows.Err()
}
