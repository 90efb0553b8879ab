package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/entity"
	"github.com/jhoicas/TiendaPOS-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const orderColumns = `id, product_id, supplier_id, quantity, expected_delivery_date, status, invoice_number, notes, store, created_at, updated_at`

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste una orden de compra.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO purchase_orders (product_id, supplier_id, quantity, expected_delivery_date, status, invoice_number, notes, store, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`,
		order.ProductID, order.SupplierID, order.Quantity, order.ExpectedDeliveryDate,
		order.Status, order.InvoiceNumber, order.Notes, order.Store, order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve (nil, nil) si no existe.
func (r *PurchaseOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	return r.get(`SELECT `+orderColumns+` FROM purchase_orders WHERE id = $1`, id)
}

// GetForUpdate obtiene la orden bloqueando su fila. Dos recepciones
// concurrentes de la misma orden quedan serializadas: la segunda ve el
// estado received y no acredita stock.
func (r *PurchaseOrderRepo) GetForUpdate(id int64) (*entity.PurchaseOrder, error) {
	return r.get(`SELECT `+orderColumns+` FROM purchase_orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *PurchaseOrderRepo) get(query string, id int64) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.ProductID, &o.SupplierID, &o.Quantity, &o.ExpectedDeliveryDate,
		&o.Status, &o.InvoiceNumber, &o.Notes, &o.Store, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &o, nil
}

// UpdateStatus persiste la transición de estado y las notas acumuladas.
func (r *PurchaseOrderRepo) UpdateStatus(id int64, status, notes string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders SET status = $2, notes = $3, updated_at = $4 WHERE id = $1`,
		id, status, notes, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	return nil
}

// ListByStatus lista órdenes; status vacío lista todas.
func (r *PurchaseOrderRepo) ListByStatus(status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders`
	args := []any{}
	if status != "" {
		args = append(args, status)
		query += ` WHERE status = $1`
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d`, len(args))
	args = append(args, offset)
	query += fmt.Sprintf(` OFFSET $%d`, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(
			&o.ID, &o.ProductID, &o.SupplierID, &o.Quantity, &o.ExpectedDeliveryDate,
			&o.Status, &o.InvoiceNumber, &o.Notes, &o.Store, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// PendingIDs devuelve los IDs de todas las órdenes pendientes, en orden de
// creación, para la recepción en lote.
func (r *PurchaseOrderRepo) PendingIDs() ([]int64, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id FROM purchase_orders WHERE status = $1 ORDER BY created_at, id`,
		entity.POStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan order id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
