package repository

import "github.com/jhoicas/TiendaPOS-api/internal/domain/entity"

// PurchaseOrderRepository puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id int64) (*entity.PurchaseOrder, error)
	// GetForUpdate bloquea la fila de la orden para que dos recepciones
	// simultáneas no acrediten el stock dos veces.
	GetForUpdate(id int64) (*entity.PurchaseOrder, error)
	// UpdateStatus persiste la transición de estado y las notas acumuladas.
	UpdateStatus(id int64, status, notes string) error
	// ListByStatus lista órdenes; status vacío lista todas.
	ListByStatus(status string, limit, offset int) ([]*entity.PurchaseOrder, error)
	// PendingIDs devuelve los IDs de todas las órdenes pendientes, para la
	// recepción en lote.
	PendingIDs() ([]int64, error)
}
