package repository

import (
	"time"

	"github.com/jhoicas/TiendaPOS-api/internal/domain/entity"
)

// SaleFilter filtros opcionales para listar ventas.
type SaleFilter struct {
	ProductID *int64
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// SaleRepository puerto de persistencia para ventas.
// Las ventas son inmutables: no hay Update ni Delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id int64) (*entity.Sale, error)
	// GetForUpdate bloquea la fila de la venta (SELECT FOR UPDATE) para
	// serializar devoluciones concurrentes contra la misma venta.
	GetForUpdate(id int64) (*entity.Sale, error)
	List(filter SaleFilter) ([]*entity.Sale, error)
}

// ReturnRepository puerto de persistencia para devoluciones.
type ReturnRepository interface {
	Create(ret *entity.Return) error
	// SumQuantityBySale devuelve el total ya devuelto contra una venta,
	// usado para que devoluciones parciales sucesivas no excedan la venta.
	SumQuantityBySale(saleID int64) (int64, error)
	ListBySale(saleID int64) ([]*entity.Return, error)
	List(limit, offset int) ([]*entity.Return, error)
}
