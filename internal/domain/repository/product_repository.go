package repository

import "github.com/jhoicas/TiendaPOS-api/internal/domain/entity"

// ProductFilter filtros opcionales para listar productos.
type ProductFilter struct {
	CategoryID *int64
	LowStock   bool   // solo productos en o bajo su punto de reorden
	Search     string // busca en nombre y SKU
	Limit      int
	Offset     int
}

// ProductRepository puerto de persistencia para productos.
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción; es la base del ledger.
	GetForUpdate(id int64) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// Update modifica datos de catálogo. Quantity no se toca aquí: solo el
	// motor de inventario la muta vía UpdateQuantity.
	Update(product *entity.Product) error
	UpdateQuantity(id int64, quantity int64) error
	List(filter ProductFilter) ([]*entity.Product, error)
	Delete(id int64) error
}
