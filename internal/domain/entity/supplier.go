package entity

import "time"

// Supplier representa un proveedor al que se le emiten órdenes de compra.
type Supplier struct {
	ID          int64
	Name        string
	ContactName string
	Phone       string
	Email       string
	CreatedAt   time.Time
}
