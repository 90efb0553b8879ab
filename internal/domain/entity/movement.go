package entity

import "time"

// Movement es un registro de auditoría del ledger de inventario: un cambio de
// cantidad con signo y su causa. Append-only: el núcleo nunca actualiza ni
// borra movimientos.
//
// TransactionID agrupa los movimientos generados por una misma operación de
// negocio (venta, devolución, recepción de orden).
type Movement struct {
	ID            int64
	TransactionID string // UUID de la operación que lo originó
	ProductID     int64
	QtyChange     int64  // positivo entrada, negativo salida; nunca cero
	Reason        string // causa legible: "Venta de 3 unidades", "Orden INV-001 recibida", ...
	CreatedAt     time.Time
	CreatedBy     string // UserID, vacío para procesos internos
}
