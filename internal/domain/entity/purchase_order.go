package entity

import "time"

// Estados de una orden de compra. Transiciones válidas:
// pending -> received (acredita stock) o pending -> cancelled (requiere nota).
// received y cancelled son terminales.
const (
	POStatusPending   = "pending"
	POStatusReceived  = "received"
	POStatusCancelled = "cancelled"
)

// PurchaseOrder representa un pedido de reposición a un proveedor.
// Solo Status y Notes mutan después de creada; el resto es inmutable.
type PurchaseOrder struct {
	ID                   int64
	ProductID            int64
	SupplierID           int64
	Quantity             int64 // unidades pedidas, >= 1
	ExpectedDeliveryDate *time.Time
	Status               string
	InvoiceNumber        string
	Notes                string
	Store                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsTerminal indica si la orden ya no admite transiciones de estado.
func (o *PurchaseOrder) IsTerminal() bool {
	return o.Status == POStatusReceived || o.Status == POStatusCancelled
}
