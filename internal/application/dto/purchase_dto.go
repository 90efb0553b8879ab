package dto

import "time"

// CreatePurchaseOrderRequest body para POST /api/purchase-orders.
type CreatePurchaseOrderRequest struct {
	ProductID            int64      `json:"product_id" validate:"required"`
	SupplierID           int64      `json:"supplier_id" validate:"required"`
	Quantity             int64      `json:"quantity" validate:"required,min=1"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date"`
	InvoiceNumber        string     `json:"invoice_number"`
	Notes                string     `json:"notes"`
	Store                string     `json:"store"`
}

// CancelPurchaseOrderRequest body para POST /api/purchase-orders/:id/cancel.
// La nota de cancelación es obligatoria.
type CancelPurchaseOrderRequest struct {
	Note string `json:"note" validate:"required,min=1"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID                   int64      `json:"id"`
	ProductID            int64      `json:"product_id"`
	SupplierID           int64      `json:"supplier_id"`
	Quantity             int64      `json:"quantity"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date,omitempty"`
	Status               string     `json:"status"`
	InvoiceNumber        string     `json:"invoice_number,omitempty"`
	Notes                string     `json:"notes,omitempty"`
	Store                string     `json:"store,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// ReceiveAllResponse resumen de la recepción en lote de órdenes pendientes.
type ReceiveAllResponse struct {
	Received int          `json:"received"`
	Skipped  int          `json:"skipped"`
	Failed   int          `json:"failed"`
	Errors   []OrderError `json:"errors,omitempty"`
}

// OrderError error por orden dentro de la recepción en lote.
type OrderError struct {
	OrderID int64  `json:"order_id"`
	Error   string `json:"error"`
}
