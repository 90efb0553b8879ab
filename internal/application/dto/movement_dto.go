package dto

import "time"

// CreateMovementRequest body para POST /api/movements (ajuste manual).
// QtyChange es un delta con signo distinto de cero; Reason es obligatoria
// para que el log de auditoría nunca quede sin causa.
type CreateMovementRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	QtyChange int64  `json:"qty_change" validate:"required"`
	Reason    string `json:"reason" validate:"required,min=1"`
}

// MovementResponse salida de un movimiento del ledger.
type MovementResponse struct {
	ID            int64     `json:"id"`
	TransactionID string    `json:"transaction_id"`
	ProductID     int64     `json:"product_id"`
	QtyChange     int64     `json:"qty_change"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     string    `json:"created_by,omitempty"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
