package repository

import (
	"time"

	"github.com/jhoicas/TiendaPOS-api/internal/domain/entity"
)

// MovementFilter filtros opcionales para listar movimientos.
type MovementFilter struct {
	ProductID *int64
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// MovementRepository puerto del log de auditoría del ledger.
// Append-only: solo Create y lecturas.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	List(filter MovementFilter) ([]*entity.Movement, error)
}
