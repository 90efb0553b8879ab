package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrSaleNotFound       = errors.New("venta no encontrada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrReturnExceedsSale  = errors.New("la devolución excede la cantidad vendida")
	ErrUpstreamService    = errors.New("servicio externo no disponible")
)

// UpstreamStatusError error de un servicio externo que conserva el código
// HTTP devuelto. errors.Is lo clasifica como ErrUpstreamService; el código
// permite reenviar al cliente estados como 429 (cuota) o 402 (pago).
type UpstreamStatusError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamStatusError) Error() string { return e.Message }

// Is hace que errors.Is(err, ErrUpstreamService) reconozca este tipo.
func (e *UpstreamStatusError) Is(target error) bool { return target == ErrUpstreamService }
