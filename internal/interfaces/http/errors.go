package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/TiendaPOS-api/internal/application/dto"
	"github.com/jhoicas/TiendaPOS-api/internal/domain"
)

// respondError traduce los errores de dominio a estados HTTP con cuerpo
// {code, message}. Los errores de infraestructura responden un 500 genérico:
// el detalle crudo se registra aquí con el logger de la petición, nunca
// llega al cliente.
func respondError(c *fiber.Ctx, err error) error {
	status, code, message := classifyError(err)

	switch {
	case status >= fiber.StatusInternalServerError:
		requestLogger(c).Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error de infraestructura")
	case status == fiber.StatusConflict:
		requestLogger(c).Warn().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("conflicto de negocio")
	}

	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// classifyError mapea un error de dominio a (estado HTTP, code, mensaje).
// Errores no clasificados devuelven 500 con mensaje genérico.
func classifyError(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION", err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED", err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN", err.Error()
	case errors.Is(err, domain.ErrSaleNotFound):
		return fiber.StatusNotFound, "SALE_NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, "INSUFFICIENT_STOCK", err.Error()
	case errors.Is(err, domain.ErrReturnExceedsSale):
		return fiber.StatusConflict, "RETURN_EXCEEDS_SALE", err.Error()
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, "EMAIL_EXISTS", err.Error()
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE", err.Error()
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT", err.Error()
	case errors.Is(err, domain.ErrUpstreamService):
		// 429 y 402 del upstream se reenvían tal cual; el resto responde 502.
		var up *domain.UpstreamStatusError
		if errors.As(err, &up) {
			switch up.StatusCode {
			case fiber.StatusTooManyRequests:
				return fiber.StatusTooManyRequests, "UPSTREAM_RATE_LIMITED", "servicio externo sin cuota disponible"
			case fiber.StatusPaymentRequired:
				return fiber.StatusPaymentRequired, "UPSTREAM_PAYMENT_REQUIRED", "servicio externo requiere pago"
			}
		}
		return fiber.StatusBadGateway, "UPSTREAM", "servicio externo no disponible"
	default:
		return fiber.StatusInternalServerError, "INTERNAL", "error interno"
	}
}

// badRequest respuesta 400 con mensaje explícito, para errores de parseo de
// la petición antes de llegar al caso de uso.
func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}
