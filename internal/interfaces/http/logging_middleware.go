package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/TiendaPOS-api/pkg/logger"
)

// LocalLogger clave en Locals para el logger de la petición.
const LocalLogger = "logger"

// RequestLogger middleware de logging estructurado: deja el logger disponible
// en Locals para los handlers y registra cada petición con método, ruta,
// estado y latencia. Estados 5xx se registran como error, 4xx como warn.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		c.Locals(LocalLogger, log)

		err := c.Next()

		status := c.Response().StatusCode()
		evt := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			evt = log.Error()
		case status >= fiber.StatusBadRequest:
			evt = log.Warn()
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")

		return err
	}
}

// requestLogger recupera el logger de la petición; devuelve un logger nulo
// si el middleware no está registrado (tests, rutas fuera del router).
func requestLogger(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(LocalLogger).(*logger.Logger); ok && l != nil {
		return l
	}
	return logger.Nop()
}
