package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/TiendaPOS-api/internal/application/dto"
	"github.com/jhoicas/TiendaPOS-api/internal/domain"
	"github.com/jhoicas/TiendaPOS-api/pkg/logger"
)

// newLogCapture devuelve un logger JSON que escribe en el buffer.
func newLogCapture() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})
	return log, &buf
}

func doGet(t *testing.T, app *fiber.App, path string) (*nethttp.Response, string) {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación de errores upstream
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyError_UpstreamReenviaCuotaYPago(t *testing.T) {
	status, code, _ := classifyError(&domain.UpstreamStatusError{StatusCode: 429, Message: "insights: upstream (rate_limit_error): too many requests"})
	assert.Equal(t, fiber.StatusTooManyRequests, status)
	assert.Equal(t, "UPSTREAM_RATE_LIMITED", code)

	status, code, _ = classifyError(&domain.UpstreamStatusError{StatusCode: 402, Message: "insights: upstream (billing_error): payment required"})
	assert.Equal(t, fiber.StatusPaymentRequired, status)
	assert.Equal(t, "UPSTREAM_PAYMENT_REQUIRED", code)
}

func TestClassifyError_UpstreamOtrosEstadosResponden502(t *testing.T) {
	status, code, msg := classifyError(&domain.UpstreamStatusError{StatusCode: 503, Message: "insights: upstream HTTP 503"})
	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Equal(t, "UPSTREAM", code)
	assert.NotContains(t, msg, "503", "el detalle del upstream no viaja al cliente")

	// Un error envuelto sin código también cae en 502.
	status, _, _ = classifyError(fmt.Errorf("insights: endpoint no configurado: %w", domain.ErrUpstreamService))
	assert.Equal(t, fiber.StatusBadGateway, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logging server-side de fallos
// ──────────────────────────────────────────────────────────────────────────────

func TestRespondError_InfraErrorRegistraDetalleYRespondeGenerico(t *testing.T) {
	log, buf := newLogCapture()
	app := fiber.New()
	app.Use(RequestLogger(log))
	app.Get("/fail", func(c *fiber.Ctx) error {
		return respondError(c, fmt.Errorf("query products: conexión rechazada por el servidor"))
	})

	resp, body := doGet(t, app, "/fail")

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	assert.Equal(t, "INTERNAL", out.Code)
	assert.Equal(t, "error interno", out.Message)
	assert.NotContains(t, body, "conexión rechazada", "el detalle crudo no debe llegar al cliente")

	logged := buf.String()
	assert.Contains(t, logged, "conexión rechazada por el servidor", "el detalle completo debe quedar en el log")
	assert.Contains(t, logged, "error de infraestructura")
	assert.Contains(t, logged, `"path":"/fail"`)
}

func TestRespondError_ConflictoRegistraWarnConDetalle(t *testing.T) {
	log, buf := newLogCapture()
	app := fiber.New()
	app.Use(RequestLogger(log))
	app.Get("/sell", func(c *fiber.Ctx) error {
		return respondError(c, fmt.Errorf("producto 7: %w", domain.ErrInsufficientStock))
	})

	resp, body := doGet(t, app, "/sell")

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, "INSUFFICIENT_STOCK")
	assert.Contains(t, buf.String(), "conflicto de negocio")
	assert.Contains(t, buf.String(), "producto 7")
}

func TestRespondError_SinMiddlewareNoFalla(t *testing.T) {
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return respondError(c, fmt.Errorf("fallo sin logger"))
	})

	resp, body := doGet(t, app, "/fail")

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "INTERNAL")
}

func TestRequestLogger_RegistraMetodoRutaEstado(t *testing.T) {
	log, buf := newLogCapture()
	app := fiber.New()
	app.Use(RequestLogger(log))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	resp, _ := doGet(t, app, "/ping")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	logged := buf.String()
	assert.Contains(t, logged, `"method":"GET"`)
	assert.Contains(t, logged, `"path":"/ping"`)
	assert.Contains(t, logged, `"status":200`)
}
