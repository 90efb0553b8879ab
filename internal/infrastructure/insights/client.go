package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/TiendaPOS-api/internal/application/dto"
	"github.com/jhoicas/TiendaPOS-api/internal/application/ports"
	"github.com/jhoicas/TiendaPOS-api/internal/domain"
	"github.com/jhoicas/TiendaPOS-api/pkg/config"
)

// Verificar en tiempo de compilación que Client implementa InsightsService.
var _ ports.InsightsService = (*Client)(nil)

// Client adaptador HTTP hacia los endpoints externos de pronóstico de demanda
// y planes de promoción. Los endpoints son cajas negras: se les reenvía el
// estado de ventas/stock como JSON y devuelven JSON estructurado.
//
// Usa net/http de la librería estándar; no hay SDK para estos servicios.
type Client struct {
	forecastURL   string
	promotionsURL string
	apiKey        string
	httpClient    *http.Client
}

// NewClient construye el adaptador desde la configuración.
// Si apiKey está vacío las llamadas fallan con error descriptivo, no con panic.
func NewClient(cfg config.InsightsConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &Client{
		forecastURL:   cfg.ForecastURL,
		promotionsURL: cfg.PromotionsURL,
		apiKey:        cfg.APIKey,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

// Forecast envía el histórico de ventas al endpoint de pronóstico.
func (c *Client) Forecast(ctx context.Context, in dto.ForecastRequest) (*dto.ForecastResponse, error) {
	var out dto.ForecastResponse
	if err := c.post(ctx, c.forecastURL, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Promotions envía el estado de stock y ventas al endpoint de promociones.
func (c *Client) Promotions(ctx context.Context, in dto.PromotionsRequest) (*dto.PromotionsResponse, error) {
	var out dto.PromotionsResponse
	if err := c.post(ctx, c.promotionsURL, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// upstreamError estructura de error que devuelven los endpoints externos.
type upstreamError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) post(ctx context.Context, url string, payload any, out any) error {
	if url == "" {
		return fmt.Errorf("insights: endpoint no configurado: %w", domain.ErrUpstreamService)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("insights: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("insights: crear HTTP request: %w", err)
	}
	req.Header.Set("content-type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("insights: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("insights: llamada HTTP fallida: %w", domain.ErrUpstreamService)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return fmt.Errorf("insights: leer respuesta: %w", err)
	}

	// El código HTTP del upstream viaja en el error: 429 (cuota agotada) y
	// 402 (pago pendiente) se reenvían al cliente, el resto responde 502.
	if resp.StatusCode != http.StatusOK {
		upstream := &domain.UpstreamStatusError{StatusCode: resp.StatusCode}
		var upErr upstreamError
		if jsonErr := json.Unmarshal(rawBody, &upErr); jsonErr == nil && upErr.Error.Message != "" {
			upstream.Message = fmt.Sprintf("insights: upstream (%s): %s", upErr.Error.Type, upErr.Error.Message)
		} else {
			upstream.Message = fmt.Sprintf("insights: upstream HTTP %d", resp.StatusCode)
		}
		return upstream
	}

	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("insights: deserializar respuesta: %w", domain.ErrUpstreamService)
	}
	return nil
}
