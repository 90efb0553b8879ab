package insights_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/TiendaPOS-api/internal/application/dto"
	"github.com/jhoicas/TiendaPOS-api/internal/domain"
	"github.com/jhoicas/TiendaPOS-api/internal/infrastructure/insights"
	"github.com/jhoicas/TiendaPOS-api/pkg/config"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestForecast_RespuestaOKSeDeserializa(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"insights":"demanda estable","dailyForecast":[]}`)
	client := insights.NewClient(config.InsightsConfig{ForecastURL: srv.URL, APIKey: "k"})

	out, err := client.Forecast(context.Background(), dto.ForecastRequest{Weeks: 4})

	require.NoError(t, err)
	assert.Equal(t, "demanda estable", out.Insights)
}

func TestForecast_CuotaAgotadaConservaElCodigo(t *testing.T) {
	srv := newServer(t, http.StatusTooManyRequests,
		`{"error":{"type":"rate_limit_error","message":"too many requests"}}`)
	client := insights.NewClient(config.InsightsConfig{ForecastURL: srv.URL, APIKey: "k"})

	_, err := client.Forecast(context.Background(), dto.ForecastRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamService)

	var up *domain.UpstreamStatusError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, http.StatusTooManyRequests, up.StatusCode)
	assert.Contains(t, up.Message, "rate_limit_error")
}

func TestPromotions_CaidaDelServicioConservaElCodigo(t *testing.T) {
	srv := newServer(t, http.StatusServiceUnavailable, `no json`)
	client := insights.NewClient(config.InsightsConfig{PromotionsURL: srv.URL, APIKey: "k"})

	_, err := client.Promotions(context.Background(), dto.PromotionsRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamService)

	var up *domain.UpstreamStatusError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, http.StatusServiceUnavailable, up.StatusCode)
}

func TestForecast_EndpointSinConfigurar(t *testing.T) {
	client := insights.NewClient(config.InsightsConfig{})

	_, err := client.Forecast(context.Background(), dto.ForecastRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamService)
	assert.False(t, errors.As(err, new(*domain.UpstreamStatusError)),
		"sin llamada HTTP no hay código que reenviar")
}
