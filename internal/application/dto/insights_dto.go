package dto

import "encoding/json"

// ForecastRequest body que se reenvía al endpoint externo de pronóstico.
// Los campos se arman desde los reportes de ventas; el servicio externo es una
// caja negra que devuelve JSON estructurado.
type ForecastRequest struct {
	Products []ForecastProductInput `json:"products"`
	Weeks    int                    `json:"weeks,omitempty"`
}

// ForecastProductInput datos mínimos de un producto para el pronóstico.
type ForecastProductInput struct {
	ProductID  int64  `json:"product_id"`
	Name       string `json:"name"`
	UnitsSold  int64  `json:"units_sold_last_30d"`
	Quantity   int64  `json:"quantity"`
	ReorderLvl int64  `json:"reorder_level"`
}

// ForecastResponse estructura devuelta por el endpoint de pronóstico.
// Los pronósticos se dejan como JSON crudo: su forma interna pertenece al
// servicio externo y aquí solo se reenvía.
type ForecastResponse struct {
	DailyForecast   json.RawMessage `json:"dailyForecast"`
	WeeklyForecast  json.RawMessage `json:"weeklyForecast"`
	MonthlyForecast json.RawMessage `json:"monthlyForecast"`
	Insights        string          `json:"insights"`
}

// PromotionsRequest body que se reenvía al endpoint externo de promociones.
type PromotionsRequest struct {
	Products []ForecastProductInput `json:"products"`
	Goal     string                 `json:"goal,omitempty"`
}

// PromotionsResponse plan de promociones devuelto por el servicio externo.
type PromotionsResponse struct {
	Recommendations []json.RawMessage `json:"recommendations"`
	Summary         string            `json:"summary"`
}
