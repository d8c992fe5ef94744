package v1

import (
	"net/http"

	"stockflow/internal/core/port"
	"stockflow/internal/utils"
)

type SystemHandler struct {
	healthService port.HealthService
}

func NewSystemHandler(
	healthService port.HealthService,
) *SystemHandler {
	return &SystemHandler{
		healthService: healthService,
	}
}

type EndpointInfo struct {
	Description string   `json:"description"`
	Parameters  []string `json:"parameters,omitempty"`
	Example     string   `json:"example"`
}

type InfoResponse struct {
	Endpoints      map[string]EndpointInfo `json:"endpoints"`
	ValidPeriods   []string                `json:"valid_periods"`
	ValidIntervals []string                `json:"valid_intervals"`
}

// GetHealth handles GET /api/health
func (h *SystemHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	if h.healthService == nil {
		writeErrorResponse(w, http.StatusServiceUnavailable, "health service not available")
		return
	}

	writeJSONResponse(w, http.StatusOK, h.healthService.Check(r.Context()))
}

// GetInfo handles GET /api/info
func (h *SystemHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, InfoResponse{
		Endpoints: map[string]EndpointInfo{
			"/api/stock/{symbol}": {
				Description: "Get historical stock data",
				Parameters:  []string{"period", "interval"},
				Example:     "/api/stock/AAPL?period=1d&interval=5m",
			},
			"/api/stock/{symbol}/simple": {
				Description: "Get simplified stock data (dates and prices)",
				Example:     "/api/stock/AAPL/simple",
			},
			"/api/stock/{symbol}/current": {
				Description: "Get current price and basic info",
				Example:     "/api/stock/AAPL/current",
			},
			"/api/stock/{symbol}/intraday": {
				Description: "Get today's intraday data",
				Example:     "/api/stock/AAPL/intraday",
			},
			"/api/stocks/multiple": {
				Description: "Get data for multiple stocks",
				Parameters:  []string{"symbols", "period", "interval"},
				Example:     "/api/stocks/multiple?symbols=AAPL,GOOGL,MSFT",
			},
			"/api/watchlist": {
				Description: "List watched symbols (GET), add (POST /{symbol}), remove (DELETE /{symbol})",
				Example:     "/api/watchlist",
			},
			"/api/watchlist/data": {
				Description: "Get consolidated live data for all watched symbols",
				Parameters:  []string{"period", "interval"},
				Example:     "/api/watchlist/data?period=1d&interval=5m",
			},
		},
		ValidPeriods:   utils.ValidPeriods,
		ValidIntervals: utils.ValidIntervals,
	})
}
