package v1

import (
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"stockflow/internal/core/domain"
	"stockflow/internal/core/port"
	"stockflow/internal/utils"
)

type StockHandler struct {
	stockService port.StockService
}

func NewStockHandler(
	stockService port.StockService,
) *StockHandler {
	return &StockHandler{
		stockService: stockService,
	}
}

// Response structures
type BarResponse struct {
	Date     string  `json:"date"`
	FullDate string  `json:"full_date"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	Volume   int64   `json:"volume"`
	Price    float64 `json:"price"`
}

type StockDataResponse struct {
	Symbol      string        `json:"symbol"`
	CompanyName string        `json:"company_name"`
	Period      string        `json:"period"`
	Interval    string        `json:"interval"`
	Data        []BarResponse `json:"data"`
	Count       int           `json:"count"`
}

type SimpleStockResponse struct {
	Symbol string    `json:"symbol"`
	Dates  []string  `json:"dates"`
	Prices []float64 `json:"prices"`
}

type CurrentPriceResponse struct {
	Symbol       string      `json:"symbol"`
	CurrentPrice float64     `json:"current_price"`
	CompanyName  string      `json:"company_name"`
	MarketCap    interface{} `json:"market_cap"`
	PERatio      interface{} `json:"pe_ratio"`
	LastUpdated  string      `json:"last_updated"`
}

type IntradayPointResponse struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Volume int64   `json:"volume"`
}

type MultiStockResponse struct {
	CompanyName  string         `json:"company_name"`
	Data         []MultiBarItem `json:"data"`
	CurrentPrice float64        `json:"current_price"`
}

type MultiBarItem struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// queryParams reads period/interval with their defaults.
func queryParams(r *http.Request) (string, string) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = utils.DefaultPeriod
	}
	interval := r.URL.Query().Get("interval")
	if interval == "" {
		interval = utils.DefaultInterval
	}
	return period, interval
}

func (h *StockHandler) writeFetchError(w http.ResponseWriter, symbol string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidSymbol):
		writeErrorResponse(w, http.StatusBadRequest, "invalid symbol: "+symbol)
	case errors.Is(err, domain.ErrNoData):
		writeErrorResponse(w, http.StatusNotFound, "No data found for symbol "+strings.ToUpper(symbol))
	default:
		writeErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

// GetStockData handles GET /api/stock/{symbol}
func (h *StockHandler) GetStockData(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")
	period, interval := queryParams(r)

	series, err := h.stockService.History(r.Context(), symbol, period, interval)
	if err != nil {
		h.writeFetchError(w, symbol, err)
		return
	}

	data := make([]BarResponse, 0, len(series.Bars))
	for _, bar := range series.Bars {
		data = append(data, BarResponse{
			Date:     utils.BucketLabel(bar.Timestamp, interval),
			FullDate: bar.Timestamp.Format(time.RFC3339),
			Open:     round2(bar.Open),
			High:     round2(bar.High),
			Low:      round2(bar.Low),
			Close:    round2(bar.Close),
			Volume:   bar.Volume,
			Price:    round2(bar.Close),
		})
	}

	writeJSONResponse(w, http.StatusOK, StockDataResponse{
		Symbol:      series.Symbol,
		CompanyName: series.Meta.CompanyName,
		Period:      period,
		Interval:    interval,
		Data:        data,
		Count:       len(data),
	})
}

// GetSimpleStockData handles GET /api/stock/{symbol}/simple
func (h *StockHandler) GetSimpleStockData(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")
	period, interval := queryParams(r)

	series, err := h.stockService.History(r.Context(), symbol, period, interval)
	if err != nil {
		h.writeFetchError(w, symbol, err)
		return
	}

	dates := make([]string, 0, len(series.Bars))
	prices := make([]float64, 0, len(series.Bars))
	for _, bar := range series.Bars {
		dates = append(dates, utils.BucketLabel(bar.Timestamp, interval))
		prices = append(prices, round2(bar.Close))
	}

	writeJSONResponse(w, http.StatusOK, SimpleStockResponse{
		Symbol: series.Symbol,
		Dates:  dates,
		Prices: prices,
	})
}

// GetCurrentPrice handles GET /api/stock/{symbol}/current
func (h *StockHandler) GetCurrentPrice(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")

	series, err := h.stockService.Current(r.Context(), symbol)
	if err != nil {
		h.writeFetchError(w, symbol, err)
		return
	}

	current := series.Current()
	writeJSONResponse(w, http.StatusOK, CurrentPriceResponse{
		Symbol:       series.Symbol,
		CurrentPrice: round2(current.Close),
		CompanyName:  series.Meta.CompanyName,
		MarketCap:    naInt(series.Meta.MarketCap),
		PERatio:      naFloat(series.Meta.PERatio),
		LastUpdated:  current.Timestamp.Format(time.RFC3339),
	})
}

// GetIntradayData handles GET /api/stock/{symbol}/intraday
func (h *StockHandler) GetIntradayData(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")

	series, err := h.stockService.Intraday(r.Context(), symbol)
	if err != nil {
		h.writeFetchError(w, symbol, err)
		return
	}

	points := make([]IntradayPointResponse, 0, len(series.Bars))
	for _, bar := range series.Bars {
		points = append(points, IntradayPointResponse{
			Name:   utils.BucketLabel(bar.Timestamp, "1m"),
			Value:  round2(bar.Close),
			Volume: bar.Volume,
		})
	}

	writeJSONResponse(w, http.StatusOK, points)
}

// GetMultipleStocks handles GET /api/stocks/multiple
//
// Unlike the watchlist view, a symbol that fails here is reported
// in-band with an error marker instead of being omitted.
func (h *StockHandler) GetMultipleStocks(w http.ResponseWriter, r *http.Request) {
	symbolsParam := r.URL.Query().Get("symbols")
	if symbolsParam == "" {
		symbolsParam = "AAPL"
	}
	period, interval := queryParams(r)

	results := make(map[string]interface{})
	for _, raw := range strings.Split(symbolsParam, ",") {
		symbol := strings.ToUpper(strings.TrimSpace(raw))
		if symbol == "" {
			continue
		}

		series, err := h.stockService.History(r.Context(), symbol, period, interval)
		if err != nil {
			if errors.Is(err, domain.ErrNoData) {
				results[symbol] = ErrorResponse{Error: "No data found"}
			} else {
				results[symbol] = ErrorResponse{Error: err.Error()}
			}
			continue
		}

		data := make([]MultiBarItem, 0, len(series.Bars))
		for _, bar := range series.Bars {
			data = append(data, MultiBarItem{
				Date:  utils.BucketLabel(bar.Timestamp, interval),
				Price: round2(bar.Close),
			})
		}
		results[symbol] = MultiStockResponse{
			CompanyName:  series.Meta.CompanyName,
			Data:         data,
			CurrentPrice: round2(series.Current().Close),
		}
	}

	writeJSONResponse(w, http.StatusOK, results)
}

// naInt renders a missing numeric field the way the API has always
// reported it: the literal string "N/A".
func naInt(v int64) interface{} {
	if v == 0 {
		return "N/A"
	}
	return v
}

func naFloat(v float64) interface{} {
	if v == 0 {
		return "N/A"
	}
	return v
}
