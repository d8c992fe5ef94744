package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"stockflow/internal/core/domain"
	"stockflow/internal/core/port"
	"stockflow/internal/utils"
)

type WatchlistHandler struct {
	watchlistService port.WatchlistService
}

func NewWatchlistHandler(
	watchlistService port.WatchlistService,
) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
	}
}

// Response structures
type WatchedSymbolResponse struct {
	Symbol    string `json:"symbol"`
	AddedDate string `json:"added_date"`
}

type WatchlistResponse struct {
	Watchlist []WatchedSymbolResponse `json:"watchlist"`
	Count     int                     `json:"count"`
}

type AddSymbolResponse struct {
	Symbol      string `json:"symbol"`
	Message     string `json:"message"`
	CompanyName string `json:"company_name"`
}

type RemoveSymbolResponse struct {
	Symbol  string `json:"symbol"`
	Message string `json:"message"`
}

type WatchlistDataResponse struct {
	Watchlist []domain.WatchlistEntry `json:"watchlist"`
	Count     int                     `json:"count"`
}

// GetWatchlist handles GET /api/watchlist
func (h *WatchlistHandler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	symbols, err := h.watchlistService.List(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "failed to read watchlist: "+err.Error())
		return
	}

	watchlist := make([]WatchedSymbolResponse, 0, len(symbols))
	for _, ws := range symbols {
		watchlist = append(watchlist, WatchedSymbolResponse{
			Symbol:    ws.Symbol,
			AddedDate: ws.AddedAt.Format(time.RFC3339),
		})
	}

	writeJSONResponse(w, http.StatusOK, WatchlistResponse{
		Watchlist: watchlist,
		Count:     len(watchlist),
	})
}

// AddSymbol handles POST /api/watchlist/{symbol}
func (h *WatchlistHandler) AddSymbol(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")
	if symbol == "" {
		writeErrorResponse(w, http.StatusBadRequest, "missing symbol parameter")
		return
	}

	ws, companyName, err := h.watchlistService.Add(r.Context(), symbol)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSymbol):
			writeErrorResponse(w, http.StatusBadRequest, "invalid symbol: "+symbol)
		case errors.Is(err, domain.ErrNoData):
			writeErrorResponse(w, http.StatusBadRequest, "could not validate symbol: "+symbol)
		case errors.Is(err, domain.ErrDuplicateSymbol):
			writeErrorResponse(w, http.StatusConflict, symbol+" is already in the watchlist")
		default:
			writeErrorResponse(w, http.StatusInternalServerError, "failed to add symbol: "+err.Error())
		}
		return
	}

	writeJSONResponse(w, http.StatusCreated, AddSymbolResponse{
		Symbol:      ws.Symbol,
		Message:     ws.Symbol + " added to watchlist",
		CompanyName: companyName,
	})
}

// RemoveSymbol handles DELETE /api/watchlist/{symbol}
func (h *WatchlistHandler) RemoveSymbol(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")
	if symbol == "" {
		writeErrorResponse(w, http.StatusBadRequest, "missing symbol parameter")
		return
	}

	symbol = strings.ToUpper(symbol)

	if err := h.watchlistService.Remove(r.Context(), symbol); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSymbol):
			writeErrorResponse(w, http.StatusBadRequest, "invalid symbol: "+symbol)
		case errors.Is(err, domain.ErrSymbolNotFound):
			writeErrorResponse(w, http.StatusNotFound, symbol+" is not in the watchlist")
		default:
			writeErrorResponse(w, http.StatusInternalServerError, "failed to remove symbol: "+err.Error())
		}
		return
	}

	writeJSONResponse(w, http.StatusOK, RemoveSymbolResponse{
		Symbol:  symbol,
		Message: symbol + " removed from watchlist",
	})
}

// GetWatchlistData handles GET /api/watchlist/data
func (h *WatchlistHandler) GetWatchlistData(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = utils.DefaultPeriod
	}
	interval := r.URL.Query().Get("interval")
	if interval == "" {
		interval = utils.DefaultInterval
	}

	entries, err := h.watchlistService.BuildView(r.Context(), period, interval)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "failed to build watchlist view: "+err.Error())
		return
	}
	if entries == nil {
		entries = []domain.WatchlistEntry{}
	}

	writeJSONResponse(w, http.StatusOK, WatchlistDataResponse{
		Watchlist: entries,
		Count:     len(entries),
	})
}
