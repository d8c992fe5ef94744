package v1

import (
	"net/http"

	"github.com/redis/go-redis/v9"
)

// SetAPIRoutes sets up all public API routes
func SetAPIRoutes(router *http.ServeMux, stockHandler *StockHandler, watchlistHandler *WatchlistHandler, systemHandler *SystemHandler) {
	// Single-Symbol Data Routes
	setStockRoutes(stockHandler, router)

	// Watchlist Routes
	setWatchlistRoutes(watchlistHandler, router)

	// System Routes
	setSystemRoutes(systemHandler, router)
}

// SetDebugRoutes sets up debug routes (call this separately for debugging)
func SetDebugRoutes(router *http.ServeMux, redisClient *redis.Client) {
	debugHandler := NewDebugHandler(redisClient)

	router.HandleFunc("GET /debug/cache/keys", debugHandler.GetCacheKeys)
	router.HandleFunc("GET /debug/cache/series/{symbol}", debugHandler.GetCachedSeries)
}

// setStockRoutes sets up the per-symbol passthrough endpoints
func setStockRoutes(handler *StockHandler, router *http.ServeMux) {
	router.HandleFunc("GET /api/stock/{symbol}", handler.GetStockData)
	router.HandleFunc("GET /api/stock/{symbol}/simple", handler.GetSimpleStockData)
	router.HandleFunc("GET /api/stock/{symbol}/current", handler.GetCurrentPrice)
	router.HandleFunc("GET /api/stock/{symbol}/intraday", handler.GetIntradayData)
	router.HandleFunc("GET /api/stocks/multiple", handler.GetMultipleStocks)
}

// setWatchlistRoutes sets up the persisted watchlist endpoints
func setWatchlistRoutes(handler *WatchlistHandler, router *http.ServeMux) {
	router.HandleFunc("GET /api/watchlist", handler.GetWatchlist)
	router.HandleFunc("GET /api/watchlist/data", handler.GetWatchlistData)
	router.HandleFunc("POST /api/watchlist/{symbol}", handler.AddSymbol)
	router.HandleFunc("DELETE /api/watchlist/{symbol}", handler.RemoveSymbol)
}

// setSystemRoutes sets up health and API info endpoints
func setSystemRoutes(handler *SystemHandler, router *http.ServeMux) {
	router.HandleFunc("GET /api/health", handler.GetHealth)
	router.HandleFunc("GET /api/info", handler.GetInfo)
}
