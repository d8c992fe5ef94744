package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/lib/pq"

	"stockflow/internal/adapters/cache"
	v1 "stockflow/internal/adapters/handler/http/v1"
	"stockflow/internal/adapters/provider/stub"
	"stockflow/internal/adapters/provider/yahoo"
	"stockflow/internal/adapters/repository/postgres"
	"stockflow/internal/config"
	"stockflow/internal/core/port"
	"stockflow/internal/core/service/health"
	"stockflow/internal/core/service/stocks"
	"stockflow/internal/core/service/watchlist"
)

type App struct {
	cfg         *config.Config
	router      *http.ServeMux
	server      *http.Server
	db          *sql.DB
	redisClient *redis.Client

	// Services
	watchlistService port.WatchlistService
	stockService     port.StockService
	healthService    port.HealthService

	// For graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc
}

func NewApp(cfg *config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (app *App) Initialize() error {
	slog.Info("Initializing application...")
	app.router = http.NewServeMux()

	// Database connection
	dbConn, err := postgres.NewDbConnInstance(&app.cfg.Repository)
	if err != nil {
		slog.Error("Connection to database failed", "error", err)
		return err
	}
	app.db = dbConn
	slog.Info("Database connected successfully")

	symbolRepo, err := postgres.NewSymbolRepository(app.db)
	if err != nil {
		slog.Error("Watchlist repository setup failed", "error", err)
		return err
	}

	// Redis connection; the series cache is optional and the server
	// runs without it when Redis is unreachable.
	redisClient := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", app.cfg.Cache.RedisHost, app.cfg.Cache.RedisPort),
		Password:     app.cfg.Cache.RedisPassword,
		DB:           app.cfg.Cache.RedisDB,
		PoolSize:     app.cfg.Cache.PoolSize,
		MinIdleConns: app.cfg.Cache.MinIdleConns,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var seriesCache port.SeriesCache
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis connection failed, continuing without cache", "error", err)
		app.redisClient = nil
	} else {
		app.redisClient = redisClient
		seriesCache = cache.NewRedisAdapter(redisClient)
		slog.Info("Redis connected successfully")
	}

	// Quote provider, selected by config mode
	quoteProvider := app.buildProvider()
	slog.Info("Quote provider ready", "provider", quoteProvider.Name())

	// Services
	app.watchlistService = watchlist.NewWatchlistService(symbolRepo, quoteProvider)
	app.stockService = stocks.NewStockService(quoteProvider, seriesCache)
	app.healthService = health.NewHealthService(app.db, seriesCache)

	// Handlers (adapters layer)
	stockHandler := v1.NewStockHandler(app.stockService)
	watchlistHandler := v1.NewWatchlistHandler(app.watchlistService)
	systemHandler := v1.NewSystemHandler(app.healthService)

	v1.SetAPIRoutes(app.router, stockHandler, watchlistHandler, systemHandler)

	if app.redisClient != nil {
		v1.SetDebugRoutes(app.router, app.redisClient)
	}

	slog.Info("Application initialized successfully")
	return nil
}

func (app *App) buildProvider() port.QuoteProvider {
	if app.cfg.Provider.Mode == "stub" {
		return stub.New()
	}
	return yahoo.New(
		app.cfg.Provider.BaseURL,
		app.cfg.Provider.UserAgent,
		time.Duration(app.cfg.Provider.TimeoutSeconds)*time.Second,
	)
}

func (app *App) Run() {
	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.App.Port),
		Handler: v1.Recover(v1.CORS(app.router)),
	}

	slog.Info("Starting server", "port", app.cfg.App.Port)

	if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Server error", "error", err)
		return
	}
}

// Shutdown gracefully shuts down the application
func (app *App) Shutdown() error {
	slog.Info("Shutting down application...")

	app.cancel()

	if app.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.server.Shutdown(ctx); err != nil {
			slog.Error("Failed to stop HTTP server", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}

	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}
