package stocks

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"stockflow/internal/core/domain"
	"stockflow/internal/core/port"
)

// StockService serves single-symbol views straight from the provider,
// fronted by a short-TTL cache when one is configured.
type StockService struct {
	provider port.QuoteProvider
	cache    port.SeriesCache // nil when Redis is unavailable
	group    singleflight.Group
}

// NewStockService creates the service. cache may be nil; the service
// then always goes to the provider.
func NewStockService(provider port.QuoteProvider, cache port.SeriesCache) port.StockService {
	return &StockService{
		provider: provider,
		cache:    cache,
	}
}

// History fetches the series for a symbol. Concurrent identical requests
// collapse into one provider call.
func (s *StockService) History(ctx context.Context, symbol, period, interval string) (*domain.Series, error) {
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.GetSeries(ctx, sym, period, interval)
		if err != nil {
			slog.Warn("Series cache read failed", "symbol", sym, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	key := fmt.Sprintf("%s:%s:%s", sym, period, interval)
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.provider.Fetch(ctx, sym, period, interval)
	})
	if err != nil {
		return nil, err
	}
	series := v.(*domain.Series)

	if s.cache != nil {
		if err := s.cache.SetSeries(ctx, series); err != nil {
			slog.Warn("Series cache write failed", "symbol", sym, "error", err)
		}
	}

	return series, nil
}

func (s *StockService) Current(ctx context.Context, symbol string) (*domain.Series, error) {
	return s.History(ctx, symbol, "1d", "1m")
}

func (s *StockService) Intraday(ctx context.Context, symbol string) (*domain.Series, error) {
	return s.History(ctx, symbol, "1d", "1m")
}
