package stocks

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stockflow/internal/core/domain"
)

type countingProvider struct {
	mu     sync.Mutex
	calls  int
	series *domain.Series
	err    error
}

func (p *countingProvider) Name() string { return "counting" }

func (p *countingProvider) Fetch(_ context.Context, symbol, period, interval string) (*domain.Series, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	return p.series, nil
}

type memCache struct {
	mu    sync.Mutex
	items map[string]*domain.Series
}

func newMemCache() *memCache {
	return &memCache{items: map[string]*domain.Series{}}
}

func (c *memCache) key(symbol, period, interval string) string {
	return symbol + ":" + period + ":" + interval
}

func (c *memCache) GetSeries(_ context.Context, symbol, period, interval string) (*domain.Series, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[c.key(symbol, period, interval)], nil
}

func (c *memCache) SetSeries(_ context.Context, series *domain.Series) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[c.key(series.Symbol, series.Period, series.Interval)] = series
	return nil
}

func (c *memCache) Ping(_ context.Context) error { return nil }

func testSeries() *domain.Series {
	return &domain.Series{
		Symbol:   "AAPL",
		Period:   "1d",
		Interval: "5m",
		Bars: []domain.Bar{
			{Timestamp: time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC), Close: 100},
			{Timestamp: time.Date(2024, 3, 14, 9, 35, 0, 0, time.UTC), Close: 105},
		},
		Meta: domain.SeriesMeta{CompanyName: "Apple Inc."},
	}
}

func TestHistory_NormalizesSymbol(t *testing.T) {
	provider := &countingProvider{series: testSeries()}
	svc := NewStockService(provider, nil)

	series, err := svc.History(context.Background(), "aapl", "1d", "5m")
	require.NoError(t, err)
	require.Equal(t, "AAPL", series.Symbol)
}

func TestHistory_RejectsMalformedSymbol(t *testing.T) {
	provider := &countingProvider{series: testSeries()}
	svc := NewStockService(provider, nil)

	_, err := svc.History(context.Background(), "no such symbol", "1d", "5m")
	require.ErrorIs(t, err, domain.ErrInvalidSymbol)
	require.Zero(t, provider.calls)
}

func TestHistory_CachePopulatedAndConsulted(t *testing.T) {
	provider := &countingProvider{series: testSeries()}
	cache := newMemCache()
	svc := NewStockService(provider, cache)

	_, err := svc.History(context.Background(), "AAPL", "1d", "5m")
	require.NoError(t, err)
	require.Equal(t, 1, provider.calls)

	// Second identical request is served from cache.
	series, err := svc.History(context.Background(), "AAPL", "1d", "5m")
	require.NoError(t, err)
	require.Equal(t, 1, provider.calls)
	require.Equal(t, "Apple Inc.", series.Meta.CompanyName)

	// A different key still goes to the provider.
	_, err = svc.History(context.Background(), "AAPL", "5d", "5m")
	require.NoError(t, err)
	require.Equal(t, 2, provider.calls)
}

func TestHistory_ProviderErrorPassesThrough(t *testing.T) {
	provider := &countingProvider{err: domain.ErrNoData}
	svc := NewStockService(provider, nil)

	_, err := svc.History(context.Background(), "AAPL", "1d", "5m")
	require.ErrorIs(t, err, domain.ErrNoData)
}

func TestCurrentAndIntradayUseOneMinuteDay(t *testing.T) {
	provider := &countingProvider{series: testSeries()}
	svc := NewStockService(provider, nil)

	_, err := svc.Current(context.Background(), "AAPL")
	require.NoError(t, err)
	_, err = svc.Intraday(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, 2, provider.calls)
}
