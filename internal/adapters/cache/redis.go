package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stockflow/internal/core/domain"
	"stockflow/internal/core/port"
)

// seriesTTL keeps cached provider responses short-lived; quote data goes
// stale within a minute.
const seriesTTL = 30 * time.Second

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) port.SeriesCache {
	return &RedisAdapter{
		client: client,
	}
}

func seriesKey(symbol, period, interval string) string {
	return fmt.Sprintf("series:%s:%s:%s", symbol, period, interval)
}

// GetSeries returns the cached series for the request key, or (nil, nil)
// on a miss.
func (r *RedisAdapter) GetSeries(ctx context.Context, symbol, period, interval string) (*domain.Series, error) {
	data, err := r.client.Get(ctx, seriesKey(symbol, period, interval)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached series: %w", err)
	}

	var series domain.Series
	if err := json.Unmarshal(data, &series); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached series: %w", err)
	}
	return &series, nil
}

// SetSeries stores a series under its request key with a short TTL.
func (r *RedisAdapter) SetSeries(ctx context.Context, series *domain.Series) error {
	data, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("failed to marshal series: %w", err)
	}

	key := seriesKey(series.Symbol, series.Period, series.Interval)
	if err := r.client.Set(ctx, key, data, seriesTTL).Err(); err != nil {
		return fmt.Errorf("failed to set cached series: %w", err)
	}
	return nil
}

// Ping checks the Redis connection
func (r *RedisAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
