package port

import (
	"context"

	"stockflow/internal/core/domain"
)

// SeriesCache is a short-lived cache of provider responses, keyed by
// symbol/period/interval. Only the single-symbol endpoints consult it;
// the watchlist view always re-fetches live.
type SeriesCache interface {
	// GetSeries returns the cached series or (nil, nil) on a miss.
	GetSeries(ctx context.Context, symbol, period, interval string) (*domain.Series, error)

	// SetSeries stores a series under its request key.
	SetSeries(ctx context.Context, series *domain.Series) error

	// Health check
	Ping(ctx context.Context) error
}
