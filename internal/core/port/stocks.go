package port

import (
	"context"

	"stockflow/internal/core/domain"
)

// StockService serves per-symbol views straight from the provider, with
// no persistence involved.
type StockService interface {
	// History fetches the series for the requested period and interval.
	History(ctx context.Context, symbol, period, interval string) (*domain.Series, error)

	// Current fetches the freshest 1-minute series of the current day,
	// carrying the metadata needed for a quote snapshot.
	Current(ctx context.Context, symbol string) (*domain.Series, error)

	// Intraday fetches today's 1-minute series.
	Intraday(ctx context.Context, symbol string) (*domain.Series, error)
}
