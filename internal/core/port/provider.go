package port

import (
	"context"

	"stockflow/internal/core/domain"
)

// QuoteProvider fetches a time-ordered series of bars plus metadata from
// the external market-data source. Period and interval are opaque
// provider tokens passed through unvalidated.
//
// A provider returns domain.ErrNoData when the symbol resolves to zero
// bars, and *domain.ProviderError for transport or provider-side faults.
// Both are per-symbol conditions.
type QuoteProvider interface {
	Name() string
	Fetch(ctx context.Context, symbol, period, interval string) (*domain.Series, error)
}
