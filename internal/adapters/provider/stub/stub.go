// Package stub is a deterministic in-process quote provider. It stands
// in for the live market-data source in tests and offline development,
// selected with provider mode "stub" in the config.
package stub

import (
	"context"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"

	"stockflow/internal/core/domain"
	"stockflow/internal/core/port"
)

// maxBars caps the generated series length for long period/interval
// combinations.
const maxBars = 500

var intervalSteps = map[string]time.Duration{
	"1m":  time.Minute,
	"2m":  2 * time.Minute,
	"5m":  5 * time.Minute,
	"15m": 15 * time.Minute,
	"30m": 30 * time.Minute,
	"60m": time.Hour,
	"90m": 90 * time.Minute,
	"1h":  time.Hour,
	"1d":  24 * time.Hour,
	"5d":  5 * 24 * time.Hour,
	"1wk": 7 * 24 * time.Hour,
	"1mo": 30 * 24 * time.Hour,
	"3mo": 91 * 24 * time.Hour,
}

var periodSpans = map[string]time.Duration{
	"1d":  24 * time.Hour,
	"5d":  5 * 24 * time.Hour,
	"1mo": 30 * 24 * time.Hour,
	"3mo": 91 * 24 * time.Hour,
	"6mo": 182 * 24 * time.Hour,
	"1y":  365 * 24 * time.Hour,
	"2y":  2 * 365 * 24 * time.Hour,
	"5y":  5 * 365 * 24 * time.Hour,
	"10y": 10 * 365 * 24 * time.Hour,
	"ytd": 365 * 24 * time.Hour,
	"max": 10 * 365 * 24 * time.Hour,
}

type Provider struct {
	// Now supplies the series end time; tests pin it for stable labels.
	Now func() time.Time
}

func New() *Provider {
	return &Provider{Now: time.Now}
}

func (p *Provider) Name() string { return "stub" }

// Fetch generates a pseudo-random walk seeded by the symbol, so repeated
// calls for the same symbol yield the same series. Unknown period or
// interval tokens yield ErrNoData, mirroring a provider rejection.
func (p *Provider) Fetch(_ context.Context, symbol, period, interval string) (*domain.Series, error) {
	symbol = strings.ToUpper(symbol)

	step, ok := intervalSteps[interval]
	if !ok {
		return nil, domain.ErrNoData
	}
	span, ok := periodSpans[period]
	if !ok {
		return nil, domain.ErrNoData
	}

	count := int(span / step)
	if count < 1 {
		count = 1
	}
	if count > maxBars {
		count = maxBars
	}

	h := fnv.New64a()
	h.Write([]byte(symbol))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	base := 20 + rng.Float64()*480 // opening price in [20, 500)
	end := p.Now().Truncate(step)
	start := end.Add(-time.Duration(count-1) * step)

	bars := make([]domain.Bar, 0, count)
	price := base
	for i := 0; i < count; i++ {
		open := price
		drift := (rng.Float64() - 0.5) * base * 0.01
		close := open + drift
		high := open
		if close > high {
			high = close
		}
		low := open
		if close < low {
			low = close
		}
		bars = append(bars, domain.Bar{
			Timestamp: start.Add(time.Duration(i) * step),
			Open:      open,
			High:      high * 1.001,
			Low:       low * 0.999,
			Close:     close,
			Volume:    int64(rng.Intn(1_000_000)),
		})
		price = close
	}

	return &domain.Series{
		Symbol:   symbol,
		Period:   period,
		Interval: interval,
		Bars:     bars,
		Meta: domain.SeriesMeta{
			CompanyName: symbol + " Inc. (stub)",
			MarketCap:   int64(base * 1e9),
			PERatio:     15 + rng.Float64()*20,
		},
	}, nil
}

var _ port.QuoteProvider = (*Provider)(nil)
