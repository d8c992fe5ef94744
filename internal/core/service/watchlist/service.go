package watchlist

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"stockflow/internal/core/domain"
	"stockflow/internal/core/port"
)

// maxConcurrentFetches bounds parallel provider calls per view build.
const maxConcurrentFetches = 4

type WatchlistService struct {
	repo     port.SymbolRepository
	provider port.QuoteProvider
}

// NewWatchlistService creates the watchlist service with its repository
// and live provider dependencies.
func NewWatchlistService(repo port.SymbolRepository, provider port.QuoteProvider) port.WatchlistService {
	return &WatchlistService{
		repo:     repo,
		provider: provider,
	}
}

func (s *WatchlistService) List(ctx context.Context) ([]domain.WatchedSymbol, error) {
	return s.repo.List(ctx)
}

// Add resolves the symbol against the provider before persisting it, so
// the watchlist never collects tickers the provider cannot serve. The
// resolved company name is returned for the response body.
func (s *WatchlistService) Add(ctx context.Context, symbol string) (*domain.WatchedSymbol, string, error) {
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return nil, "", err
	}

	series, err := s.provider.Fetch(ctx, sym, "1d", "1d")
	if err != nil {
		return nil, "", err
	}

	ws, err := s.repo.Add(ctx, sym)
	if err != nil {
		return nil, "", err
	}

	return ws, series.Meta.CompanyName, nil
}

func (s *WatchlistService) Remove(ctx context.Context, symbol string) error {
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return err
	}
	return s.repo.Remove(ctx, sym)
}

// BuildView reconciles the persisted symbol set against live per-symbol
// series and reduces each to its change metrics. Fetches run in
// parallel; results are re-assembled in insertion order. A symbol whose
// fetch fails is omitted from the view, never reported as an error row.
func (s *WatchlistService) BuildView(ctx context.Context, period, interval string) ([]domain.WatchlistEntry, error) {
	symbols, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("read watchlist: %w", err)
	}

	results := make([]*domain.WatchlistEntry, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, ws := range symbols {
		g.Go(func() error {
			series, err := s.provider.Fetch(gctx, ws.Symbol, period, interval)
			if err != nil {
				// Per-symbol failure must not take down the siblings.
				slog.Warn("Skipping watchlist symbol",
					"symbol", ws.Symbol, "error", err)
				return nil
			}
			if len(series.Bars) == 0 {
				return nil
			}
			entry := domain.NewWatchlistEntry(series)
			results[i] = &entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]domain.WatchlistEntry, 0, len(results))
	for _, entry := range results {
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	return entries, nil
}
