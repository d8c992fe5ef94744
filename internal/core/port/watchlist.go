package port

import (
	"context"

	"stockflow/internal/core/domain"
)

// SymbolRepository is the durable set of watched ticker symbols.
// Implementations store symbols uppercase, enforce uniqueness and commit
// every mutation before returning.
type SymbolRepository interface {
	// List returns all watched symbols in insertion order; an empty
	// watchlist yields an empty slice, not an error.
	List(ctx context.Context) ([]domain.WatchedSymbol, error)

	// Add stores a new symbol. Returns domain.ErrDuplicateSymbol when
	// the symbol is already present (no mutation in that case).
	Add(ctx context.Context, symbol string) (*domain.WatchedSymbol, error)

	// Remove deletes a symbol. Returns domain.ErrSymbolNotFound when
	// the symbol is absent.
	Remove(ctx context.Context, symbol string) error
}

// WatchlistService exposes watchlist management plus the consolidated
// live view over all watched symbols.
type WatchlistService interface {
	List(ctx context.Context) ([]domain.WatchedSymbol, error)

	// Add validates the symbol against the provider before persisting
	// it and returns the resolved company name alongside the record.
	Add(ctx context.Context, symbol string) (*domain.WatchedSymbol, string, error)

	Remove(ctx context.Context, symbol string) error

	// BuildView reconciles the persisted symbol set against live
	// per-symbol series. Symbols whose fetch fails are omitted from the
	// result; the surviving entries keep insertion order.
	BuildView(ctx context.Context, period, interval string) ([]domain.WatchlistEntry, error)
}
