package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateSymbol is returned when adding a symbol that is
	// already on the watchlist.
	ErrDuplicateSymbol = errors.New("symbol already in watchlist")

	// ErrSymbolNotFound is returned when removing a symbol that is not
	// on the watchlist.
	ErrSymbolNotFound = errors.New("symbol not in watchlist")

	// ErrNoData means the provider answered but yielded zero bars for
	// the requested symbol/period/interval. This is an expected outcome,
	// not a transport fault.
	ErrNoData = errors.New("no data for symbol")

	// ErrInvalidSymbol is returned for malformed ticker symbols before
	// any provider call is made.
	ErrInvalidSymbol = errors.New("invalid symbol")
)

// ProviderError is a transport or provider-side fault for one symbol.
// It is per-symbol: callers processing several symbols must not let it
// abort the siblings.
type ProviderError struct {
	Symbol string
	Err    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error for %s: %v", e.Symbol, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
