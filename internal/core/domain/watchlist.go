package domain

import "time"

// WatchedSymbol is one persisted row of the watchlist table. Symbols are
// stored uppercase and unique; insertion order is the id order.
type WatchedSymbol struct {
	ID      int64     `json:"-"`
	Symbol  string    `json:"symbol"`
	AddedAt time.Time `json:"added_date"`
}

// WatchlistEntry is the derived, response-only row of the aggregated
// watchlist view: the latest close plus change against the previous bar.
type WatchlistEntry struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// NewWatchlistEntry reduces a series to its aggregated view row.
// When the previous close is zero the percent change is reported as
// zero instead of dividing by zero.
func NewWatchlistEntry(s *Series) WatchlistEntry {
	current := s.Current()
	previous := s.Previous()

	change := current.Close - previous.Close
	changePercent := 0.0
	if previous.Close != 0 {
		changePercent = change / previous.Close * 100
	}

	return WatchlistEntry{
		Symbol:        s.Symbol,
		Name:          s.Meta.CompanyName,
		Price:         current.Close,
		Change:        change,
		ChangePercent: changePercent,
	}
}
