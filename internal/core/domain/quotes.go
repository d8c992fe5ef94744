package domain

import "time"

// Bar is one OHLCV sample for a symbol over a single interval.
// Bars are value-typed and never persisted; a fresh series is fetched
// from the provider on every request.
type Bar struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
}

// SeriesMeta carries descriptive information returned alongside a series.
// Zero values mean the provider did not report the field.
type SeriesMeta struct {
	CompanyName string  `json:"company_name"`
	MarketCap   int64   `json:"market_cap"`
	PERatio     float64 `json:"pe_ratio"`
}

// Series is a chronologically ascending sequence of bars plus metadata
// for one symbol.
type Series struct {
	Symbol   string     `json:"symbol"`
	Period   string     `json:"period"`
	Interval string     `json:"interval"`
	Bars     []Bar      `json:"bars"`
	Meta     SeriesMeta `json:"meta"`
}

// Current returns the most recent bar. Callers must check len(Bars) > 0.
func (s *Series) Current() Bar {
	return s.Bars[len(s.Bars)-1]
}

// Previous returns the second-to-last bar, or the last bar when the
// series holds a single sample (change then collapses to zero).
func (s *Series) Previous() Bar {
	if len(s.Bars) < 2 {
		return s.Bars[len(s.Bars)-1]
	}
	return s.Bars[len(s.Bars)-2]
}
