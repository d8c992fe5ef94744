package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockflow/internal/core/domain"
)

type fakeWatchlistService struct {
	symbols []domain.WatchedSymbol
	entries []domain.WatchlistEntry
	addErr  error
	rmErr   error

	gotPeriod   string
	gotInterval string
}

func (s *fakeWatchlistService) List(_ context.Context) ([]domain.WatchedSymbol, error) {
	return s.symbols, nil
}

func (s *fakeWatchlistService) Add(_ context.Context, symbol string) (*domain.WatchedSymbol, string, error) {
	if s.addErr != nil {
		return nil, "", s.addErr
	}
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return nil, "", err
	}
	return &domain.WatchedSymbol{Symbol: sym, AddedAt: time.Now()}, sym + " Inc.", nil
}

func (s *fakeWatchlistService) Remove(_ context.Context, symbol string) error {
	return s.rmErr
}

func (s *fakeWatchlistService) BuildView(_ context.Context, period, interval string) ([]domain.WatchlistEntry, error) {
	s.gotPeriod = period
	s.gotInterval = interval
	return s.entries, nil
}

func watchlistMux(svc *fakeWatchlistService) *http.ServeMux {
	mux := http.NewServeMux()
	setWatchlistRoutes(NewWatchlistHandler(svc), mux)
	return mux
}

func TestGetWatchlist(t *testing.T) {
	added := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	svc := &fakeWatchlistService{symbols: []domain.WatchedSymbol{
		{ID: 1, Symbol: "AAPL", AddedAt: added},
		{ID: 2, Symbol: "MSFT", AddedAt: added},
	}}

	rr := httptest.NewRecorder()
	watchlistMux(svc).ServeHTTP(rr, httptest.NewRequest("GET", "/api/watchlist", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var resp WatchlistResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 2 || len(resp.Watchlist) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Watchlist[0].Symbol != "AAPL" || resp.Watchlist[0].AddedDate != "2024-03-14T12:00:00Z" {
		t.Errorf("unexpected first row: %+v", resp.Watchlist[0])
	}
}

func TestAddSymbol_Created(t *testing.T) {
	rr := httptest.NewRecorder()
	watchlistMux(&fakeWatchlistService{}).ServeHTTP(rr,
		httptest.NewRequest("POST", "/api/watchlist/nvda", nil))

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var resp AddSymbolResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Symbol != "NVDA" || resp.CompanyName != "NVDA Inc." {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestAddSymbol_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"duplicate", domain.ErrDuplicateSymbol, http.StatusConflict},
		{"no data", domain.ErrNoData, http.StatusBadRequest},
		{"invalid", domain.ErrInvalidSymbol, http.StatusBadRequest},
		{"provider fault", &domain.ProviderError{Symbol: "AAPL"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			watchlistMux(&fakeWatchlistService{addErr: tt.err}).ServeHTTP(rr,
				httptest.NewRequest("POST", "/api/watchlist/AAPL", nil))

			if rr.Code != tt.want {
				t.Fatalf("status = %d, want %d, body = %s", rr.Code, tt.want, rr.Body.String())
			}
			var resp ErrorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Error == "" {
				t.Error("expected error message in body")
			}
		})
	}
}

func TestRemoveSymbol(t *testing.T) {
	rr := httptest.NewRecorder()
	watchlistMux(&fakeWatchlistService{}).ServeHTTP(rr,
		httptest.NewRequest("DELETE", "/api/watchlist/aapl", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var resp RemoveSymbolResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Symbol != "AAPL" {
		t.Errorf("symbol = %q, want AAPL", resp.Symbol)
	}
}

func TestRemoveSymbol_NotFound(t *testing.T) {
	rr := httptest.NewRecorder()
	watchlistMux(&fakeWatchlistService{rmErr: domain.ErrSymbolNotFound}).ServeHTTP(rr,
		httptest.NewRequest("DELETE", "/api/watchlist/GONE", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
}

func TestGetWatchlistData_DefaultsAndShape(t *testing.T) {
	svc := &fakeWatchlistService{entries: []domain.WatchlistEntry{
		{Symbol: "AAPL", Name: "Apple Inc.", Price: 105, Change: 5, ChangePercent: 5},
	}}

	rr := httptest.NewRecorder()
	watchlistMux(svc).ServeHTTP(rr, httptest.NewRequest("GET", "/api/watchlist/data", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if svc.gotPeriod != "1d" || svc.gotInterval != "5m" {
		t.Errorf("defaults = %s/%s, want 1d/5m", svc.gotPeriod, svc.gotInterval)
	}
	var resp WatchlistDataResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 1 || resp.Watchlist[0].Symbol != "AAPL" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetWatchlistData_EmptyListNotNull(t *testing.T) {
	rr := httptest.NewRecorder()
	watchlistMux(&fakeWatchlistService{}).ServeHTTP(rr,
		httptest.NewRequest("GET", "/api/watchlist/data?period=5d&interval=1h", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp struct {
		Watchlist []domain.WatchlistEntry `json:"watchlist"`
		Count     int                     `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Watchlist == nil || resp.Count != 0 {
		t.Fatalf("want empty array with count 0, got %s", rr.Body.String())
	}
}
