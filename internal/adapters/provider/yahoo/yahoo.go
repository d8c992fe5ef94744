package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"stockflow/internal/core/domain"
	"stockflow/internal/core/port"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Provider implements port.QuoteProvider against the Yahoo Finance
// public chart and quote APIs.
type Provider struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// New creates a Yahoo Finance provider. An empty baseURL selects the
// public endpoint; tests point it at a local server.
func New(baseURL, userAgent string, timeout time.Duration) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if userAgent == "" {
		userAgent = "Mozilla/5.0"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Provider{
		client:    &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		userAgent: userAgent,
	}
}

func (p *Provider) Name() string { return "yahoo" }

// chartResponse is the shape of the v8 chart API answer. OHLCV arrays
// may contain nulls for halted sessions and holidays.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol   string `json:"symbol"`
				LongName string `json:"longName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// quoteResponse is the shape of the v7 quote API answer, used for the
// descriptive fields the chart API does not carry.
type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol     string  `json:"symbol"`
			LongName   string  `json:"longName"`
			ShortName  string  `json:"shortName"`
			MarketCap  int64   `json:"marketCap"`
			TrailingPE float64 `json:"trailingPE"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Fetch retrieves the bar series for a symbol. Period and interval are
// passed through to the provider untouched; combinations it rejects come
// back as ErrNoData or a ProviderError.
func (p *Provider) Fetch(ctx context.Context, symbol, period, interval string) (*domain.Series, error) {
	bars, companyName, err := p.fetchChart(ctx, symbol, period, interval)
	if err != nil {
		return nil, err
	}

	series := &domain.Series{
		Symbol:   symbol,
		Period:   period,
		Interval: interval,
		Bars:     bars,
		Meta: domain.SeriesMeta{
			CompanyName: companyName,
		},
	}

	// The quote lookup only enriches metadata; its failure never fails
	// the series.
	if meta, err := p.fetchQuote(ctx, symbol); err == nil {
		if meta.CompanyName != "" {
			series.Meta.CompanyName = meta.CompanyName
		}
		series.Meta.MarketCap = meta.MarketCap
		series.Meta.PERatio = meta.PERatio
	}

	if series.Meta.CompanyName == "" {
		series.Meta.CompanyName = "N/A"
	}

	return series, nil
}

func (p *Provider) fetchChart(ctx context.Context, symbol, period, interval string) ([]domain.Bar, string, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		p.baseURL, url.PathEscape(symbol), url.QueryEscape(interval), url.QueryEscape(period))

	// Unknown symbols come back as 404 with a structured chart error,
	// so a 404 body is still parsed instead of treated as a fault.
	body, status, err := p.get(ctx, u)
	if err != nil {
		return nil, "", &domain.ProviderError{Symbol: symbol, Err: err}
	}
	if status != http.StatusOK && status != http.StatusNotFound {
		return nil, "", &domain.ProviderError{
			Symbol: symbol,
			Err:    fmt.Errorf("yahoo: status %d, body: %s", status, string(body)),
		}
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, "", &domain.ProviderError{Symbol: symbol, Err: fmt.Errorf("decode chart: %w", err)}
	}
	if chart.Chart.Error != nil {
		// Unknown symbols and rejected period/interval combinations
		// land here; the provider reported, it did not fault.
		return nil, "", domain.ErrNoData
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, "", domain.ErrNoData
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, "", domain.ErrNoData
	}
	quote := result.Indicators.Quote[0]

	bars := make([]domain.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			break
		}
		o := deref(quote.Open[i])
		h := deref(quote.High[i])
		l := deref(quote.Low[i])
		c := deref(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // null bar (holiday, halted session)
		}
		var vol int64
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			vol = *quote.Volume[i]
		}
		bars = append(bars, domain.Bar{
			Timestamp: time.Unix(ts, 0),
			Open:      o,
			High:      h,
			Low:       l,
			Close:     c,
			Volume:    vol,
		})
	}
	if len(bars) == 0 {
		return nil, "", domain.ErrNoData
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Timestamp.Before(bars[j].Timestamp) })
	return bars, result.Meta.LongName, nil
}

func (p *Provider) fetchQuote(ctx context.Context, symbol string) (*domain.SeriesMeta, error) {
	u := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", p.baseURL, url.QueryEscape(symbol))

	body, status, err := p.get(ctx, u)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", status, string(body))
	}

	var quote quoteResponse
	if err := json.Unmarshal(body, &quote); err != nil {
		return nil, fmt.Errorf("decode quote: %w", err)
	}
	if len(quote.QuoteResponse.Result) == 0 {
		return nil, domain.ErrNoData
	}

	result := quote.QuoteResponse.Result[0]
	name := result.LongName
	if name == "" {
		name = result.ShortName
	}
	return &domain.SeriesMeta{
		CompanyName: name,
		MarketCap:   result.MarketCap,
		PERatio:     result.TrailingPE,
	}, nil
}

func (p *Provider) get(ctx context.Context, u string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("yahoo read body: %w", err)
	}
	return body, resp.StatusCode, nil
}

var _ port.QuoteProvider = (*Provider)(nil)
