// Command test-mode previews the deterministic stub provider: it prints
// the generated series and the aggregated change metrics for a set of
// symbols, so frontend work can proceed without network access or a
// running server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"stockflow/internal/adapters/provider/stub"
	"stockflow/internal/core/domain"
	"stockflow/internal/utils"
)

func main() {
	var (
		symbols  = flag.String("symbols", "AAPL,GOOGL,MSFT", "Comma-separated symbols")
		period   = flag.String("period", utils.DefaultPeriod, "Period token")
		interval = flag.String("interval", utils.DefaultInterval, "Interval token")
		tail     = flag.Int("tail", 5, "Bars to print per symbol")
	)
	flag.Parse()

	provider := stub.New()
	ctx := context.Background()

	for _, raw := range strings.Split(*symbols, ",") {
		symbol := strings.ToUpper(strings.TrimSpace(raw))
		if symbol == "" {
			continue
		}

		series, err := provider.Fetch(ctx, symbol, *period, *interval)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", symbol, err)
			continue
		}

		fmt.Printf("=== %s (%s, %d bars, period=%s interval=%s)\n",
			series.Symbol, series.Meta.CompanyName, len(series.Bars), *period, *interval)

		bars := series.Bars
		if len(bars) > *tail {
			bars = bars[len(bars)-*tail:]
		}
		for _, bar := range bars {
			fmt.Printf("  %-9s O=%8.2f H=%8.2f L=%8.2f C=%8.2f V=%d\n",
				utils.BucketLabel(bar.Timestamp, *interval),
				bar.Open, bar.High, bar.Low, bar.Close, bar.Volume)
		}

		entry := domain.NewWatchlistEntry(series)
		out, _ := json.Marshal(entry)
		fmt.Printf("  entry: %s\n", out)
	}
}
