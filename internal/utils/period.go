package utils

// Default query parameters when the request does not specify them.
const (
	DefaultPeriod   = "1d"
	DefaultInterval = "5m"
)

// ValidPeriods lists the provider-defined period tokens, in the order
// they are advertised by /api/info.
var ValidPeriods = []string{
	"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max",
}

// ValidIntervals lists the provider-defined sampling interval tokens.
var ValidIntervals = []string{
	"1m", "2m", "5m", "15m", "30m", "60m", "90m", "1h", "1d", "5d", "1wk", "1mo", "3mo",
}

// IsValidPeriod reports whether the token is one of the known periods.
// Period tokens are opaque pass-through values for the provider, so this
// is informational; the boundary does not reject unknown tokens.
func IsValidPeriod(period string) bool {
	for _, p := range ValidPeriods {
		if p == period {
			return true
		}
	}
	return false
}

// IsValidInterval reports whether the token is one of the known intervals.
func IsValidInterval(interval string) bool {
	for _, i := range ValidIntervals {
		if i == interval {
			return true
		}
	}
	return false
}
