package domain

import (
	"regexp"
	"strings"
)

// Tickers are short and drawn from a small alphabet; "^" covers index
// symbols and "." class shares.
var symbolPattern = regexp.MustCompile(`^[A-Z0-9.^-]{1,12}$`)

// NormalizeSymbol uppercases a ticker symbol and rejects malformed ones
// with ErrInvalidSymbol.
func NormalizeSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if !symbolPattern.MatchString(symbol) {
		return "", ErrInvalidSymbol
	}
	return symbol, nil
}
