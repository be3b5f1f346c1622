package portfolio

import (
	"fmt"
	"strconv"
	"strings"
)

// Holding is a portfolio constituent: a ticker and its target weight in
// percent of the portfolio value, in (0, 100].
type Holding struct {
	Ticker string
	Weight float64
}

// Portfolio is an ordered set of holdings with unique tickers.
//
// The engine accepts any portfolio; metrics are only meaningful when the
// total weight is close to 100, which is the caller's concern, not an
// engine error.
type Portfolio []Holding

// TotalWeight returns the sum of all holding weights.
func (p Portfolio) TotalWeight() float64 {
	var total float64
	for _, h := range p {
		total += h.Weight
	}
	return total
}

// Has reports whether the portfolio holds the given ticker.
func (p Portfolio) Has(ticker string) bool {
	for _, h := range p {
		if h.Ticker == ticker {
			return true
		}
	}
	return false
}

// ParseHolding parses the "TICKER:WEIGHT" form used by the CLI, e.g. "IVV:60".
func ParseHolding(s string) (Holding, error) {
	ticker, weight, found := strings.Cut(s, ":")
	if !found {
		return Holding{}, fmt.Errorf("invalid holding %q: want TICKER:WEIGHT", s)
	}
	w, err := strconv.ParseFloat(weight, 64)
	if err != nil {
		return Holding{}, fmt.Errorf("invalid weight in holding %q: %w", s, err)
	}
	if w <= 0 || w > 100 {
		return Holding{}, fmt.Errorf("invalid weight in holding %q: want a percent in (0,100]", s)
	}
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return Holding{}, fmt.Errorf("invalid holding %q: empty ticker", s)
	}
	return Holding{Ticker: ticker, Weight: w}, nil
}
