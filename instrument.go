package portfolio

import "github.com/pezpher/portfolioAllocation-analysis/date"

// Instrument represents a tradeable asset with its daily price and dividend
// history. Dividends are per-share cash distributions, zero on most days,
// so the dividend history only stores the days with an actual distribution.
type Instrument struct {
	ticker    string // The human-friendly ticker used in the portfolio.
	name      string // The display name from the data feed.
	prices    date.History[float64]
	dividends date.History[float64]
}

// NewInstrument returns an empty instrument for the given ticker.
func NewInstrument(ticker, name string) *Instrument {
	return &Instrument{ticker: ticker, name: name}
}

// Ticker returns the human-friendly ticker symbol of the instrument.
func (s *Instrument) Ticker() string { return s.ticker }

// Name returns the display name of the instrument.
func (s *Instrument) Name() string { return s.name }

// Range returns the date range covered by the instrument's price history.
func (s *Instrument) Range() date.Range {
	from, _ := s.prices.First()
	to, _ := s.prices.Latest()
	return date.NewRange(from, to)
}

// Observations returns the number of price observations.
func (s *Instrument) Observations() int { return s.prices.Len() }
