package portfolio

import (
	"slices"
	"strings"

	"github.com/pezpher/portfolioAllocation-analysis/date"
)

// CashTicker is the synthetic cash-equivalent instrument: a fixed price of 1
// and no dividends, so that cash can be held and weighted like any other
// instrument.
const CashTicker = "CASH"

// Market holds the price and dividend histories for a set of instruments.
//
// It is built once by a loading collaborator (CSV feed or remote fetcher)
// and is read-only afterwards: the engine never mutates it, so a Market is
// safe to share across analysis runs.
type Market struct {
	instruments []*Instrument
	index       map[string]*Instrument
}

// NewMarket returns a new empty market data collection.
func NewMarket() *Market {
	return &Market{
		instruments: make([]*Instrument, 0),
		index:       make(map[string]*Instrument),
	}
}

func (m *Market) Has(ticker string) bool {
	_, ok := m.index[ticker]
	return ok
}

func (m *Market) Get(ticker string) *Instrument { return m.index[ticker] }

// Tickers returns all known tickers, sorted by instrument display name like
// the original dataset ordering.
func (m *Market) Tickers() []string {
	list := make([]string, 0, len(m.instruments))
	for _, s := range m.instruments {
		list = append(list, s.ticker)
	}
	slices.SortFunc(list, func(a, b string) int {
		return strings.Compare(m.index[a].name, m.index[b].name)
	})
	return list
}

// Add records a single (price, dividend) observation for a ticker,
// creating the instrument on first sight. A zero dividend is not stored.
func (m *Market) Add(ticker, name string, on date.Date, price, dividend float64) {
	sec, ok := m.index[ticker]
	if !ok {
		sec = NewInstrument(ticker, name)
		m.instruments = append(m.instruments, sec)
		m.index[ticker] = sec
	}
	sec.prices.Append(on, price)
	if dividend != 0 {
		sec.dividends.Append(on, dividend)
	}
}

// read a single price from the market for a given (ticker, day).
func (m *Market) read(ticker string, day date.Date) (float64, bool) {
	sec, ok := m.index[ticker]
	if !ok {
		return 0.0, false
	}
	return sec.prices.Get(day)
}

// dividend returns the per-share distribution for a given (ticker, day),
// zero on days without one.
func (m *Market) dividend(ticker string, day date.Date) float64 {
	sec, ok := m.index[ticker]
	if !ok {
		return 0.0
	}
	d, _ := sec.dividends.Get(day)
	return d
}

// SynthesizeCash adds the CASH instrument, priced at 1 with no dividend on
// every date observed by any real instrument. Calling it again rebuilds the
// alignment, so it must be the last step of loading.
func (m *Market) SynthesizeCash() {
	histories := make([]date.History[float64], 0, len(m.instruments))
	for _, s := range m.instruments {
		if s.ticker == CashTicker {
			continue
		}
		histories = append(histories, s.prices)
	}
	for on := range date.Iterate(histories...) {
		m.Add(CashTicker, "Cash", on, 1, 0)
	}
}
