package portfolio

import (
	"github.com/pezpher/portfolioAllocation-analysis/date"
)

// observation is a single instrument's (price, dividend) pair on one date.
type observation struct {
	price    float64
	dividend float64
}

// alignedDay maps tickers to their observation on one date. An instrument
// with no data that day simply has no entry: imputation is the simulator's
// concern, not the aligner's.
type alignedDay map[string]observation

// timeline is the aligned view of the portfolio constituents over a window:
// the sorted list of dates where at least one constituent has an
// observation, and the per-date lookup.
type timeline struct {
	days   []date.Date
	lookup map[date.Date]alignedDay
}

// alignTimeline merges the constituents' histories onto a common daily
// timeline, restricted to the window. It returns ErrInsufficientHistory
// when fewer than 2 aligned dates exist.
func alignTimeline(m *Market, p Portfolio, window date.Range) (timeline, error) {
	tl := timeline{lookup: make(map[date.Date]alignedDay)}

	histories := make([]date.History[float64], 0, len(p))
	for _, h := range p {
		if sec := m.Get(h.Ticker); sec != nil {
			histories = append(histories, sec.prices)
		}
	}

	for on := range date.Iterate(histories...) {
		if !window.Contains(on) {
			continue
		}
		day := make(alignedDay, len(p))
		for _, h := range p {
			if price, ok := m.read(h.Ticker, on); ok {
				day[h.Ticker] = observation{price: price, dividend: m.dividend(h.Ticker, on)}
			}
		}
		tl.days = append(tl.days, on)
		tl.lookup[on] = day
	}

	if len(tl.days) < 2 {
		return timeline{}, ErrInsufficientHistory
	}
	return tl, nil
}
