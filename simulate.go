package portfolio

import (
	"github.com/pezpher/portfolioAllocation-analysis/date"
)

// ValuePoint is the simulated portfolio value on one date.
type ValuePoint struct {
	Date  date.Date
	Value float64
}

// simulation is the output of one rebalancing walk. It is engine-owned and
// discarded after the metrics are derived.
type simulation struct {
	history []ValuePoint
	returns []float64
	shares  map[string]float64
}

// simulate walks the aligned timeline day by day, maintaining per-instrument
// share counts, accruing dividends as cash, and re-partitioning the value
// into the target weights when a calendar-year boundary is crossed.
//
// Days where any constituent lacks an observation are incomplete: the value
// is carried forward unchanged and no return is recorded, which avoids
// spurious return spikes from data gaps but also silently masks gaps longer
// than expected.
func simulate(p Portfolio, tl timeline, initialValue float64) (simulation, error) {
	first := tl.days[0]
	firstDay := tl.lookup[first]

	// Starting shares from the first date's prices. An instrument with no
	// valid positive price that day gets zero shares for the whole run:
	// the portfolio is silently under-allocated rather than the run
	// rejected.
	shares := make(map[string]float64, len(p))
	for _, h := range p {
		if obs, ok := firstDay[h.Ticker]; ok && obs.price > 0 {
			shares[h.Ticker] = initialValue * h.Weight / 100 / obs.price
		} else {
			shares[h.Ticker] = 0
		}
	}

	var cashAccrued float64
	lastRebalanceYear := first.Year()

	history := make([]ValuePoint, 0, len(tl.days))
	returns := make([]float64, 0, len(tl.days))

	for _, on := range tl.days {
		day := tl.lookup[on]

		complete := true
		for _, h := range p {
			if _, ok := day[h.Ticker]; !ok {
				complete = false
				break
			}
		}
		if !complete {
			// Carry the previous value forward; a leading gap emits nothing.
			if n := len(history); n > 0 {
				history = append(history, ValuePoint{Date: on, Value: history[n-1].Value})
			}
			continue
		}

		var marketValue float64
		for _, h := range p {
			obs := day[h.Ticker]
			marketValue += shares[h.Ticker] * obs.price
			cashAccrued += shares[h.Ticker] * obs.dividend
		}
		dayValue := marketValue + cashAccrued

		if on.Year() > lastRebalanceYear {
			// Rebalance: redeploy the full value, accrued cash included,
			// into the target weights.
			for _, h := range p {
				if obs := day[h.Ticker]; obs.price > 0 {
					shares[h.Ticker] = dayValue * h.Weight / 100 / obs.price
				} else {
					shares[h.Ticker] = 0
				}
			}
			cashAccrued = 0
			lastRebalanceYear = on.Year()
			dayValue = 0
			for _, h := range p {
				dayValue += shares[h.Ticker] * day[h.Ticker].price
			}
		}

		if n := len(history); n > 0 && history[n-1].Value > 0 {
			prev := history[n-1].Value
			returns = append(returns, (dayValue-prev)/prev)
		}
		history = append(history, ValuePoint{Date: on, Value: dayValue})
	}

	if len(history) < 2 {
		return simulation{}, ErrInsufficientHistory
	}
	return simulation{history: history, returns: returns, shares: shares}, nil
}
