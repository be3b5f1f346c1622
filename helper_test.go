package portfolio

import (
	"math"

	"github.com/pezpher/portfolioAllocation-analysis/date"
)

// day is a shorthand to build fixture dates.
func day(s string) date.Date { return date.MustParse(s) }

// addDaily appends consecutive daily observations for a ticker, one per
// calendar day starting at 'start'. Dividends are zero.
func addDaily(m *Market, ticker, name string, start date.Date, prices ...float64) {
	for i, p := range prices {
		m.Add(ticker, name, start.Add(i), p, 0)
	}
}

// testAnalyzer returns an analyzer pinned to a fixed as-of date so tests do
// not depend on the wall clock.
func testAnalyzer(m *Market, asOf date.Date) *Analyzer {
	a := NewAnalyzer(m, DefaultClassifier())
	a.Config.AsOf = asOf
	return a
}

// geometric returns prices growing at a fixed daily rate from a base.
func geometric(base, dailyRate float64, n int) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = base * math.Pow(1+dailyRate, float64(i))
	}
	return prices
}

// alternating returns prices moving up by a fixed rate every other day and
// staying flat in between, so daily returns genuinely vary.
func alternating(base, upRate float64, n int) []float64 {
	prices := make([]float64, n)
	prices[0] = base
	for i := 1; i < n; i++ {
		if i%2 == 1 {
			prices[i] = prices[i-1] * (1 + upRate)
		} else {
			prices[i] = prices[i-1]
		}
	}
	return prices
}

// flat returns n identical prices.
func flat(price float64, n int) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = price
	}
	return prices
}

// almost reports whether two floats are equal within a small absolute
// tolerance.
func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
