package portfolio

import (
	"math"

	"github.com/pezpher/portfolioAllocation-analysis/date"
)

// Metrics holds the three annualized statistics computed at every level of
// aggregation.
type Metrics struct {
	CAGR   Percent // compound annual growth rate
	StdDev Percent // volatility of daily returns scaled to a yearly horizon
	Yield  Percent // annualized dividend yield
}

// TickerMetrics is the per-instrument metrics with the instrument's target
// weight.
type TickerMetrics struct {
	Ticker string
	Weight Percent
	Metrics
}

// ClassMetrics aggregates the metrics of one asset class: a
// weight-renormalized blend of the contributing instruments.
type ClassMetrics struct {
	Metrics
	Tickers []TickerMetrics
}

// MetricsReport is the full three-level metrics breakdown for one analysis
// run. It is created fresh per run and never mutated afterwards.
type MetricsReport struct {
	Total    Metrics
	ByClass  map[AssetClass]ClassMetrics
	ByTicker map[string]TickerMetrics
}

// cagr returns the compound annual growth rate, zero when the inputs cannot
// support one.
func cagr(begin, end, years float64) float64 {
	if years <= 0 || begin <= 0 {
		return 0
	}
	return math.Pow(end/begin, 1/years) - 1
}

// sampleStdDev returns the sample standard deviation (n-1 denominator), or
// zero with fewer than 2 values.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values) - 1)
	return math.Sqrt(variance)
}

// instrumentSeries is one instrument's own observations restricted to the
// realized simulation window.
type instrumentSeries struct {
	days      []date.Date
	prices    []float64
	dividends float64
}

// restrict recovers an instrument's series over the realized window from the
// aligned lookup.
func restrict(tl timeline, ticker string, window date.Range) instrumentSeries {
	var s instrumentSeries
	for _, on := range tl.days {
		if !window.Contains(on) {
			continue
		}
		obs, ok := tl.lookup[on][ticker]
		if !ok {
			continue
		}
		s.days = append(s.days, on)
		s.prices = append(s.prices, obs.price)
		s.dividends += obs.dividend
	}
	return s
}

// metrics derives the instrument-level statistics from its own series.
//
// Unlike the simulator, yield is compounded onto the price return rather
// than reinvested share by share, a deliberate simplification.
func (s instrumentSeries) metrics(tradingDays float64) Metrics {
	years := date.NewRange(s.days[0], s.days[len(s.days)-1]).Years()

	priceCAGR := cagr(s.prices[0], s.prices[len(s.prices)-1], years)

	dailyReturns := make([]float64, 0, len(s.prices)-1)
	for i := 1; i < len(s.prices); i++ {
		if prev := s.prices[i-1]; prev > 0 {
			dailyReturns = append(dailyReturns, (s.prices[i]-prev)/prev)
		}
	}
	stdDev := sampleStdDev(dailyReturns) * math.Sqrt(tradingDays)

	var avgPrice float64
	for _, p := range s.prices {
		avgPrice += p
	}
	avgPrice /= float64(len(s.prices))

	var yield float64
	if years > 0 && avgPrice > 0 {
		annualDividend := s.dividends / years
		yield = annualDividend / avgPrice
	}

	totalReturnCAGR := (1+priceCAGR)*(1+yield) - 1

	return Metrics{
		CAGR:   rate(totalReturnCAGR),
		StdDev: rate(stdDev),
		Yield:  rate(yield),
	}
}

// computeMetrics derives the three-level metrics report from a simulation
// run and the aligned price data.
func computeMetrics(p Portfolio, classify Classifier, tl timeline, sim simulation, tradingDays float64) MetricsReport {
	report := MetricsReport{
		ByClass:  make(map[AssetClass]ClassMetrics),
		ByTicker: make(map[string]TickerMetrics),
	}

	window := date.NewRange(sim.history[0].Date, sim.history[len(sim.history)-1].Date)
	years := window.Years()

	// Per-instrument metrics, computed over each instrument's own window.
	// Instruments with fewer than 2 observations are excluded from all
	// aggregation rather than zero-filled.
	for _, h := range p {
		series := restrict(tl, h.Ticker, window)
		if len(series.prices) < 2 {
			continue
		}
		report.ByTicker[h.Ticker] = TickerMetrics{
			Ticker:  h.Ticker,
			Weight:  Percent(h.Weight),
			Metrics: series.metrics(tradingDays),
		}
	}

	// Total level: CAGR and volatility come from the simulated value
	// series, yield is the weighted sum of the per-instrument yields.
	begin, end := sim.history[0].Value, sim.history[len(sim.history)-1].Value
	var totalYield float64
	for _, h := range p {
		if tm, ok := report.ByTicker[h.Ticker]; ok {
			totalYield += tm.Yield.fraction() * h.Weight / 100
		}
	}
	report.Total = Metrics{
		CAGR:   rate(cagr(begin, end, years)),
		StdDev: rate(sampleStdDev(sim.returns) * math.Sqrt(tradingDays)),
		Yield:  rate(totalYield),
	}

	// Asset-class level: a weight-renormalized average of the contributing
	// instruments, metric by metric. Not a class-level simulation, just a
	// linear blend.
	for _, h := range p {
		tm, ok := report.ByTicker[h.Ticker]
		if !ok {
			continue
		}
		class := classify.Class(h.Ticker)
		cm := report.ByClass[class]
		cm.Tickers = append(cm.Tickers, tm)
		report.ByClass[class] = cm
	}
	for class, cm := range report.ByClass {
		var classWeight float64
		for _, tm := range cm.Tickers {
			classWeight += float64(tm.Weight)
		}
		if classWeight <= 0 {
			continue
		}
		var c, s, y float64
		for _, tm := range cm.Tickers {
			w := float64(tm.Weight) / classWeight
			c += tm.CAGR.fraction() * w
			s += tm.StdDev.fraction() * w
			y += tm.Yield.fraction() * w
		}
		cm.Metrics = Metrics{CAGR: rate(c), StdDev: rate(s), Yield: rate(y)}
		report.ByClass[class] = cm
	}

	return report
}
