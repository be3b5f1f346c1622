package portfolio

import (
	"errors"
	"fmt"

	"github.com/pezpher/portfolioAllocation-analysis/date"
)

// ErrInsufficientHistory is returned when fewer than 2 alignable or
// simulable dates exist in the window. Callers should treat it as "cannot
// analyze" and show a distinct message, not as a failure to route upward.
var ErrInsufficientHistory = errors.New("not enough historical data in the selected timeframe")

// Analyzer runs backtests against a market data store.
//
// The market and classifier are read-only; every Analyze call recomputes
// from scratch, so a single Analyzer is safe to reuse across runs.
type Analyzer struct {
	Market     *Market
	Classifier Classifier
	Config     Config
}

// NewAnalyzer returns an analyzer with the default configuration.
func NewAnalyzer(m *Market, c Classifier) *Analyzer {
	return &Analyzer{Market: m, Classifier: c, Config: DefaultConfig()}
}

// Analysis is the result of one backtest run: the simulated value history,
// the daily return series, and the metrics report. It is returned for
// display and never mutated by the engine afterwards.
type Analysis struct {
	Portfolio   Portfolio
	Window      date.Range
	Horizon     int // look-back window length, in years
	History     []ValuePoint
	Returns     []float64
	FinalShares map[string]float64
	Report      MetricsReport
}

// Analyze simulates the portfolio over the last horizonYears years and
// computes the metrics report.
//
// The engine does not validate that the weights sum to 100: that is a
// caller-side precondition for meaningful results, not an engine error.
func (a *Analyzer) Analyze(p Portfolio, horizonYears int) (*Analysis, error) {
	end := a.Config.asOf()
	window := date.NewRange(end.AddYears(-horizonYears), end)

	tl, err := alignTimeline(a.Market, p, window)
	if err != nil {
		return nil, fmt.Errorf("analyzing %d-year horizon: %w", horizonYears, err)
	}

	sim, err := simulate(p, tl, a.Config.InitialValue)
	if err != nil {
		return nil, fmt.Errorf("analyzing %d-year horizon: %w", horizonYears, err)
	}

	return &Analysis{
		Portfolio:   p,
		Window:      window,
		Horizon:     horizonYears,
		History:     sim.history,
		Returns:     sim.returns,
		FinalShares: sim.shares,
		Report:      computeMetrics(p, a.Classifier, tl, sim, a.Config.TradingDaysPerYear),
	}, nil
}
