package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	portfolio "github.com/pezpher/portfolioAllocation-analysis"
	"github.com/pezpher/portfolioAllocation-analysis/renderer"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	holdings holdingsFlag
	years    int
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "backtest a target allocation and report its metrics" }
func (*analyzeCmd) Usage() string {
	return `paa analyze -p TICKER:WEIGHT [-p TICKER:WEIGHT ...] [-y <years>]

  Simulates holding the target allocation over the last years, rebalancing
  on each calendar-year boundary, and reports annualized return, volatility
  and dividend yield for the portfolio, each asset class and each instrument.

Usage Examples:
# A classic 60/40 over the last 10 years.
$ paa analyze -p IVV:60 -p AGG:40

`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.holdings, "p", "Holding as TICKER:WEIGHT, e.g. IVV:60. Repeatable.")
	f.IntVar(&c.years, "y", 10, "Look-back horizon in years")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analysis, m, status := runAnalysis(&c.holdings, c.years)
	if status != subcommands.ExitSuccess {
		return status
	}

	printMarkdown(renderer.AnalysisMarkdown(analysis, m, *currency))
	return subcommands.ExitSuccess
}

// runAnalysis is the shared front of the reporting commands: parse and
// check the holdings, load the market, run the backtest.
func runAnalysis(holdings *holdingsFlag, years int) (*portfolio.Analysis, *portfolio.Market, subcommands.ExitStatus) {
	if len(holdings.p) == 0 {
		fmt.Fprintln(os.Stderr, "at least one -p TICKER:WEIGHT holding is required")
		return nil, nil, subcommands.ExitUsageError
	}
	if years < 1 {
		fmt.Fprintln(os.Stderr, "-y must be a positive number of years")
		return nil, nil, subcommands.ExitUsageError
	}
	checkAllocation(holdings.p)

	m, err := DecodeMarketFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	for _, h := range holdings.p {
		if !m.Has(h.Ticker) {
			fmt.Fprintf(os.Stderr, "Error: ticker %q is not in %s\n", h.Ticker, *marketFile)
			return nil, nil, subcommands.ExitFailure
		}
	}

	analyzer := portfolio.NewAnalyzer(m, portfolio.DefaultClassifier())
	analyzer.Config.Currency = *currency
	analysis, err := analyzer.Analyze(holdings.p, years)
	if err != nil {
		if errors.Is(err, portfolio.ErrInsufficientHistory) {
			fmt.Fprintf(os.Stderr, "Not enough market data to analyze the last %d years. Try a shorter -y or fetch more history.\n", years)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return nil, nil, subcommands.ExitFailure
	}
	return analysis, m, subcommands.ExitSuccess
}
