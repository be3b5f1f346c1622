// Package cmd implements the CLI application to backtest portfolio allocations.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	portfolio "github.com/pezpher/portfolioAllocation-analysis"
)

// Commands lists the subcommands of the application.
// A main package registers them on a commander and executes the selected one.
var Commands = []subcommands.Command{
	&analyzeCmd{},
	&historyCmd{},
	&chartCmd{},
	&fetchCmd{},
	&classesCmd{},
	&AssistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var marketFile = flag.String("m", "market.csv", "Path to the market data CSV file")
var currency = flag.String("currency", "USD", "Display currency for portfolio values")

// DecodeMarketFile loads the market data CSV and synthesizes the cash
// instrument so that CASH can be held without a data feed.
func DecodeMarketFile() (*portfolio.Market, error) {
	f, err := os.Open(*marketFile)
	if err != nil {
		return nil, fmt.Errorf("could not open market file %q: %w", *marketFile, err)
	}
	defer f.Close()

	m, err := portfolio.DecodeMarket(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode market file %q: %w", *marketFile, err)
	}
	m.SynthesizeCash()
	return m, nil
}

// holdingsFlag collects repeated -p TICKER:WEIGHT flags into a portfolio.
type holdingsFlag struct {
	p portfolio.Portfolio
}

func (h *holdingsFlag) String() string {
	var s string
	for _, hold := range h.p {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("%s:%g", hold.Ticker, hold.Weight)
	}
	return s
}

func (h *holdingsFlag) Set(value string) error {
	hold, err := portfolio.ParseHolding(value)
	if err != nil {
		return err
	}
	if h.p.Has(hold.Ticker) {
		return fmt.Errorf("duplicate holding %q", hold.Ticker)
	}
	h.p = append(h.p, hold)
	return nil
}

// checkAllocation warns when the target weights do not sum to 100. The
// analysis still runs: partial allocations are a legitimate question.
func checkAllocation(p portfolio.Portfolio) {
	if total := portfolio.Percent(p.TotalWeight()); !total.Equal(100) {
		fmt.Fprintf(os.Stderr, "Warning: allocation sums to %s, not 100%%\n", total)
	}
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails (e.g. piped output).
func printMarkdown(md string) {
	out, err := glamour.RenderWithEnvironmentConfig(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
