package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/pezpher/portfolioAllocation-analysis/renderer"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	holdings holdingsFlag
	years    int
	output   string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the backtest as PNG charts" }
func (*chartCmd) Usage() string {
	return `paa chart -p TICKER:WEIGHT [-p TICKER:WEIGHT ...] [-y <years>] [-o <prefix>]

  Renders the simulated value history as a line chart and the target
  allocation as a pie chart, written as <prefix>_value.png and
  <prefix>_allocation.png.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.holdings, "p", "Holding as TICKER:WEIGHT, e.g. IVV:60. Repeatable.")
	f.IntVar(&c.years, "y", 10, "Look-back horizon in years")
	f.StringVar(&c.output, "o", "portfolio", "Output file prefix for the PNG charts")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analysis, m, status := runAnalysis(&c.holdings, c.years)
	if status != subcommands.ExitSuccess {
		return status
	}

	value, err := renderer.ValueChart(analysis, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering value chart: %v\n", err)
		return subcommands.ExitFailure
	}
	allocation, err := renderer.AllocationChart(analysis, m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering allocation chart: %v\n", err)
		return subcommands.ExitFailure
	}

	for name, png := range map[string][]byte{
		c.output + "_value.png":      value,
		c.output + "_allocation.png": allocation,
	} {
		if err := os.WriteFile(name, png, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", name, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote %s\n", name)
	}
	return subcommands.ExitSuccess
}
