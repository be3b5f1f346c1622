package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/pezpher/portfolioAllocation-analysis/renderer"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	holdings holdingsFlag
	years    int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "print the simulated day-by-day portfolio value" }
func (*historyCmd) Usage() string {
	return `paa history -p TICKER:WEIGHT [-p TICKER:WEIGHT ...] [-y <years>]

  Prints the simulated portfolio value for every trading day of the
  backtest, with the daily return.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.holdings, "p", "Holding as TICKER:WEIGHT, e.g. IVV:60. Repeatable.")
	f.IntVar(&c.years, "y", 10, "Look-back horizon in years")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	analysis, _, status := runAnalysis(&c.holdings, c.years)
	if status != subcommands.ExitSuccess {
		return status
	}

	printMarkdown(renderer.HistoryMarkdown(analysis, *currency))
	return subcommands.ExitSuccess
}
