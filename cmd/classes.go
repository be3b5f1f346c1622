package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	portfolio "github.com/pezpher/portfolioAllocation-analysis"
)

// classesCmd implements the "classes" command.
type classesCmd struct{}

func (*classesCmd) Name() string     { return "classes" }
func (*classesCmd) Synopsis() string { return "show the asset class of each instrument" }
func (*classesCmd) Usage() string {
	return `paa classes

  Lists every instrument in the market data file with its asset class.
`
}

func (*classesCmd) SetFlags(_ *flag.FlagSet) {}

func (*classesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := DecodeMarketFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	classifier := portfolio.DefaultClassifier()

	var b strings.Builder
	fmt.Fprint(&b, "# Instruments\n\n")
	fmt.Fprintln(&b, "| Ticker | Name | Class | History | Observations |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|")
	for _, ticker := range m.Tickers() {
		sec := m.Get(ticker)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d |\n",
			ticker, sec.Name(), classifier.Class(ticker), sec.Range(), sec.Observations())
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
