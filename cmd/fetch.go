package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/subcommands"

	portfolio "github.com/pezpher/portfolioAllocation-analysis"
	"github.com/pezpher/portfolioAllocation-analysis/date"
	"github.com/pezpher/portfolioAllocation-analysis/eodhd"
)

// fetchCmd implements the "fetch" command.
type fetchCmd struct {
	years int
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetches market data from EODHD" }
func (*fetchCmd) Usage() string {
	return `paa fetch [-y <years>] TICKER [TICKER ...]

  Fetches daily prices and dividends for the tickers from eodhd.com,
  merges them into the market data file and writes it back.

  Requires the EODHD_API_KEY environment variable to be set or passed
  with -eodhd-api-key.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "y", 10, "Number of years of history to fetch")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one ticker is required")
		return subcommands.ExitUsageError
	}

	key := eodhd.APIKey()
	if key == "" {
		fmt.Fprintln(os.Stderr, "Error: EODHD API key is not set. Use the -eodhd-api-key flag or the EODHD_API_KEY environment variable")
		return subcommands.ExitFailure
	}

	// Merge into the existing market file when there is one.
	m, err := DecodeMarketFile()
	if errors.Is(err, fs.ErrNotExist) {
		m = portfolio.NewMarket()
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	end := date.Today()
	window := date.NewRange(end.AddYears(-c.years), end)
	for _, ticker := range f.Args() {
		records, err := eodhd.Fetch(key, ticker, window)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not fetch %q from eodhd.com: %v\n", ticker, err)
			return subcommands.ExitFailure
		}
		name := ticker
		if sec := m.Get(ticker); sec != nil {
			name = sec.Name()
		}
		for _, r := range records {
			m.Add(ticker, name, r.Date, r.Price, r.Dividend)
		}
		fmt.Printf("Fetched %d days for %s\n", len(records), ticker)
	}

	file, err := os.Create(*marketFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening market file %q for writing: %v\n", *marketFile, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := portfolio.EncodeMarket(file, m); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing updated market file: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s\n", *marketFile)
	return subcommands.ExitSuccess
}
