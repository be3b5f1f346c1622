// Command paa backtests portfolio allocations against historical market data.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/pezpher/portfolioAllocation-analysis/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and returns for normal runs.
func completion() {
	holdingFlags := map[string]complete.Predictor{
		"p": predict.Nothing,
		"y": predict.Set{"1", "3", "5", "10", "15", "20"},
	}
	paa := &complete.Command{
		Flags: map[string]complete.Predictor{
			"m":        predict.Files("*.csv"),
			"currency": predict.Set{"USD", "EUR", "GBP"},
		},
		Sub: map[string]*complete.Command{
			"analyze": {Flags: holdingFlags},
			"history": {Flags: holdingFlags},
			"chart": {Flags: map[string]complete.Predictor{
				"p": predict.Nothing,
				"y": predict.Set{"1", "3", "5", "10", "15", "20"},
				"o": predict.Files("*"),
			}},
			"fetch": {Flags: map[string]complete.Predictor{
				"y": predict.Set{"1", "3", "5", "10", "15", "20"},
			}},
			"classes": {},
			"assist":  {Flags: holdingFlags},
		},
	}
	paa.Complete("paa")
}
