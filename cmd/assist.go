package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	portfolio "github.com/pezpher/portfolioAllocation-analysis"
	"github.com/pezpher/portfolioAllocation-analysis/agent"
	"github.com/pezpher/portfolioAllocation-analysis/renderer"
)

// AssistCmd is the subcommand for the AI assistant.
type AssistCmd struct {
	holdings holdingsFlag
	years    int
}

// Name returns the name of the command.
func (*AssistCmd) Name() string { return "assist" }

// Synopsis returns a short one-line synopsis of the command.
func (*AssistCmd) Synopsis() string {
	return "Start an interactive session with the AI assistant about a backtest."
}

// Usage returns a long-form usage string.
func (*AssistCmd) Usage() string {
	return `paa assist -p TICKER:WEIGHT [-p TICKER:WEIGHT ...] [-y <years>] [question ...]

  Backtests the allocation, then starts an interactive session with an AI
  analyst that answers questions about the resulting report.
`
}

// SetFlags sets the flags for the command.
func (c *AssistCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.holdings, "p", "Holding as TICKER:WEIGHT, e.g. IVV:60. Repeatable.")
	f.IntVar(&c.years, "y", 10, "Look-back horizon in years")
}

// Execute executes the command.
func (c *AssistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	analysis, m, status := runAnalysis(&c.holdings, c.years)
	if status != subcommands.ExitSuccess {
		return status
	}
	report := renderer.AnalysisMarkdown(analysis, m, *currency)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyzer := portfolio.NewAnalyzer(m, portfolio.DefaultClassifier())
	analyzer.Config.Currency = *currency
	analyst := agent.NewAnalyst(analyzer, c.holdings.p, *currency, report)
	a := agent.New(os.Stdout, os.Stdin, analyst)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
