package agent

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	portfolio "github.com/pezpher/portfolioAllocation-analysis"
	"github.com/pezpher/portfolioAllocation-analysis/renderer"
)

const model = "gemini-2.5-pro"

// NewAnalyst creates the portfolio analyst expert. The current performance
// report is part of its system instruction, and it can re-run the backtest
// over a different horizon through the Backtest tool.
func NewAnalyst(a *portfolio.Analyzer, p portfolio.Portfolio, currency, report string) *Expert {
	backtest := newBacktest(a, p, currency)

	lib := []Function{backtest}

	return &Expert{
		Name:      "Analyst",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a portfolio analyst. The user has just backtested a target
			allocation against historical market data; the resulting report is
			included below. Answer the user's questions about it: explain the
			metrics (annualized return, volatility, dividend yield), compare
			asset classes and instruments, and discuss the trade-offs the
			numbers show.

			Use the Backtest tool whenever the user asks how the portfolio
			behaves over a different number of years.

			You are not a financial advisor: describe what the historical data
			shows, never recommend buying or selling.

			Here is the current report:

` + report}}},
		},
		Library: NewLibrary(lib),
	}
}

// newBacktest exposes the analyzer as a callable tool.
func newBacktest(a *portfolio.Analyzer, p portfolio.Portfolio, currency string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Backtest",
			Description: `Backtest re-runs the simulation of the user's target allocation
			over the last N years and returns the full performance report as markdown.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"years": {
						Type:        genai.TypeInteger,
						Description: "The look-back horizon in years, e.g. 5.",
					},
				},
				Required: []string{"years"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted performance report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "Backtest"}

			years, ok := args["years"].(float64)
			if !ok || years < 1 {
				fresp.Response = map[string]any{
					"error": fmt.Sprintf("argument 'years' must be a positive number, got %v", args["years"]),
				}
				return fresp
			}

			analysis, err := a.Analyze(p, int(years))
			if err != nil {
				fresp.Response = map[string]any{"error": err.Error()}
				return fresp
			}

			report := renderer.AnalysisMarkdown(analysis, a.Market, currency)
			log.Printf("Analyst backtest over %d years", int(years))
			fresp.Response = map[string]any{"output": report}
			return fresp
		},
	}
}
