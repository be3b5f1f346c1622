// Package renderer turns analysis results into markdown reports and charts.
// It consumes engine structures read-only.
package renderer

import (
	"fmt"
	"strings"

	portfolio "github.com/pezpher/portfolioAllocation-analysis"
)

// classOrder fixes the section ordering of the per-class breakdown.
var classOrder = []portfolio.AssetClass{
	portfolio.Equity,
	portfolio.FixedIncome,
	portfolio.Cash,
	portfolio.Other,
}

// AnalysisMarkdown renders the full analysis report to a markdown string.
func AnalysisMarkdown(a *portfolio.Analysis, m *portfolio.Market, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio Performance (%d Year)\n\n", a.Horizon)
	first := a.History[0]
	final := a.History[len(a.History)-1]
	fmt.Fprintf(&b, "Simulated from %s, starting from a hypothetical %s investment, rebalanced yearly.\n\n",
		a.Window, portfolio.M(first.Value, currency))
	fmt.Fprint(&b, "## Summary\n\n")
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Annualized Return | %s |\n", a.Report.Total.CAGR)
	fmt.Fprintf(&b, "| Annualized Volatility | %s |\n", a.Report.Total.StdDev)
	fmt.Fprintf(&b, "| Annualized Yield | %s |\n", a.Report.Total.Yield)
	fmt.Fprintf(&b, "| Final Value (%s) | %s |\n\n", final.Date, portfolio.M(final.Value, currency))

	fmt.Fprint(&b, "## Allocation\n\n")
	fmt.Fprintln(&b, "| Asset | Ticker | Weight |")
	fmt.Fprintln(&b, "|:---|:---|---:|")
	for _, h := range a.Portfolio {
		name := h.Ticker
		if sec := m.Get(h.Ticker); sec != nil {
			name = sec.Name()
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", name, h.Ticker, portfolio.Percent(h.Weight))
	}
	total := portfolio.Percent(a.Portfolio.TotalWeight())
	fmt.Fprintf(&b, "| **Total** | | **%s** |\n\n", total)
	if !total.Equal(100) {
		fmt.Fprintf(&b, "> Total allocation is %s, not 100%%: metrics describe an under- or over-allocated portfolio.\n\n", total)
	}

	fmt.Fprint(&b, "## By Asset Class\n\n")
	fmt.Fprintln(&b, "| Class | Weight | Return | Volatility | Yield |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, class := range classOrder {
		cm, ok := a.Report.ByClass[class]
		if !ok {
			continue
		}
		var weight portfolio.Percent
		for _, tm := range cm.Tickers {
			weight += tm.Weight
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", class, weight, cm.CAGR, cm.StdDev, cm.Yield)
	}
	fmt.Fprintln(&b)

	fmt.Fprint(&b, "## By Instrument\n\n")
	fmt.Fprintln(&b, "| Ticker | Weight | Return | Volatility | Yield |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, h := range a.Portfolio {
		tm, ok := a.Report.ByTicker[h.Ticker]
		if !ok {
			// excluded for lack of data, keep the row so the omission is visible
			fmt.Fprintf(&b, "| %s | %s | - | - | - |\n", h.Ticker, portfolio.Percent(h.Weight))
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", tm.Ticker, tm.Weight, tm.CAGR, tm.StdDev, tm.Yield)
	}

	return b.String()
}
