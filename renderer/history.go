package renderer

import (
	"fmt"
	"strings"

	portfolio "github.com/pezpher/portfolioAllocation-analysis"
)

// HistoryMarkdown renders the simulated value history as a markdown table.
func HistoryMarkdown(a *portfolio.Analysis, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio Value History (%d Year)\n\n", a.Horizon)
	fmt.Fprintln(&b, "| Date | Value | Change | Daily Return |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for i, p := range a.History {
		change, ret := "-", "-"
		if i > 0 {
			prev := a.History[i-1].Value
			change = portfolio.M(p.Value, currency).Sub(portfolio.M(prev, currency)).SignedString()
			if prev > 0 {
				ret = portfolio.Percent(100 * (p.Value - prev) / prev).SignedString()
			}
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", p.Date, portfolio.M(p.Value, currency), change, ret)
	}
	return b.String()
}
