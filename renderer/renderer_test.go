package renderer

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	portfolio "github.com/pezpher/portfolioAllocation-analysis"
	"github.com/pezpher/portfolioAllocation-analysis/date"
)

// fixture builds a small two-instrument market and runs one analysis.
func fixture(t *testing.T) (*portfolio.Analysis, *portfolio.Market) {
	t.Helper()

	m := portfolio.NewMarket()
	start := date.New(2023, 1, 2)
	for i := 0; i < 300; i++ {
		on := start.Add(i)
		m.Add("AAA", "Alpha Fund", on, 100+float64(i), 0)
		m.Add("BBB", "Beta Bond", on, 50, 0)
	}

	a := portfolio.NewAnalyzer(m, portfolio.DefaultClassifier())
	a.Config.AsOf = start.Add(299)
	analysis, err := a.Analyze(portfolio.Portfolio{
		{Ticker: "AAA", Weight: 60},
		{Ticker: "BBB", Weight: 40},
	}, 1)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	return analysis, m
}

// headings parses markdown and returns the heading texts in document order,
// prefixed with their ATX markers.
func headings(t *testing.T, md string) []string {
	t.Helper()

	content := []byte(md)
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var out []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var b strings.Builder
			b.WriteString(strings.Repeat("#", h.Level))
			b.WriteString(" ")
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				b.Write(line.Value(content))
			}
			out = append(out, b.String())
		}
		return ast.WalkContinue, nil
	})
	return out
}

func TestAnalysisMarkdownStructure(t *testing.T) {
	analysis, m := fixture(t)
	md := AnalysisMarkdown(analysis, m, "USD")

	want := []string{
		"# Portfolio Performance (1 Year)",
		"## Summary",
		"## Allocation",
		"## By Asset Class",
		"## By Instrument",
	}
	got := headings(t, md)
	if len(got) != len(want) {
		t.Fatalf("got %d headings %q, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("heading %d = %q, want %q", i, got[i], want[i])
		}
	}

	for _, cell := range []string{"| Alpha Fund | AAA | 60.00% |", "| Beta Bond | BBB | 40.00% |", "**100.00%**"} {
		if !strings.Contains(md, cell) {
			t.Errorf("report is missing %q:\n%s", cell, md)
		}
	}
	if strings.Contains(md, "Total allocation is") {
		t.Errorf("unexpected under-allocation warning for a fully allocated portfolio")
	}
}

func TestAnalysisMarkdownPartialAllocationWarning(t *testing.T) {
	_, m := fixture(t)

	a := portfolio.NewAnalyzer(m, portfolio.DefaultClassifier())
	a.Config.AsOf = date.New(2023, 1, 2).Add(299)
	analysis, err := a.Analyze(portfolio.Portfolio{{Ticker: "AAA", Weight: 80}}, 1)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	md := AnalysisMarkdown(analysis, m, "USD")
	if !strings.Contains(md, "Total allocation is 80.00%") {
		t.Errorf("expected an under-allocation warning:\n%s", md)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	analysis, _ := fixture(t)
	md := HistoryMarkdown(analysis, "USD")

	got := headings(t, md)
	if len(got) != 1 || got[0] != "# Portfolio Value History (1 Year)" {
		t.Fatalf("headings = %q", got)
	}
	// one row per value point, plus title, blank, and 2 header lines
	rows := strings.Count(md, "\n| 20")
	if rows != len(analysis.History) {
		t.Errorf("got %d rows, want %d", rows, len(analysis.History))
	}
	if !strings.Contains(md, "| - | - |") {
		t.Errorf("first row should have no change and no daily return:\n%s", md)
	}
	// The fixture value rises every day, so later rows show a signed gain.
	if !strings.Contains(md, "| +$") {
		t.Errorf("rows should show the signed daily change:\n%s", md)
	}
}

func TestValueChart(t *testing.T) {
	analysis, _ := fixture(t)

	png, err := ValueChart(analysis, "USD")
	if err != nil {
		t.Fatalf("ValueChart: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("empty chart")
	}
	if string(png[1:4]) != "PNG" {
		t.Errorf("output is not a PNG")
	}
}

func TestAllocationChart(t *testing.T) {
	analysis, m := fixture(t)

	png, err := AllocationChart(analysis, m)
	if err != nil {
		t.Fatalf("AllocationChart: %v", err)
	}
	if string(png[1:4]) != "PNG" {
		t.Errorf("output is not a PNG")
	}
}
