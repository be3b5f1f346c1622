package portfolio

import (
	"errors"
	"reflect"
	"testing"
)

func TestAnalyzeCashOnly(t *testing.T) {
	// 100% cash over 5 years: a flat line at the initial value and zero
	// for every metric.
	start := day("2019-07-01")
	m := NewMarket()
	for i := 0; i < 5; i++ {
		addDaily(m, "IVV", "S&P 500 Total Return", start.AddYears(i), flat(300, 40)...)
	}
	m.SynthesizeCash()

	p := Portfolio{{Ticker: CashTicker, Weight: 100}}
	a := testAnalyzer(m, day("2024-07-01"))
	got, err := a.Analyze(p, 5)
	if err != nil {
		t.Fatal(err)
	}

	for _, vp := range got.History {
		if !almost(vp.Value, 10_000) {
			t.Fatalf("value on %s = %v, want 10000", vp.Date, vp.Value)
		}
	}
	if !got.Report.Total.CAGR.Equal(0) {
		t.Errorf("CAGR = %s, want 0", got.Report.Total.CAGR)
	}
	if !got.Report.Total.StdDev.Equal(0) {
		t.Errorf("stddev = %s, want 0", got.Report.Total.StdDev)
	}
	if !got.Report.Total.Yield.Equal(0) {
		t.Errorf("yield = %s, want 0", got.Report.Total.Yield)
	}
	if class := DefaultClassifier().Class(CashTicker); class != Cash {
		t.Errorf("CASH classified as %s, want %s", class, Cash)
	}
}

func TestAnalyzeIdempotence(t *testing.T) {
	start := day("2024-01-02")
	m := NewMarket()
	addDaily(m, "AAA", "Asset A", start, geometric(100, 0.005, 60)...)
	addDaily(m, "BBB", "Asset B", start, geometric(50, -0.001, 60)...)

	p := Portfolio{{Ticker: "AAA", Weight: 70}, {Ticker: "BBB", Weight: 30}}
	a := testAnalyzer(m, start.Add(59))

	first, err := a.Analyze(p, 1)
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Analyze(p, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two identical runs produced different results")
	}
}

func TestAnalyzePartialAllocation(t *testing.T) {
	// The engine does not validate the weight sum: an 80% portfolio is
	// simulated as-is, under-allocated. Refusing to display it is the
	// caller's concern.
	start := day("2024-01-02")
	m := NewMarket()
	addDaily(m, "AAA", "Asset A", start, flat(100, 30)...)

	p := Portfolio{{Ticker: "AAA", Weight: 80}}
	a := testAnalyzer(m, start.Add(29))
	got, err := a.Analyze(p, 1)
	if err != nil {
		t.Fatal(err)
	}
	if w := p.TotalWeight(); w != 80 {
		t.Fatalf("TotalWeight = %v, want 80", w)
	}
	if v := got.History[0].Value; !almost(v, 8_000) {
		t.Errorf("initial value = %v, want 8000 (80%% deployed)", v)
	}
}

func TestAnalyzeInsufficientHistory(t *testing.T) {
	m := NewMarket()
	addDaily(m, "AAA", "Asset A", day("2010-01-04"), flat(100, 10)...)

	a := testAnalyzer(m, day("2024-07-01"))
	_, err := a.Analyze(Portfolio{{Ticker: "AAA", Weight: 100}}, 5)
	if !errors.Is(err, ErrInsufficientHistory) {
		t.Errorf("Analyze err = %v, want ErrInsufficientHistory", err)
	}
}

func TestAnalyzeWindow(t *testing.T) {
	start := day("2024-01-02")
	m := NewMarket()
	addDaily(m, "AAA", "Asset A", start, flat(100, 400)...)

	a := testAnalyzer(m, day("2025-01-02"))
	got, err := a.Analyze(Portfolio{{Ticker: "AAA", Weight: 100}}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got.Horizon != 1 {
		t.Errorf("Horizon = %d, want 1", got.Horizon)
	}
	if got.Window.From != day("2024-01-02") || got.Window.To != day("2025-01-02") {
		t.Errorf("Window = %s, want 2024-01-02 to 2025-01-02", got.Window)
	}
	for _, vp := range got.History {
		if !got.Window.Contains(vp.Date) {
			t.Errorf("value point %s outside window", vp.Date)
		}
	}
}
