package portfolio

import (
	"math"
	"testing"
)

func TestCagrGuards(t *testing.T) {
	testCases := []struct {
		name              string
		begin, end, years float64
		want              float64
	}{
		{"Zero years", 100, 200, 0, 0},
		{"Zero begin", 0, 200, 5, 0},
		{"Negative years", 100, 200, -1, 0},
		{"Doubling in one year", 100, 200, 1, 1},
		{"Flat", 100, 100, 5, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cagr(tc.begin, tc.end, tc.years); !almost(got, tc.want) {
				t.Errorf("cagr(%v, %v, %v) = %v, want %v", tc.begin, tc.end, tc.years, got, tc.want)
			}
		})
	}
}

func TestSampleStdDev(t *testing.T) {
	testCases := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"Empty", nil, 0},
		{"Single", []float64{1}, 0},
		{"Constant", []float64{2, 2, 2}, 0},
		{"Known", []float64{1, 2, 3, 4}, math.Sqrt(5.0 / 3.0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sampleStdDev(tc.values); !almost(got, tc.want) {
				t.Errorf("sampleStdDev(%v) = %v, want %v", tc.values, got, tc.want)
			}
		})
	}
}

// TestMetricsAgainstReference replicates the whole calculation with an
// independent straight-line implementation and compares: one instrument
// alternating +2% and flat days, one flat, 50/50, one year, no rebalance
// boundary crossed.
func TestMetricsAgainstReference(t *testing.T) {
	const n = 252
	start := day("2023-01-02")
	pricesA := alternating(100, 0.02, n)
	pricesB := flat(50, n)

	m := NewMarket()
	addDaily(m, "AAA", "Asset A", start, pricesA...)
	addDaily(m, "BBB", "Asset B", start, pricesB...)

	p := Portfolio{{Ticker: "AAA", Weight: 50}, {Ticker: "BBB", Weight: 50}}
	a := testAnalyzer(m, start.Add(n-1))
	got, err := a.Analyze(p, 1)
	if err != nil {
		t.Fatal(err)
	}

	// Reference: fixed shares bought on day one, valued every day.
	sharesA := 10_000 * 0.5 / pricesA[0]
	sharesB := 10_000 * 0.5 / pricesB[0]
	values := make([]float64, n)
	for i := range values {
		values[i] = sharesA*pricesA[i] + sharesB*pricesB[i]
	}
	rets := make([]float64, n-1)
	for i := 1; i < n; i++ {
		rets[i-1] = (values[i] - values[i-1]) / values[i-1]
	}
	years := float64(n-1) / 365.25
	refCAGR := math.Pow(values[n-1]/values[0], 1/years) - 1
	refStdDev := sampleStdDev(rets) * math.Sqrt(252)

	if !got.Report.Total.CAGR.Equal(rate(refCAGR)) {
		t.Errorf("total CAGR = %s, want %s", got.Report.Total.CAGR, rate(refCAGR))
	}
	if !got.Report.Total.StdDev.Equal(rate(refStdDev)) {
		t.Errorf("total stddev = %s, want %s", got.Report.Total.StdDev, rate(refStdDev))
	}

	// Diversification: the blended volatility sits strictly between the
	// flat instrument (0) and the volatile one.
	stdA := got.Report.ByTicker["AAA"].StdDev
	stdB := got.Report.ByTicker["BBB"].StdDev
	if stdB != 0 {
		t.Errorf("flat instrument stddev = %s, want 0", stdB)
	}
	blended := got.Report.Total.StdDev
	if !(blended > stdB && blended < stdA) {
		t.Errorf("blended stddev %s not strictly between %s and %s", blended, stdB, stdA)
	}
}

func TestMetricsShorterInstrumentWindow(t *testing.T) {
	// BBB misses the final 30 days: its own metrics are computed over the
	// shorter window it does have, while the portfolio history carries
	// values forward on the missing days.
	const n, nB = 100, 70
	start := day("2024-01-02")
	m := NewMarket()
	addDaily(m, "AAA", "Asset A", start, geometric(100, 0.001, n)...)
	addDaily(m, "BBB", "Asset B", start, geometric(50, 0.002, nB)...)

	p := Portfolio{{Ticker: "AAA", Weight: 50}, {Ticker: "BBB", Weight: 50}}
	a := testAnalyzer(m, start.Add(n-1))
	got, err := a.Analyze(p, 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(got.History) != n {
		t.Fatalf("history length = %d, want %d", len(got.History), n)
	}
	vLast := got.History[n-1].Value
	if !almost(vLast, got.History[nB-1].Value) {
		t.Errorf("final value = %v, want carried %v", vLast, got.History[nB-1].Value)
	}

	// BBB's CAGR is annualized over its own 69-day span.
	yearsB := float64(nB-1) / 365.25
	wantB := math.Pow(math.Pow(1.002, nB-1), 1/yearsB) - 1
	if gotB := got.Report.ByTicker["BBB"].CAGR; !gotB.Equal(rate(wantB)) {
		t.Errorf("BBB CAGR = %s, want %s", gotB, rate(wantB))
	}
}

func TestMetricsYield(t *testing.T) {
	// Flat price of 100 with four 1-per-share distributions over a year:
	// the annualized yield is ~4%.
	start := day("2024-01-02")
	m := NewMarket()
	n := 366
	for i := 0; i < n; i++ {
		m.Add("AAA", "Asset A", start.Add(i), 100, 0)
	}
	for _, q := range []string{"2024-03-01", "2024-06-01", "2024-09-01", "2024-12-01"} {
		m.Add("AAA", "Asset A", day(q), 100, 1)
	}

	p := Portfolio{{Ticker: "AAA", Weight: 100}}
	a := testAnalyzer(m, start.Add(n-1))
	got, err := a.Analyze(p, 1)
	if err != nil {
		t.Fatal(err)
	}

	years := float64(n-1) / 365.25
	want := rate(4 / years / 100)
	if !got.Report.Total.Yield.Equal(want) {
		t.Errorf("total yield = %s, want %s", got.Report.Total.Yield, want)
	}
	// With all-nonnegative inputs, every computed yield is nonnegative.
	for ticker, tm := range got.Report.ByTicker {
		if tm.Yield < 0 {
			t.Errorf("yield for %s = %s, want >= 0", ticker, tm.Yield)
		}
	}
	// The instrument's total return compounds yield onto price return.
	tm := got.Report.ByTicker["AAA"]
	if wantTotal := rate((1+0)*(1+want.fraction()) - 1); !tm.CAGR.Equal(wantTotal) {
		t.Errorf("AAA total return CAGR = %s, want %s", tm.CAGR, wantTotal)
	}
}

func TestMetricsClassBlending(t *testing.T) {
	start := day("2024-01-02")
	m := NewMarket()
	addDaily(m, "AAA", "Asset A", start, geometric(100, 0.001, 50)...)
	addDaily(m, "BBB", "Asset B", start, geometric(50, 0.003, 50)...)
	addDaily(m, "CCC", "Asset C", start, flat(10, 50)...)

	// Synthetic classification: AAA and BBB share a class.
	classify := Classifier{"AAA": Equity, "BBB": Equity, "CCC": Cash}

	p := Portfolio{
		{Ticker: "AAA", Weight: 30},
		{Ticker: "BBB", Weight: 10},
		{Ticker: "CCC", Weight: 60},
	}
	a := NewAnalyzer(m, classify)
	a.Config.AsOf = start.Add(49)
	got, err := a.Analyze(p, 1)
	if err != nil {
		t.Fatal(err)
	}

	equity, ok := got.Report.ByClass[Equity]
	if !ok {
		t.Fatal("no Equity class in report")
	}
	if len(equity.Tickers) != 2 {
		t.Fatalf("Equity class has %d tickers, want 2", len(equity.Tickers))
	}

	// Weight-renormalized blend within the class: 30/40 AAA, 10/40 BBB.
	ma := got.Report.ByTicker["AAA"]
	mb := got.Report.ByTicker["BBB"]
	want := rate((ma.CAGR.fraction()*30 + mb.CAGR.fraction()*10) / 40)
	if !equity.CAGR.Equal(want) {
		t.Errorf("Equity class CAGR = %s, want %s", equity.CAGR, want)
	}

	if _, ok := got.Report.ByClass[Other]; ok {
		t.Error("report contains an Other class with no contributing instrument")
	}
}

func TestMetricsExcludesSparseInstrument(t *testing.T) {
	// A single observation is not enough: the instrument is excluded from
	// all aggregation, not zero-filled.
	start := day("2024-01-02")
	m := NewMarket()
	addDaily(m, "AAA", "Asset A", start, flat(100, 30)...)
	m.Add("BBB", "Asset B", start, 50, 0)

	p := Portfolio{{Ticker: "AAA", Weight: 80}, {Ticker: "BBB", Weight: 20}}
	a := testAnalyzer(m, start.Add(29))
	got, err := a.Analyze(p, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.Report.ByTicker["BBB"]; ok {
		t.Error("sparse instrument should be excluded from per-ticker metrics")
	}
	for class, cm := range got.Report.ByClass {
		for _, tm := range cm.Tickers {
			if tm.Ticker == "BBB" {
				t.Errorf("sparse instrument found in class %s", class)
			}
		}
	}
}
