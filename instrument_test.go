package portfolio

import (
	"testing"

	"github.com/pezpher/portfolioAllocation-analysis/date"
)

func TestInstrumentRange(t *testing.T) {
	m := NewMarket()
	addDaily(m, "AAA", "Asset A", day("2024-01-02"), 100, 101, 102)

	want := date.NewRange(day("2024-01-02"), day("2024-01-04"))
	if got := m.Get("AAA").Range(); got != want {
		t.Errorf("Range() = %s, want %s", got, want)
	}
	if got := m.Get("AAA").Observations(); got != 3 {
		t.Errorf("Observations() = %d, want 3", got)
	}
}
