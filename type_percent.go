package portfolio

import "fmt"

// Percent is a rate expressed in percentage points (5.0 means 5%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// fraction returns the percent as a plain ratio (5% -> 0.05).
func (p Percent) fraction() float64 { return float64(p) / 100 }

// rate converts a plain ratio into a Percent (0.05 -> 5%).
func rate(f float64) Percent { return Percent(100 * f) }
