package portfolio

import "github.com/pezpher/portfolioAllocation-analysis/date"

// Config holds the tunable constants of an analysis run. The zero value is
// not usable; start from DefaultConfig.
type Config struct {
	// InitialValue is the hypothetical starting investment, in currency units.
	InitialValue float64

	// TradingDaysPerYear is the day count used to annualize daily
	// volatility. 252 matches the US market calendar; tune it for other
	// calendar assumptions.
	TradingDaysPerYear float64

	// Currency is the display currency for rendered values.
	Currency string

	// AsOf is the end of the look-back window. Zero means today.
	AsOf date.Date
}

// DefaultConfig returns the standard analysis configuration.
func DefaultConfig() Config {
	return Config{
		InitialValue:       10_000,
		TradingDaysPerYear: 252,
		Currency:           "USD",
	}
}

// asOf resolves the end of the look-back window.
func (c Config) asOf() date.Date {
	if c.AsOf.IsZero() {
		return date.Today()
	}
	return c.AsOf
}
