package portfolio

// AssetClass is the coarse grouping used for aggregated reporting.
type AssetClass string

const (
	Equity      AssetClass = "Equity"
	FixedIncome AssetClass = "Fixed Income"
	Cash        AssetClass = "Cash"
	Other       AssetClass = "Other"
)

// Classifier maps an instrument ticker to its asset class.
//
// It is an injectable dependency of the analyzer: tests substitute synthetic
// classifications, callers usually pass DefaultClassifier. A Classifier is
// never mutated after construction.
type Classifier map[string]AssetClass

// Class returns the asset class for a ticker, defaulting to Other for
// unknown tickers.
func (c Classifier) Class(ticker string) AssetClass {
	if class, ok := c[ticker]; ok {
		return class
	}
	return Other
}

// DefaultClassifier returns the classification table for the instruments of
// the standard dataset.
func DefaultClassifier() Classifier {
	return Classifier{
		"IVV":  Equity, // S&P 500 Total Return
		"IWB":  Equity, // Russell 1000
		"IWM":  Equity, // Russell 2000
		"IWV":  Equity, // Russell 3000
		"ACWI": Equity, // MSCI ACWI Total Return
		"ACWX": Equity, // MSCI ACWI Ex USA Total Return
		"EFA":  Equity, // MSCI ACWI Ex USA Large Cap
		"VSS":  Equity, // Ex-US SMID
		"VNQ":  Equity, // US REIT
		"BIZD": Equity, // Private Equity

		"AGG":  FixedIncome, // Bloomberg US Aggregate
		"IAGG": FixedIncome, // Bloomberg Global Aggregate
		"VTC":  FixedIncome, // Bloomberg Corporate Bond
		"MUB":  FixedIncome, // Bloomberg Municipal Bond
		"VPC":  FixedIncome, // Private Debt

		"BIL":      Cash, // US Treasury Bills 1-3 Month
		CashTicker: Cash,

		"GLD":  Other, // Gold
		"GBTC": Other, // Bitcoin
	}
}
