package indexfund

import (
	"github.com/shopspring/decimal"
)

// Equity is one constituent of an index fund, as supplied by the data-loading
// collaborator. It is never mutated by the pipeline.
type Equity struct {
	Ticker    string          // unique, human-friendly symbol on the exchange.
	Name      string          // company title, informational only.
	MarketCap decimal.Decimal // non-negative market capitalization.
	Price     Money           // last share price, must be positive to allocate.
}

// NewEquity builds an equity record from raw numbers in the given currency.
func NewEquity(ticker, name string, marketCap, price float64, currency string) Equity {
	return Equity{
		Ticker:    ticker,
		Name:      name,
		MarketCap: decimal.NewFromFloat(marketCap),
		Price:     M(price, currency),
	}
}

// Fund is the ordered list of equities composing an index fund.
type Fund []Equity

// ByTicker returns the equity record for a ticker, if any.
func (f Fund) ByTicker(ticker string) (Equity, bool) {
	for _, e := range f {
		if e.Ticker == ticker {
			return e, true
		}
	}
	return Equity{}, false
}

// TotalMarketCap sums the market capitalization over all equities.
func (f Fund) TotalMarketCap() decimal.Decimal {
	var total decimal.Decimal
	for _, e := range f {
		total = total.Add(e.MarketCap)
	}
	return total
}

// Validate checks the structural invariants of the fund composition: at least
// one equity, non-empty unique tickers, non-negative market capitalizations.
func (f Fund) Validate() error {
	if len(f) == 0 {
		return inputErrorf("fund has no equities")
	}
	seen := make(map[string]bool, len(f))
	for i, e := range f {
		if e.Ticker == "" {
			return inputErrorf("equity #%d has an empty ticker", i)
		}
		if seen[e.Ticker] {
			return inputErrorf("ticker %q appears more than once", e.Ticker)
		}
		seen[e.Ticker] = true
		if e.MarketCap.IsNegative() {
			return inputErrorf("equity %q has a negative market cap %s", e.Ticker, e.MarketCap)
		}
	}
	return nil
}
