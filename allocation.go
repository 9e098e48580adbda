package indexfund

// AllocationResult is the buy order produced for one fund: integer share
// counts per ticker and the realized cost totals. It has no lifecycle beyond
// the call that produced it.
type AllocationResult struct {
	Shares       map[string]int64 // shares to buy per ticker, always >= 0.
	CostExclFees Money            // sum of shares * price.
	Fees         Money            // blended transaction cost on the realized total.
	CostInclFees Money            // CostExclFees + Fees.
	Budget       Money            // the budget the order was sized for.
}

// Remaining is the cash left over after the order, budget minus cost
// including fees. It is a reporting figure: per-ticker rounding keeps every
// position within its earmarked cash, but the blended fee is levied on the
// realized total afterwards, so Remaining is not an invariant the allocator
// enforces.
func (r *AllocationResult) Remaining() Money {
	return r.Budget.Sub(r.CostInclFees)
}

// Allocate sizes the buy order for a weight vector: for every weighted ticker
// it earmarks budget*weight in cash and buys the largest whole number of
// shares whose cost, fee included, fits in that earmark:
//
//	shares = floor(budget*weight / (price * (1+feeRate)))
//
// Flooring is the rounding policy: it is conservative and never overspends a
// ticker's earmark. The fee total is then computed once, on the realized
// portfolio spend, not compounded ticker by ticker.
//
// Every ticker in weights must resolve to an equity with a positive price;
// budget must be positive and feeRate non-negative. Violations return an
// *InputError and no result.
func Allocate(f Fund, weights WeightMap, budget Money, feeRate float64) (*AllocationResult, error) {
	if !budget.IsPositive() {
		return nil, inputErrorf("investment amount must be positive, got %s", budget)
	}
	if feeRate < 0 {
		return nil, inputErrorf("transaction cost rate must not be negative, got %g", feeRate)
	}

	shares := make(map[string]int64, len(weights))
	costExcl := M(0, budget.Currency())
	for ticker, w := range weights {
		e, ok := f.ByTicker(ticker)
		if !ok {
			return nil, inputErrorf("ticker %q is weighted but absent from the fund", ticker)
		}
		if !e.Price.IsPositive() {
			return nil, inputErrorf("invalid price for %s: %s", ticker, e.Price)
		}

		earmark := budget.MulRate(w)
		perShare := e.Price.MulRate(1 + feeRate)
		// QuoRem with precision 0 is an exact truncating division; both
		// operands are non-negative, so this is the floor.
		q, _ := earmark.value.QuoRem(perShare.value, 0)
		n := q.IntPart()
		shares[ticker] = n
		costExcl = costExcl.Add(e.Price.MulInt(n))
	}

	fees := costExcl.MulRate(feeRate)
	return &AllocationResult{
		Shares:       shares,
		CostExclFees: costExcl,
		Fees:         fees,
		CostInclFees: costExcl.Add(fees),
		Budget:       budget,
	}, nil
}
