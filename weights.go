package indexfund

// WeightMap maps a ticker to the fraction of the investable budget earmarked
// for it. Weights are plain ratios; money never flows through this type.
type WeightMap map[string]float64

// Sum returns the total weight in the map.
func (w WeightMap) Sum() float64 {
	var sum float64
	for _, v := range w {
		sum += v
	}
	return sum
}

// weightEpsilon is the tolerance under which a cap overshoot or a residual
// excess is considered zero.
const weightEpsilon = 1e-12

// CapWeights computes one weight per ticker from relative market
// capitalizations, with no single weight above cap.
//
// Tickers whose market-cap weight exceeds the cap are pinned to the cap and
// their excess is redistributed to the remaining tickers in proportion to
// their own weight. Redistribution can push a formerly-under ticker above the
// cap, so the cap-and-redistribute step repeats until no ticker exceeds the
// cap; each pass pins at least one more ticker, so the loop is bounded by
// len(f).
//
// When cap*len(f) >= 1 the returned weights sum to 1 within floating-point
// tolerance. Otherwise no weight vector can both respect the cap and sum to
// 1: every ticker settles at exactly cap and the residual stays unallocated.
func CapWeights(f Fund, cap float64) (WeightMap, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if cap <= 0 || cap > 1 {
		return nil, inputErrorf("cap must be in (0, 1], got %g", cap)
	}
	total := f.TotalMarketCap()
	if !total.IsPositive() {
		return nil, inputErrorf("total market capitalization must be positive, got %s", total)
	}

	weights := make(WeightMap, len(f))
	for _, e := range f {
		weights[e.Ticker] = e.MarketCap.Div(total).InexactFloat64()
	}

	pinned := make(map[string]bool, len(f))
	for i := 0; i < len(f); i++ {
		var excess, underTotal float64
		for t, w := range weights {
			switch {
			case w > cap+weightEpsilon:
				excess += w - cap
				weights[t] = cap
				pinned[t] = true
			case !pinned[t]:
				underTotal += w
			}
		}
		if excess <= weightEpsilon {
			break
		}
		if underTotal <= weightEpsilon {
			// every ticker is at the cap: the excess has nowhere to go.
			break
		}
		for t, w := range weights {
			if !pinned[t] {
				weights[t] = w + excess*(w/underTotal)
			}
		}
	}

	// final clamp absorbs the float noise left by the last redistribution.
	for t, w := range weights {
		if w > cap {
			weights[t] = cap
		}
	}
	return weights, nil
}
