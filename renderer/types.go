package renderer

import (
	"sort"

	"github.com/adewale/indexfund"
)

// Plan is the view model of the buy-order report. All money values are
// already formatted strings; the template only lays them out.
type Plan struct {
	Investment string
	FeeRate    string
	Cap        string
	Lines      []PlanLine
	CostExcl   string
	Fees       string
	CostIncl   string
	Remaining  string
}

// PlanLine is one row of the buy order.
type PlanLine struct {
	Ticker string
	Shares int64
	Cost   string
}

// NewPlan builds the buy-order view from an allocation result. Tickers with
// zero shares are elided, the rest sorted alphabetically, as the report is a
// shopping list: a row you cannot act on is noise.
func NewPlan(fund indexfund.Fund, res *indexfund.AllocationResult, feeRate, cap float64) *Plan {
	p := &Plan{
		Investment: res.Budget.String(),
		FeeRate:    indexfund.AsPercent(feeRate).String(),
		Cap:        indexfund.AsPercent(cap).String(),
		CostExcl:   res.CostExclFees.String(),
		Fees:       res.Fees.String(),
		CostIncl:   res.CostInclFees.String(),
		Remaining:  res.Remaining().String(),
	}
	for ticker, n := range res.Shares {
		if n == 0 {
			continue
		}
		e, _ := fund.ByTicker(ticker)
		p.Lines = append(p.Lines, PlanLine{
			Ticker: ticker,
			Shares: n,
			Cost:   e.Price.MulInt(n).String(),
		})
	}
	sort.Slice(p.Lines, func(i, j int) bool { return p.Lines[i].Ticker < p.Lines[j].Ticker })
	return p
}

// Weights is the view model of the capped weight table.
type Weights struct {
	Cap  string
	Sum  string
	Rows []WeightRow
}

// WeightRow is one ticker's weight; Capped marks tickers pinned at the cap.
type WeightRow struct {
	Ticker string
	Name   string
	Weight string
	Capped bool
}

// NewWeights builds the weight view, heaviest ticker first.
func NewWeights(fund indexfund.Fund, weights indexfund.WeightMap, cap float64) *Weights {
	v := &Weights{
		Cap: indexfund.AsPercent(cap).String(),
		Sum: indexfund.AsPercent(weights.Sum()).String(),
	}
	for ticker, w := range weights {
		e, _ := fund.ByTicker(ticker)
		v.Rows = append(v.Rows, WeightRow{
			Ticker: ticker,
			Name:   e.Name,
			Weight: indexfund.AsPercent(w).String(),
			Capped: indexfund.AsPercent(w).Equal(indexfund.AsPercent(cap)),
		})
	}
	sort.Slice(v.Rows, func(i, j int) bool {
		if weights[v.Rows[i].Ticker] != weights[v.Rows[j].Ticker] {
			return weights[v.Rows[i].Ticker] > weights[v.Rows[j].Ticker]
		}
		return v.Rows[i].Ticker < v.Rows[j].Ticker
	})
	return v
}

// FundView is the view model of a fund composition.
type FundView struct {
	Rows []FundRow
}

// FundRow is one equity of the fund file.
type FundRow struct {
	Ticker    string
	Name      string
	MarketCap string
	Price     string
}

// NewFundView builds the fund view in file order.
func NewFundView(fund indexfund.Fund) *FundView {
	v := &FundView{}
	for _, e := range fund {
		v.Rows = append(v.Rows, FundRow{
			Ticker:    e.Ticker,
			Name:      e.Name,
			MarketCap: e.MarketCap.String(),
			Price:     e.Price.String(),
		})
	}
	return v
}
