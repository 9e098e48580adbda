package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/adewale/indexfund"
	"github.com/adewale/indexfund/renderer"
	"github.com/google/subcommands"
)

// planCmd holds the flags for the 'plan' subcommand.
type planCmd struct {
	investment float64
	feeRate    float64
	cap        float64
}

func (*planCmd) Name() string { return "plan" }
func (*planCmd) Synopsis() string {
	return "compute the buy order replicating the fund within a budget"
}
func (*planCmd) Usage() string {
	return `ifund plan [-i <amount>] [-fee <rate>] [-cap <fraction>]

  Computes how many shares of each fund equity to buy: market-cap weighting
  capped per equity, sized to the investment amount net of transaction costs.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.investment, "i", 50000, "Investment amount, in the fund currency")
	f.Float64Var(&c.feeRate, "fee", 0.03, "Transaction cost rate as a decimal (0.03 is 3%)")
	f.Float64Var(&c.cap, "cap", 0.20, "Maximum weight per equity as a decimal fraction")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fund, err := LoadFund()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fund: %v\n", err)
		return subcommands.ExitFailure
	}

	weights, err := indexfund.CapWeights(fund, c.cap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing weights: %v\n", err)
		return subcommands.ExitFailure
	}

	budget := indexfund.M(c.investment, *defaultCurrency)
	result, err := indexfund.Allocate(fund, weights, budget, c.feeRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sizing the order: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderPlan(renderer.NewPlan(fund, result, c.feeRate, c.cap)))
	return subcommands.ExitSuccess
}
